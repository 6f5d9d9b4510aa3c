package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportFilter narrows a purchase set for aggregation. Zero-valued fields
// place no restriction.
type ReportFilter struct {
	Period     Period
	SupplierID string
	MaterialID string
}

// PurchaseSummary is the headline aggregate over a filtered purchase set.
// TotalWeight is only computed when the filter names a single material; it is
// the summed weight of the matched line items.
type PurchaseSummary struct {
	TransactionCount int              `json:"transactionCount"`
	TotalValue       decimal.Decimal  `json:"totalValue"`
	TotalWeight      *decimal.Decimal `json:"totalWeight,omitempty"`
}

// ItemBreakdownRow aggregates line items sharing a material name across a
// filtered purchase set. Count is the number of line-item occurrences, not
// distinct purchases.
type ItemBreakdownRow struct {
	MaterialName string          `json:"materialName"`
	TotalWeight  decimal.Decimal `json:"totalWeight"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Count        int             `json:"count"`
}

// PurchaseReportRow is one detail line of a purchases report. DisplayTotal is
// the matched line item's total when a material filter is active, otherwise
// the purchase's grand total; GrandTotal always carries the true figure for
// annotation.
type PurchaseReportRow struct {
	Date         time.Time       `json:"date"`
	SupplierName *string         `json:"supplierName,omitempty"`
	ItemNames    []string        `json:"itemNames"`
	CreatedBy    string          `json:"createdBy"`
	DisplayTotal decimal.Decimal `json:"displayTotal"`
	GrandTotal   decimal.Decimal `json:"grandTotal"`
}

// PurchaseReport is the full payload behind the purchases view and its
// exported documents.
type PurchaseReport struct {
	Summary      PurchaseSummary     `json:"summary"`
	Rows         []PurchaseReportRow `json:"rows"`
	PeriodLabel  string              `json:"periodLabel,omitempty"`
	SupplierName string              `json:"supplierName,omitempty"`
	MaterialName string              `json:"materialName,omitempty"`
}

// SupplierMonthlyReport tables the per-item breakdown of one supplier's
// purchases in one calendar month, with grand totals for the footer row.
type SupplierMonthlyReport struct {
	Supplier         Supplier           `json:"supplier"`
	Year             int                `json:"year"`
	Month            time.Month         `json:"month"`
	TransactionCount int                `json:"transactionCount"`
	TotalWeight      decimal.Decimal    `json:"totalWeight"`
	TotalAmount      decimal.Decimal    `json:"totalAmount"`
	Rows             []ItemBreakdownRow `json:"rows"`
}

// ExpenseReportRow is one detail line of an expenses report.
type ExpenseReportRow struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	TagNames    []string        `json:"tagNames"`
	Amount      decimal.Decimal `json:"amount"`
}

// ExpenseReport summarises a filtered expense set.
type ExpenseReport struct {
	ExpenseCount int                `json:"expenseCount"`
	TotalAmount  decimal.Decimal    `json:"totalAmount"`
	Rows         []ExpenseReportRow `json:"rows"`
	PeriodLabel  string             `json:"periodLabel,omitempty"`
	TagName      string             `json:"tagName,omitempty"`
}
