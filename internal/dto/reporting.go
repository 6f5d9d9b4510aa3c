package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

// PurchaseReportParams defines the query parameters narrowing a purchases report.
// period is one of all|today|month|custom; from/to are YYYY-MM-DD and only
// read when period=custom.
type PurchaseReportParams struct {
	Period     string `form:"period,default=all" binding:"omitempty,periodkind"`
	From       string `form:"from"`
	To         string `form:"to"`
	SupplierID string `form:"supplier"`
	MaterialID string `form:"material"`
}

// SupplierReportParams selects the month of a supplier monthly report.
type SupplierReportParams struct {
	Year  int `form:"year" binding:"required"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// ExpenseReportParams defines the query parameters narrowing an expenses report.
type ExpenseReportParams struct {
	Period string `form:"period,default=all" binding:"omitempty,periodkind"`
	From   string `form:"from"`
	To     string `form:"to"`
	TagID  string `form:"tag"`
}

// ToPeriod maps the period query parameters onto a domain period.
func ToPeriod(kind, from, to string) domain.Period {
	switch kind {
	case string(domain.PeriodToday):
		return domain.Period{Kind: domain.PeriodToday}
	case string(domain.PeriodThisMonth):
		return domain.Period{Kind: domain.PeriodThisMonth}
	case string(domain.PeriodCustom):
		return domain.NewCustomPeriod(from, to)
	default:
		return domain.Period{Kind: domain.PeriodAll}
	}
}

// PurchaseSummaryResponse mirrors domain.PurchaseSummary.
type PurchaseSummaryResponse struct {
	TransactionCount int              `json:"transactionCount"`
	TotalValue       decimal.Decimal  `json:"totalValue"`
	TotalWeight      *decimal.Decimal `json:"totalWeight,omitempty"`
}

// PurchaseReportRowResponse is one detail row of the purchases report.
type PurchaseReportRowResponse struct {
	Date         time.Time       `json:"date"`
	SupplierName *string         `json:"supplierName,omitempty"`
	ItemNames    []string        `json:"itemNames"`
	CreatedBy    string          `json:"createdBy"`
	DisplayTotal decimal.Decimal `json:"displayTotal"`
	GrandTotal   decimal.Decimal `json:"grandTotal"`
}

// PurchaseReportResponse is the purchases report payload.
type PurchaseReportResponse struct {
	Summary      PurchaseSummaryResponse     `json:"summary"`
	Rows         []PurchaseReportRowResponse `json:"rows"`
	PeriodLabel  string                      `json:"periodLabel,omitempty"`
	SupplierName string                      `json:"supplierName,omitempty"`
	MaterialName string                      `json:"materialName,omitempty"`
}

// ToPurchaseReportResponse converts a domain report to its DTO.
func ToPurchaseReportResponse(r *domain.PurchaseReport) PurchaseReportResponse {
	rows := make([]PurchaseReportRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = PurchaseReportRowResponse{
			Date:         row.Date,
			SupplierName: row.SupplierName,
			ItemNames:    row.ItemNames,
			CreatedBy:    row.CreatedBy,
			DisplayTotal: row.DisplayTotal,
			GrandTotal:   row.GrandTotal,
		}
	}
	return PurchaseReportResponse{
		Summary: PurchaseSummaryResponse{
			TransactionCount: r.Summary.TransactionCount,
			TotalValue:       r.Summary.TotalValue,
			TotalWeight:      r.Summary.TotalWeight,
		},
		Rows:         rows,
		PeriodLabel:  r.PeriodLabel,
		SupplierName: r.SupplierName,
		MaterialName: r.MaterialName,
	}
}

// ItemBreakdownRowResponse is one per-material row of a breakdown.
type ItemBreakdownRowResponse struct {
	MaterialName string          `json:"materialName"`
	TotalWeight  decimal.Decimal `json:"totalWeight"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Count        int             `json:"count"`
}

// SupplierMonthlyReportResponse is the supplier monthly report payload.
type SupplierMonthlyReportResponse struct {
	Supplier         SupplierResponse           `json:"supplier"`
	Year             int                        `json:"year"`
	Month            int                        `json:"month"`
	TransactionCount int                        `json:"transactionCount"`
	TotalWeight      decimal.Decimal            `json:"totalWeight"`
	TotalAmount      decimal.Decimal            `json:"totalAmount"`
	Rows             []ItemBreakdownRowResponse `json:"rows"`
}

// ToSupplierMonthlyReportResponse converts a domain report to its DTO.
func ToSupplierMonthlyReportResponse(r *domain.SupplierMonthlyReport) SupplierMonthlyReportResponse {
	rows := make([]ItemBreakdownRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = ItemBreakdownRowResponse{
			MaterialName: row.MaterialName,
			TotalWeight:  row.TotalWeight,
			TotalAmount:  row.TotalAmount,
			Count:        row.Count,
		}
	}
	return SupplierMonthlyReportResponse{
		Supplier:         ToSupplierResponse(&r.Supplier),
		Year:             r.Year,
		Month:            int(r.Month),
		TransactionCount: r.TransactionCount,
		TotalWeight:      r.TotalWeight,
		TotalAmount:      r.TotalAmount,
		Rows:             rows,
	}
}

// ExpenseReportRowResponse is one detail row of the expenses report.
type ExpenseReportRowResponse struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	TagNames    []string        `json:"tagNames"`
	Amount      decimal.Decimal `json:"amount"`
}

// ExpenseReportResponse is the expenses report payload.
type ExpenseReportResponse struct {
	ExpenseCount int                        `json:"expenseCount"`
	TotalAmount  decimal.Decimal            `json:"totalAmount"`
	Rows         []ExpenseReportRowResponse `json:"rows"`
	PeriodLabel  string                     `json:"periodLabel,omitempty"`
	TagName      string                     `json:"tagName,omitempty"`
}

// ToExpenseReportResponse converts a domain report to its DTO.
func ToExpenseReportResponse(r *domain.ExpenseReport) ExpenseReportResponse {
	rows := make([]ExpenseReportRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = ExpenseReportRowResponse{
			Date:        row.Date,
			Description: row.Description,
			TagNames:    row.TagNames,
			Amount:      row.Amount,
		}
	}
	return ExpenseReportResponse{
		ExpenseCount: r.ExpenseCount,
		TotalAmount:  r.TotalAmount,
		Rows:         rows,
		PeriodLabel:  r.PeriodLabel,
		TagName:      r.TagName,
	}
}
