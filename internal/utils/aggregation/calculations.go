// Package aggregation holds the pure reporting arithmetic: narrowing a
// purchase set by period, supplier and material, and reducing it to summary
// figures and per-material breakdowns. Functions here never perform I/O and
// never mutate their inputs; identical inputs produce identical outputs.
package aggregation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

// Narrow filters purchases by the report filter's period, supplier and
// material, preserving input order. A material filter retains purchases with
// at least one line item referencing that material.
func Narrow(purchases []domain.Purchase, f domain.ReportFilter, now time.Time) []domain.Purchase {
	out := make([]domain.Purchase, 0, len(purchases))
	for _, p := range purchases {
		if !f.Period.Contains(p.CreatedAt, now) {
			continue
		}
		if f.SupplierID != "" && (p.SupplierID == nil || *p.SupplierID != f.SupplierID) {
			continue
		}
		if f.MaterialID != "" && p.ItemForMaterial(f.MaterialID) == nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Summarize reduces an already narrowed purchase set to its headline figures.
// Under a material filter the total is the matched line item's price, not the
// purchase grand total, and the matched weight is accumulated alongside;
// otherwise grand totals are summed and no weight is reported.
func Summarize(narrowed []domain.Purchase, f domain.ReportFilter) domain.PurchaseSummary {
	summary := domain.PurchaseSummary{
		TransactionCount: len(narrowed),
		TotalValue:       decimal.Zero,
	}

	if f.MaterialID == "" {
		for _, p := range narrowed {
			summary.TotalValue = summary.TotalValue.Add(p.GrandTotal)
		}
		return summary
	}

	weight := decimal.Zero
	for _, p := range narrowed {
		item := p.ItemForMaterial(f.MaterialID)
		if item == nil {
			continue
		}
		summary.TotalValue = summary.TotalValue.Add(item.TotalPrice)
		weight = weight.Add(item.Weight)
	}
	summary.TotalWeight = &weight
	return summary
}

// Aggregate narrows then summarizes in one step.
func Aggregate(purchases []domain.Purchase, f domain.ReportFilter, now time.Time) domain.PurchaseSummary {
	return Summarize(Narrow(purchases, f, now), f)
}

// BreakdownByMaterial groups every line item of the given purchases by
// material name, accumulating weight, amount and occurrence count per group.
// Groups are ordered by descending total amount; ties keep first-appearance
// order so repeated calls yield identical output.
func BreakdownByMaterial(purchases []domain.Purchase) []domain.ItemBreakdownRow {
	index := make(map[string]int)
	rows := make([]domain.ItemBreakdownRow, 0)

	for _, p := range purchases {
		for _, item := range p.Items {
			i, ok := index[item.MaterialName]
			if !ok {
				i = len(rows)
				index[item.MaterialName] = i
				rows = append(rows, domain.ItemBreakdownRow{
					MaterialName: item.MaterialName,
					TotalWeight:  decimal.Zero,
					TotalAmount:  decimal.Zero,
				})
			}
			rows[i].TotalWeight = rows[i].TotalWeight.Add(item.Weight)
			rows[i].TotalAmount = rows[i].TotalAmount.Add(item.TotalPrice)
			rows[i].Count++
		}
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].TotalAmount.GreaterThan(rows[b].TotalAmount)
	})
	return rows
}

// BreakdownTotals sums the weight and amount columns of a breakdown, for
// totals-footer rows.
func BreakdownTotals(rows []domain.ItemBreakdownRow) (weight, amount decimal.Decimal) {
	weight, amount = decimal.Zero, decimal.Zero
	for _, r := range rows {
		weight = weight.Add(r.TotalWeight)
		amount = amount.Add(r.TotalAmount)
	}
	return weight, amount
}

// NarrowExpenses filters expenses by period and, when tagID is non-empty, by
// tag membership. Input order is preserved.
func NarrowExpenses(expenses []domain.Expense, period domain.Period, tagID string, now time.Time) []domain.Expense {
	out := make([]domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		if !period.Contains(e.CreatedAt, now) {
			continue
		}
		if tagID != "" && !e.HasTag(tagID) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SumExpenses totals the amounts of the given expenses.
func SumExpenses(expenses []domain.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.Amount)
	}
	return sum
}
