package services

import (
	"context"
	"time"

	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

// ReportingSvcFacade defines operations for building report payloads. Each
// call recomputes from a fresh snapshot of the underlying records; nothing is
// cached between invocations.
type ReportingSvcFacade interface {
	// PurchasesReport aggregates purchases under the given filter: headline
	// summary plus one detail row per purchase.
	PurchasesReport(ctx context.Context, filter domain.ReportFilter) (*domain.PurchaseReport, error)

	// SupplierMonthlyReport tables one supplier's per-material breakdown for
	// an exact calendar month.
	SupplierMonthlyReport(ctx context.Context, supplierID string, year int, month time.Month) (*domain.SupplierMonthlyReport, error)

	// ExpensesReport aggregates expenses by period and optional tag.
	ExpensesReport(ctx context.Context, period domain.Period, tagID string) (*domain.ExpenseReport, error)
}
