package services

import (
	"context"
	"time"

	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

// ExportFormat names a supported report document format.
type ExportFormat string

const (
	FormatPDF  ExportFormat = "pdf"
	FormatXLSX ExportFormat = "xlsx"
)

// ExportArtifact is a rendered report ready for download.
type ExportArtifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReportRenderer turns report payloads into document bytes. Implementations
// live in the export adapters (one per format) and must tolerate empty
// reports: header and stat cards are always drawn, the table may have zero
// body rows.
type ReportRenderer interface {
	RenderPurchaseReport(report *domain.PurchaseReport, now time.Time) ([]byte, error)
	RenderSupplierMonthlyReport(report *domain.SupplierMonthlyReport, now time.Time) ([]byte, error)
	RenderExpenseReport(report *domain.ExpenseReport, now time.Time) ([]byte, error)
}

// ReportExportSvcFacade builds a report and renders it into a downloadable
// document with a deterministic filename.
type ReportExportSvcFacade interface {
	ExportPurchases(ctx context.Context, filter domain.ReportFilter, format ExportFormat) (*ExportArtifact, error)
	ExportSupplierMonthly(ctx context.Context, supplierID string, year int, month time.Month, format ExportFormat) (*ExportArtifact, error)
	ExportExpenses(ctx context.Context, period domain.Period, tagID string, format ExportFormat) (*ExportArtifact, error)
}
