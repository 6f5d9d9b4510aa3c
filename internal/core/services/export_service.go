package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/wazeer/wazeer_backend/internal/apperrors"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
	portssvc "github.com/wazeer/wazeer_backend/internal/core/ports/services"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// slugify collapses a name into a filename-safe lowercase token.
func slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// exportService implements the ReportExportSvcFacade interface by pairing the
// reporting service with one renderer per document format.
type exportService struct {
	BaseService
	reporting portssvc.ReportingSvcFacade
	renderers map[portssvc.ExportFormat]portssvc.ReportRenderer

	now func() time.Time
}

// NewExportService creates a new report export service.
func NewExportService(reporting portssvc.ReportingSvcFacade, pdf, xlsx portssvc.ReportRenderer) portssvc.ReportExportSvcFacade {
	return &exportService{
		reporting: reporting,
		renderers: map[portssvc.ExportFormat]portssvc.ReportRenderer{
			portssvc.FormatPDF:  pdf,
			portssvc.FormatXLSX: xlsx,
		},
		now: time.Now,
	}
}

var _ portssvc.ReportExportSvcFacade = (*exportService)(nil)

func (s *exportService) renderer(format portssvc.ExportFormat) (portssvc.ReportRenderer, string, error) {
	r, ok := s.renderers[format]
	if !ok || r == nil {
		return nil, "", fmt.Errorf("unsupported export format %q: %w", format, apperrors.ErrValidation)
	}
	if format == portssvc.FormatPDF {
		return r, contentTypePDF, nil
	}
	return r, contentTypeXLSX, nil
}

func (s *exportService) ExportPurchases(ctx context.Context, filter domain.ReportFilter, format portssvc.ExportFormat) (*portssvc.ExportArtifact, error) {
	renderer, contentType, err := s.renderer(format)
	if err != nil {
		return nil, err
	}

	report, err := s.reporting.PurchasesReport(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := s.now()
	data, err := renderer.RenderPurchaseReport(report, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to render purchases report")
		return nil, fmt.Errorf("failed to render purchases report: %w", err)
	}

	return &portssvc.ExportArtifact{
		Filename:    fmt.Sprintf("purchases-report-%s.%s", now.Format(domain.DateLayout), format),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func (s *exportService) ExportSupplierMonthly(ctx context.Context, supplierID string, year int, month time.Month, format portssvc.ExportFormat) (*portssvc.ExportArtifact, error) {
	renderer, contentType, err := s.renderer(format)
	if err != nil {
		return nil, err
	}

	report, err := s.reporting.SupplierMonthlyReport(ctx, supplierID, year, month)
	if err != nil {
		return nil, err
	}

	data, err := renderer.RenderSupplierMonthlyReport(report, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to render supplier monthly report")
		return nil, fmt.Errorf("failed to render supplier monthly report: %w", err)
	}

	filename := fmt.Sprintf("supplier-%s-%s-%d.%s",
		slugify(report.Supplier.Name), strings.ToLower(month.String()), year, format)
	return &portssvc.ExportArtifact{
		Filename:    filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

func (s *exportService) ExportExpenses(ctx context.Context, period domain.Period, tagID string, format portssvc.ExportFormat) (*portssvc.ExportArtifact, error) {
	renderer, contentType, err := s.renderer(format)
	if err != nil {
		return nil, err
	}

	report, err := s.reporting.ExpensesReport(ctx, period, tagID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	data, err := renderer.RenderExpenseReport(report, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to render expenses report")
		return nil, fmt.Errorf("failed to render expenses report: %w", err)
	}

	return &portssvc.ExportArtifact{
		Filename:    fmt.Sprintf("expenses-report-%s.%s", now.Format(domain.DateLayout), format),
		ContentType: contentType,
		Data:        data,
	}, nil
}
