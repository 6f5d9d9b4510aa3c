package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wazeer/wazeer_backend/internal/apperrors"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
	portsrepo "github.com/wazeer/wazeer_backend/internal/core/ports/repositories"
	portssvc "github.com/wazeer/wazeer_backend/internal/core/ports/services"
	"github.com/wazeer/wazeer_backend/internal/utils/aggregation"
)

// reportingService implements the ReportingSvcFacade interface. Reports are
// recomputed from a fresh repository snapshot on every call.
type reportingService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseReaderRepository
	expenseRepo  portsrepo.ExpenseReaderRepository
	supplierRepo portsrepo.SupplierReaderRepository
	materialRepo portsrepo.MaterialReaderRepository
	tagRepo      portsrepo.TagReaderRepository

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	purchaseRepo portsrepo.PurchaseReaderRepository,
	expenseRepo portsrepo.ExpenseReaderRepository,
	supplierRepo portsrepo.SupplierReaderRepository,
	materialRepo portsrepo.MaterialReaderRepository,
	tagRepo portsrepo.TagReaderRepository,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		purchaseRepo: purchaseRepo,
		expenseRepo:  expenseRepo,
		supplierRepo: supplierRepo,
		materialRepo: materialRepo,
		tagRepo:      tagRepo,
		now:          time.Now,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) PurchasesReport(ctx context.Context, filter domain.ReportFilter) (*domain.PurchaseReport, error) {
	purchases, err := s.purchaseRepo.ListPurchases(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load purchases for report: %w", err)
	}

	now := s.now()
	narrowed := aggregation.Narrow(purchases, filter, now)

	report := &domain.PurchaseReport{
		Summary: aggregation.Summarize(narrowed, filter),
		Rows:    make([]domain.PurchaseReportRow, 0, len(narrowed)),
	}
	if !filter.Period.IsAll() {
		report.PeriodLabel = filter.Period.Label()
	}

	// Resolve filter entities so the subtitle can name them. A filter on an
	// entity deleted since matches nothing, which is fine; the label is best
	// effort.
	if filter.SupplierID != "" {
		supplier, err := s.supplierRepo.FindSupplierByID(ctx, filter.SupplierID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve supplier for report: %w", err)
		}
		if supplier != nil {
			report.SupplierName = supplier.Name
		}
	}
	if filter.MaterialID != "" {
		material, err := s.materialRepo.FindMaterialByID(ctx, filter.MaterialID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve material for report: %w", err)
		}
		if material != nil {
			report.MaterialName = material.Name
		}
	}

	for _, p := range narrowed {
		row := domain.PurchaseReportRow{
			Date:         p.CreatedAt,
			SupplierName: p.SupplierName,
			CreatedBy:    p.CreatedBy,
			DisplayTotal: p.GrandTotal,
			GrandTotal:   p.GrandTotal,
		}
		for _, item := range p.Items {
			row.ItemNames = append(row.ItemNames, item.MaterialName)
		}
		// Under a material filter the row shows the matched line item's
		// figure, not the whole purchase.
		if filter.MaterialID != "" {
			if item := p.ItemForMaterial(filter.MaterialID); item != nil {
				row.DisplayTotal = item.TotalPrice
			}
		}
		report.Rows = append(report.Rows, row)
	}

	return report, nil
}

func (s *reportingService) SupplierMonthlyReport(ctx context.Context, supplierID string, year int, month time.Month) (*domain.SupplierMonthlyReport, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve supplier for monthly report: %w", err)
	}

	purchases, err := s.purchaseRepo.ListPurchases(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to load purchases for monthly report: %w", err)
	}

	filter := domain.ReportFilter{Period: domain.NewMonthYearPeriod(year, month)}
	narrowed := aggregation.Narrow(purchases, filter, s.now())
	rows := aggregation.BreakdownByMaterial(narrowed)
	totalWeight, totalAmount := aggregation.BreakdownTotals(rows)

	return &domain.SupplierMonthlyReport{
		Supplier:         *supplier,
		Year:             year,
		Month:            month,
		TransactionCount: len(narrowed),
		TotalWeight:      totalWeight,
		TotalAmount:      totalAmount,
		Rows:             rows,
	}, nil
}

func (s *reportingService) ExpensesReport(ctx context.Context, period domain.Period, tagID string) (*domain.ExpenseReport, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for report: %w", err)
	}

	narrowed := aggregation.NarrowExpenses(expenses, period, tagID, s.now())

	report := &domain.ExpenseReport{
		ExpenseCount: len(narrowed),
		TotalAmount:  aggregation.SumExpenses(narrowed),
		Rows:         make([]domain.ExpenseReportRow, 0, len(narrowed)),
	}
	if !period.IsAll() {
		report.PeriodLabel = period.Label()
	}
	if tagID != "" {
		tag, err := s.tagRepo.FindTagByID(ctx, tagID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve tag for report: %w", err)
		}
		if tag != nil {
			report.TagName = tag.Name
		}
	}

	for _, e := range narrowed {
		row := domain.ExpenseReportRow{
			Date:        e.CreatedAt,
			Description: e.Description,
			Amount:      e.Amount,
		}
		for _, t := range e.Tags {
			row.TagNames = append(row.TagNames, t.Name)
		}
		report.Rows = append(report.Rows, row)
	}

	return report, nil
}
