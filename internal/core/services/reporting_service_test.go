package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/wazeer/wazeer_backend/internal/apperrors"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
	portssvc "github.com/wazeer/wazeer_backend/internal/core/ports/services"
	"github.com/wazeer/wazeer_backend/internal/core/services"
)

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockPurchaseRepo *MockPurchaseRepository
	mockExpenseRepo  *MockExpenseRepository
	mockSupplierRepo *MockSupplierReaderRepository
	mockMaterialRepo *MockMaterialRepository
	mockTagRepo      *MockTagReaderRepository
	service          portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockSupplierRepo = new(MockSupplierReaderRepository)
	suite.mockMaterialRepo = new(MockMaterialRepository)
	suite.mockTagRepo = new(MockTagReaderRepository)
	suite.service = services.NewReportingService(
		suite.mockPurchaseRepo,
		suite.mockExpenseRepo,
		suite.mockSupplierRepo,
		suite.mockMaterialRepo,
		suite.mockTagRepo,
	)
}

func (suite *ReportingServiceTestSuite) purchases() []domain.Purchase {
	copperID := "mat-copper"
	supplierName := "Al Noor Scrap"
	return []domain.Purchase{
		{
			PurchaseID:   "p1",
			SupplierName: &supplierName,
			Items: []domain.PurchaseItem{
				{MaterialID: &copperID, MaterialName: "Copper", Weight: decimal.NewFromInt(10), TotalPrice: decimal.NewFromInt(500)},
				{MaterialName: "Iron", Weight: decimal.NewFromInt(40), TotalPrice: decimal.NewFromInt(200)},
			},
			GrandTotal: decimal.NewFromInt(700),
			CreatedBy:  "clerk",
			CreatedAt:  time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			PurchaseID: "p2",
			Items: []domain.PurchaseItem{
				{MaterialName: "Aluminium", Weight: decimal.NewFromInt(20), TotalPrice: decimal.NewFromInt(300)},
			},
			GrandTotal: decimal.NewFromInt(300),
			CreatedBy:  "boss",
			CreatedAt:  time.Date(2025, time.January, 5, 9, 0, 0, 0, time.UTC),
		},
	}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestPurchasesReport_NoFilter() {
	ctx := context.Background()

	suite.mockPurchaseRepo.On("ListPurchases", ctx, "").Return(suite.purchases(), nil).Once()

	report, err := suite.service.PurchasesReport(ctx, domain.ReportFilter{})

	suite.Require().NoError(err)
	suite.Equal(2, report.Summary.TransactionCount)
	suite.True(report.Summary.TotalValue.Equal(decimal.NewFromInt(1000)))
	suite.Nil(report.Summary.TotalWeight)
	suite.Empty(report.PeriodLabel)

	suite.Require().Len(report.Rows, 2)
	suite.Equal([]string{"Copper", "Iron"}, report.Rows[0].ItemNames)
	suite.True(report.Rows[0].DisplayTotal.Equal(decimal.NewFromInt(700)))
	suite.Require().NotNil(report.Rows[0].SupplierName)
	suite.Equal("Al Noor Scrap", *report.Rows[0].SupplierName)

	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestPurchasesReport_MaterialFilter() {
	ctx := context.Background()
	material := &domain.Material{MaterialID: "mat-copper", Name: "Copper"}

	suite.mockPurchaseRepo.On("ListPurchases", ctx, "").Return(suite.purchases(), nil).Once()
	suite.mockMaterialRepo.On("FindMaterialByID", ctx, "mat-copper").Return(material, nil).Once()

	report, err := suite.service.PurchasesReport(ctx, domain.ReportFilter{MaterialID: "mat-copper"})

	suite.Require().NoError(err)
	suite.Equal(1, report.Summary.TransactionCount)
	// The matched item's price, not the purchase grand total.
	suite.True(report.Summary.TotalValue.Equal(decimal.NewFromInt(500)))
	suite.Require().NotNil(report.Summary.TotalWeight)
	suite.True(report.Summary.TotalWeight.Equal(decimal.NewFromInt(10)))
	suite.Equal("Copper", report.MaterialName)

	suite.Require().Len(report.Rows, 1)
	suite.True(report.Rows[0].DisplayTotal.Equal(decimal.NewFromInt(500)))
	suite.True(report.Rows[0].GrandTotal.Equal(decimal.NewFromInt(700)))
}

func (suite *ReportingServiceTestSuite) TestPurchasesReport_DeletedFilterEntityTolerated() {
	ctx := context.Background()

	suite.mockPurchaseRepo.On("ListPurchases", ctx, "").Return(suite.purchases(), nil).Once()
	suite.mockMaterialRepo.On("FindMaterialByID", ctx, "mat-gone").Return(nil, apperrors.ErrNotFound).Once()

	report, err := suite.service.PurchasesReport(ctx, domain.ReportFilter{MaterialID: "mat-gone"})

	suite.Require().NoError(err)
	suite.Equal(0, report.Summary.TransactionCount)
	suite.Empty(report.MaterialName)
	suite.Empty(report.Rows)
}

func (suite *ReportingServiceTestSuite) TestPurchasesReport_CustomPeriodLabel() {
	ctx := context.Background()

	suite.mockPurchaseRepo.On("ListPurchases", ctx, "").Return(suite.purchases(), nil).Once()

	report, err := suite.service.PurchasesReport(ctx, domain.ReportFilter{
		Period: domain.NewCustomPeriod("2025-03-01", "2025-03-31"),
	})

	suite.Require().NoError(err)
	suite.Equal("2025-03-01 to 2025-03-31", report.PeriodLabel)
	suite.Equal(1, report.Summary.TransactionCount)
}

func (suite *ReportingServiceTestSuite) TestSupplierMonthlyReport_Success() {
	ctx := context.Background()
	supplierID := uuid.NewString()
	supplier := &domain.Supplier{SupplierID: supplierID, Name: "Al Noor Scrap"}

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplierID).Return(supplier, nil).Once()
	suite.mockPurchaseRepo.On("ListPurchases", ctx, supplierID).Return(suite.purchases(), nil).Once()

	report, err := suite.service.SupplierMonthlyReport(ctx, supplierID, 2025, time.March)

	suite.Require().NoError(err)
	suite.Equal("Al Noor Scrap", report.Supplier.Name)
	suite.Equal(2025, report.Year)
	suite.Equal(time.March, report.Month)
	// Only p1 falls in March 2025.
	suite.Equal(1, report.TransactionCount)
	suite.True(report.TotalWeight.Equal(decimal.NewFromInt(50)))
	suite.True(report.TotalAmount.Equal(decimal.NewFromInt(700)))

	suite.Require().Len(report.Rows, 2)
	suite.Equal("Copper", report.Rows[0].MaterialName)
	suite.Equal("Iron", report.Rows[1].MaterialName)
}

func (suite *ReportingServiceTestSuite) TestSupplierMonthlyReport_SupplierNotFound() {
	ctx := context.Background()
	supplierID := uuid.NewString()

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplierID).Return(nil, apperrors.ErrNotFound).Once()

	report, err := suite.service.SupplierMonthlyReport(ctx, supplierID, 2025, time.March)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "ListPurchases")
}

func (suite *ReportingServiceTestSuite) TestExpensesReport_TagFilter() {
	ctx := context.Background()
	tagID := uuid.NewString()
	tag := &domain.Tag{TagID: tagID, Name: "Fuel"}
	expenses := []domain.Expense{
		{
			ExpenseID:   "e1",
			Description: "Diesel",
			Amount:      decimal.NewFromInt(300),
			Tags:        []domain.Tag{*tag},
			CreatedAt:   time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ExpenseID: "e2",
			Amount:    decimal.NewFromInt(80),
			CreatedAt: time.Date(2025, time.March, 11, 9, 0, 0, 0, time.UTC),
		},
	}

	suite.mockExpenseRepo.On("ListExpenses", ctx).Return(expenses, nil).Once()
	suite.mockTagRepo.On("FindTagByID", ctx, tagID).Return(tag, nil).Once()

	report, err := suite.service.ExpensesReport(ctx, domain.Period{}, tagID)

	suite.Require().NoError(err)
	suite.Equal(1, report.ExpenseCount)
	suite.True(report.TotalAmount.Equal(decimal.NewFromInt(300)))
	suite.Equal("Fuel", report.TagName)
	suite.Require().Len(report.Rows, 1)
	suite.Equal("Diesel", report.Rows[0].Description)
	suite.Equal([]string{"Fuel"}, report.Rows[0].TagNames)
}

func (suite *ReportingServiceTestSuite) TestExpensesReport_Empty() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("ListExpenses", ctx).Return([]domain.Expense{}, nil).Once()

	report, err := suite.service.ExpensesReport(ctx, domain.Period{}, "")

	suite.Require().NoError(err)
	suite.Equal(0, report.ExpenseCount)
	suite.True(report.TotalAmount.IsZero())
	suite.Empty(report.Rows)
	suite.NotNil(report.Rows)
}

// --- Run Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
