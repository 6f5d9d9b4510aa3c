package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wazeer/wazeer_backend/internal/apperrors"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
	portssvc "github.com/wazeer/wazeer_backend/internal/core/ports/services"
	"github.com/wazeer/wazeer_backend/internal/core/services"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) PurchasesReport(ctx context.Context, filter domain.ReportFilter) (*domain.PurchaseReport, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseReport), args.Error(1)
}

func (m *MockReportingService) SupplierMonthlyReport(ctx context.Context, supplierID string, year int, month time.Month) (*domain.SupplierMonthlyReport, error) {
	args := m.Called(ctx, supplierID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplierMonthlyReport), args.Error(1)
}

func (m *MockReportingService) ExpensesReport(ctx context.Context, period domain.Period, tagID string) (*domain.ExpenseReport, error) {
	args := m.Called(ctx, period, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseReport), args.Error(1)
}

// --- Mock ReportRenderer ---
type MockReportRenderer struct {
	mock.Mock
}

func (m *MockReportRenderer) RenderPurchaseReport(report *domain.PurchaseReport, now time.Time) ([]byte, error) {
	args := m.Called(report, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockReportRenderer) RenderSupplierMonthlyReport(report *domain.SupplierMonthlyReport, now time.Time) ([]byte, error) {
	args := m.Called(report, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockReportRenderer) RenderExpenseReport(report *domain.ExpenseReport, now time.Time) ([]byte, error) {
	args := m.Called(report, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// --- Test Suite ---
type ExportServiceTestSuite struct {
	suite.Suite
	mockReporting *MockReportingService
	mockPDF       *MockReportRenderer
	mockXLSX      *MockReportRenderer
	service       portssvc.ReportExportSvcFacade
}

func (suite *ExportServiceTestSuite) SetupTest() {
	suite.mockReporting = new(MockReportingService)
	suite.mockPDF = new(MockReportRenderer)
	suite.mockXLSX = new(MockReportRenderer)
	suite.service = services.NewExportService(suite.mockReporting, suite.mockPDF, suite.mockXLSX)
}

// --- Test Cases ---

func (suite *ExportServiceTestSuite) TestExportPurchases_PDF() {
	ctx := context.Background()
	report := &domain.PurchaseReport{}
	rendered := []byte("%PDF-stub")

	suite.mockReporting.On("PurchasesReport", ctx, domain.ReportFilter{}).Return(report, nil).Once()
	suite.mockPDF.On("RenderPurchaseReport", report, mock.AnythingOfType("time.Time")).Return(rendered, nil).Once()

	artifact, err := suite.service.ExportPurchases(ctx, domain.ReportFilter{}, portssvc.FormatPDF)

	suite.Require().NoError(err)
	suite.Equal("application/pdf", artifact.ContentType)
	suite.Equal(rendered, artifact.Data)
	expectedName := fmt.Sprintf("purchases-report-%s.pdf", time.Now().Format(domain.DateLayout))
	suite.Equal(expectedName, artifact.Filename)
	suite.mockXLSX.AssertNotCalled(suite.T(), "RenderPurchaseReport")
}

func (suite *ExportServiceTestSuite) TestExportPurchases_XLSX() {
	ctx := context.Background()
	report := &domain.PurchaseReport{}
	rendered := []byte{0x50, 0x4b}

	suite.mockReporting.On("PurchasesReport", ctx, domain.ReportFilter{}).Return(report, nil).Once()
	suite.mockXLSX.On("RenderPurchaseReport", report, mock.AnythingOfType("time.Time")).Return(rendered, nil).Once()

	artifact, err := suite.service.ExportPurchases(ctx, domain.ReportFilter{}, portssvc.FormatXLSX)

	suite.Require().NoError(err)
	suite.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", artifact.ContentType)
	suite.mockPDF.AssertNotCalled(suite.T(), "RenderPurchaseReport")
}

func (suite *ExportServiceTestSuite) TestExportPurchases_UnknownFormat() {
	ctx := context.Background()

	artifact, err := suite.service.ExportPurchases(ctx, domain.ReportFilter{}, portssvc.ExportFormat("docx"))

	suite.Require().Error(err)
	suite.Nil(artifact)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReporting.AssertNotCalled(suite.T(), "PurchasesReport")
}

func (suite *ExportServiceTestSuite) TestExportSupplierMonthly_FilenameSlug() {
	ctx := context.Background()
	supplierID := uuid.NewString()
	report := &domain.SupplierMonthlyReport{
		Supplier: domain.Supplier{SupplierID: supplierID, Name: "Al Noor & Sons Scrap"},
		Year:     2025,
		Month:    time.March,
	}

	suite.mockReporting.On("SupplierMonthlyReport", ctx, supplierID, 2025, time.March).Return(report, nil).Once()
	suite.mockPDF.On("RenderSupplierMonthlyReport", report, mock.AnythingOfType("time.Time")).Return([]byte("%PDF-stub"), nil).Once()

	artifact, err := suite.service.ExportSupplierMonthly(ctx, supplierID, 2025, time.March, portssvc.FormatPDF)

	suite.Require().NoError(err)
	suite.Equal("supplier-al-noor-sons-scrap-march-2025.pdf", artifact.Filename)
}

func (suite *ExportServiceTestSuite) TestExportSupplierMonthly_ReportErrorPropagates() {
	ctx := context.Background()
	supplierID := uuid.NewString()

	suite.mockReporting.On("SupplierMonthlyReport", ctx, supplierID, 2025, time.March).Return(nil, apperrors.ErrNotFound).Once()

	artifact, err := suite.service.ExportSupplierMonthly(ctx, supplierID, 2025, time.March, portssvc.FormatPDF)

	suite.Require().Error(err)
	suite.Nil(artifact)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPDF.AssertNotCalled(suite.T(), "RenderSupplierMonthlyReport")
}

func (suite *ExportServiceTestSuite) TestExportExpenses_XLSX() {
	ctx := context.Background()
	period := domain.NewCustomPeriod("2025-03-01", "2025-03-31")
	report := &domain.ExpenseReport{}
	rendered := []byte{0x50, 0x4b}

	suite.mockReporting.On("ExpensesReport", ctx, period, "tag-1").Return(report, nil).Once()
	suite.mockXLSX.On("RenderExpenseReport", report, mock.AnythingOfType("time.Time")).Return(rendered, nil).Once()

	artifact, err := suite.service.ExportExpenses(ctx, period, "tag-1", portssvc.FormatXLSX)

	suite.Require().NoError(err)
	expectedName := fmt.Sprintf("expenses-report-%s.xlsx", time.Now().Format(domain.DateLayout))
	suite.Equal(expectedName, artifact.Filename)
	suite.Equal(rendered, artifact.Data)
}

// --- Run Suite ---
func TestExportService(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
