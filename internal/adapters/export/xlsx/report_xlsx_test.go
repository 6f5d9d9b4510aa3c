package xlsx_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wazeer/wazeer_backend/internal/adapters/export/xlsx"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

var renderNow = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

func openWorkbook(t *testing.T, data []byte) (*excelize.File, string) {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f, f.GetSheetName(f.GetActiveSheetIndex())
}

func cell(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref)
	require.NoError(t, err)
	return v
}

func TestRenderPurchaseReport(t *testing.T) {
	supplier := "Al Noor Scrap"
	report := &domain.PurchaseReport{
		Summary: domain.PurchaseSummary{
			TransactionCount: 1,
			TotalValue:       decimal.NewFromInt(700),
		},
		Rows: []domain.PurchaseReportRow{
			{
				Date:         time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC),
				SupplierName: &supplier,
				ItemNames:    []string{"Copper", "Iron"},
				CreatedBy:    "clerk",
				DisplayTotal: decimal.NewFromInt(700),
				GrandTotal:   decimal.NewFromInt(700),
			},
		},
		PeriodLabel: "This Month",
	}

	data, err := xlsx.NewRenderer().RenderPurchaseReport(report, renderNow)
	require.NoError(t, err)

	f, sheet := openWorkbook(t, data)
	assert.Equal(t, "Wazeer", cell(t, f, sheet, "A1"))
	assert.Equal(t, "March 15, 2025", cell(t, f, sheet, "C1"))
	assert.Equal(t, "Purchases Report", cell(t, f, sheet, "A2"))
	assert.Equal(t, "Period: This Month", cell(t, f, sheet, "A3"))

	// Stats block starts after the blank spacer row.
	assert.Equal(t, "Transactions", cell(t, f, sheet, "A5"))
	assert.Equal(t, "1", cell(t, f, sheet, "B5"))
	assert.Equal(t, "Total Value", cell(t, f, sheet, "A6"))

	// Table head then the single body row.
	assert.Equal(t, "Date", cell(t, f, sheet, "A8"))
	assert.Equal(t, "2025-03-10", cell(t, f, sheet, "A9"))
	assert.Equal(t, "Al Noor Scrap", cell(t, f, sheet, "B9"))
	assert.Equal(t, "Copper, Iron", cell(t, f, sheet, "C9"))
	assert.Equal(t, "700", cell(t, f, sheet, "E9"))
}

func TestRenderPurchaseReport_EmptyReport(t *testing.T) {
	report := &domain.PurchaseReport{
		Summary: domain.PurchaseSummary{TotalValue: decimal.Zero},
	}

	data, err := xlsx.NewRenderer().RenderPurchaseReport(report, renderNow)
	require.NoError(t, err)

	f, sheet := openWorkbook(t, data)
	assert.Equal(t, "All records", cell(t, f, sheet, "A3"))
	assert.Equal(t, "Date", cell(t, f, sheet, "A8"))
	// No body rows beyond the head.
	assert.Empty(t, cell(t, f, sheet, "A9"))
}

func TestRenderSupplierMonthlyReport(t *testing.T) {
	phone := "+20 100 555 0102"
	report := &domain.SupplierMonthlyReport{
		Supplier:         domain.Supplier{Name: "Al Noor Scrap", Phone: &phone},
		Year:             2025,
		Month:            time.March,
		TransactionCount: 2,
		TotalWeight:      decimal.NewFromInt(50),
		TotalAmount:      decimal.NewFromInt(700),
		Rows: []domain.ItemBreakdownRow{
			{MaterialName: "Copper", TotalWeight: decimal.NewFromInt(10), TotalAmount: decimal.NewFromInt(500), Count: 1},
			{MaterialName: "Iron", TotalWeight: decimal.NewFromInt(40), TotalAmount: decimal.NewFromInt(200), Count: 1},
		},
	}

	data, err := xlsx.NewRenderer().RenderSupplierMonthlyReport(report, renderNow)
	require.NoError(t, err)

	f, sheet := openWorkbook(t, data)
	assert.Equal(t, "Supplier Report — Al Noor Scrap", cell(t, f, sheet, "A2"))
	assert.Equal(t, "March 2025 · +20 100 555 0102", cell(t, f, sheet, "A3"))

	assert.Equal(t, "Item", cell(t, f, sheet, "A9"))
	assert.Equal(t, "Copper", cell(t, f, sheet, "A10"))
	assert.Equal(t, "Iron", cell(t, f, sheet, "A11"))
	// Totals footer.
	assert.Equal(t, "Total", cell(t, f, sheet, "A12"))
	assert.Equal(t, "50", cell(t, f, sheet, "C12"))
	assert.Equal(t, "700", cell(t, f, sheet, "D12"))
}

func TestRenderExpenseReport(t *testing.T) {
	report := &domain.ExpenseReport{
		ExpenseCount: 1,
		TotalAmount:  decimal.NewFromInt(300),
		Rows: []domain.ExpenseReportRow{
			{
				Date:        time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC),
				Description: "Diesel",
				TagNames:    []string{"Fuel", "Transport"},
				Amount:      decimal.NewFromInt(300),
			},
		},
		TagName: "Fuel",
	}

	data, err := xlsx.NewRenderer().RenderExpenseReport(report, renderNow)
	require.NoError(t, err)

	f, sheet := openWorkbook(t, data)
	assert.Equal(t, "Expenses Report", cell(t, f, sheet, "A2"))
	assert.Equal(t, "Tag: Fuel", cell(t, f, sheet, "A3"))
	assert.Equal(t, "Expenses", cell(t, f, sheet, "A5"))
	assert.Equal(t, "Diesel", cell(t, f, sheet, "B9"))
	assert.Equal(t, "Fuel, Transport", cell(t, f, sheet, "C9"))
	assert.Equal(t, "300", cell(t, f, sheet, "D9"))
}
