package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wazeer/wazeer_backend/internal/adapters/export/pdf"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

var renderNow = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

func assertPDF(t *testing.T, data []byte) {
	t.Helper()
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should start with the PDF magic")
}

func TestRenderPurchaseReport(t *testing.T) {
	supplier := "Al Noor Scrap"
	weight := decimal.NewFromInt(15)
	report := &domain.PurchaseReport{
		Summary: domain.PurchaseSummary{
			TransactionCount: 2,
			TotalValue:       decimal.NewFromInt(750),
			TotalWeight:      &weight,
		},
		Rows: []domain.PurchaseReportRow{
			{
				Date:         time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC),
				SupplierName: &supplier,
				ItemNames:    []string{"Copper", "Iron"},
				CreatedBy:    "clerk",
				DisplayTotal: decimal.NewFromInt(500),
				GrandTotal:   decimal.NewFromInt(700),
			},
			{
				Date:         time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC),
				ItemNames:    []string{"Copper"},
				CreatedBy:    "boss",
				DisplayTotal: decimal.NewFromInt(250),
				GrandTotal:   decimal.NewFromInt(250),
			},
		},
		PeriodLabel:  "This Month",
		MaterialName: "Copper",
	}

	data, err := pdf.NewRenderer().RenderPurchaseReport(report, renderNow)
	require.NoError(t, err)
	assertPDF(t, data)
}

func TestRenderPurchaseReport_EmptyReport(t *testing.T) {
	// Header and stat cards are drawn even with zero body rows.
	report := &domain.PurchaseReport{
		Summary: domain.PurchaseSummary{TotalValue: decimal.Zero},
	}

	data, err := pdf.NewRenderer().RenderPurchaseReport(report, renderNow)
	require.NoError(t, err)
	assertPDF(t, data)
}

func TestRenderPurchaseReport_ManyRowsPaginate(t *testing.T) {
	report := &domain.PurchaseReport{
		Summary: domain.PurchaseSummary{TotalValue: decimal.Zero},
	}
	for i := 0; i < 120; i++ {
		report.Rows = append(report.Rows, domain.PurchaseReportRow{
			Date:         renderNow,
			ItemNames:    []string{"Copper"},
			CreatedBy:    "clerk",
			DisplayTotal: decimal.NewFromInt(10),
			GrandTotal:   decimal.NewFromInt(10),
		})
	}

	data, err := pdf.NewRenderer().RenderPurchaseReport(report, renderNow)
	require.NoError(t, err)
	assertPDF(t, data)

	// 120 rows cannot fit one A4 page; the paginated document carries more
	// page objects than an empty single-page render.
	empty, err := pdf.NewRenderer().RenderPurchaseReport(&domain.PurchaseReport{
		Summary: domain.PurchaseSummary{TotalValue: decimal.Zero},
	}, renderNow)
	require.NoError(t, err)
	assert.Greater(t, bytes.Count(data, []byte("/Type /Page")), bytes.Count(empty, []byte("/Type /Page")))
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

	data, err := pdf.NewRenderer().RenderSupplierMonthlyReport(report, renderNow)
	require.NoError(t, err)
	assertPDF(t, data)
}

func TestRenderExpenseReport(t *testing.T) {
	report := &domain.ExpenseReport{
		ExpenseCount: 1,
		TotalAmount:  decimal.NewFromInt(300),
		Rows: []domain.ExpenseReportRow{
			{
				Date:        time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC),
				Description: "Diesel — night shift", // non-cp1252-safe dash must not break output
				TagNames:    []string{"Fuel"},
				Amount:      decimal.NewFromInt(300),
			},
		},
	}

	data, err := pdf.NewRenderer().RenderExpenseReport(report, renderNow)
	require.NoError(t, err)
	assertPDF(t, data)
}
