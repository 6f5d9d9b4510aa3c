// Package xlsx renders report payloads into spreadsheet workbooks: a title
// block, the headline figures and the same table the PDF export carries.
// Numbers are written as numbers so the file stays usable for further
// spreadsheet work.
package xlsx

import (
	"bytes"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
	portssvc "github.com/wazeer/wazeer_backend/internal/core/ports/services"
	"github.com/xuri/excelize/v2"
)

// Renderer implements the ReportRenderer port for XLSX output.
type Renderer struct{}

// NewRenderer creates an XLSX report renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

var _ portssvc.ReportRenderer = (*Renderer)(nil)

func numeric(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// writeRows writes consecutive sheet rows starting at startRow, returning the
// next free row number.
func writeRows(f *excelize.File, sheet string, startRow int, rows [][]interface{}) (int, error) {
	row := startRow
	for _, cells := range rows {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return 0, fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return 0, fmt.Errorf("failed to write sheet row %d: %w", row, err)
		}
		row++
	}
	return row, nil
}

func render(title, subtitle string, now time.Time, stats [][]interface{}, head []interface{}, body [][]interface{}, foot []interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	rows := [][]interface{}{
		{"Wazeer", "", now.Format("January 2, 2006")},
		{title},
	}
	if subtitle != "" {
		rows = append(rows, []interface{}{subtitle})
	}
	rows = append(rows, []interface{}{})
	rows = append(rows, stats...)
	rows = append(rows, []interface{}{}, head)
	rows = append(rows, body...)
	if foot != nil {
		rows = append(rows, foot)
	}

	if _, err := writeRows(f, sheet, 1, rows); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func subtitleOrAll(parts []string) string {
	if len(parts) == 0 {
		return "All records"
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += " · " + p
	}
	return out
}

// RenderPurchaseReport renders the purchases report workbook.
func (r *Renderer) RenderPurchaseReport(report *domain.PurchaseReport, now time.Time) ([]byte, error) {
	var parts []string
	if report.PeriodLabel != "" {
		parts = append(parts, "Period: "+report.PeriodLabel)
	}
	if report.SupplierName != "" {
		parts = append(parts, "Supplier: "+report.SupplierName)
	}
	if report.MaterialName != "" {
		parts = append(parts, "Item: "+report.MaterialName)
	}

	totalLabel := "Total Value"
	if report.MaterialName != "" {
		totalLabel = "Total — " + report.MaterialName
	}
	stats := [][]interface{}{
		{"Transactions", report.Summary.TransactionCount},
		{totalLabel, numeric(report.Summary.TotalValue)},
	}
	if report.Summary.TotalWeight != nil {
		stats = append(stats, []interface{}{
			"Weight — " + report.MaterialName + " (kg)", numeric(*report.Summary.TotalWeight),
		})
	}

	head := []interface{}{"Date", "Supplier", "Items", "Created By", "Total"}
	body := make([][]interface{}, len(report.Rows))
	for i, row := range report.Rows {
		supplier := ""
		if row.SupplierName != nil {
			supplier = *row.SupplierName
		}
		items := ""
		for j, name := range row.ItemNames {
			if j > 0 {
				items += ", "
			}
			items += name
		}
		body[i] = []interface{}{
			row.Date.Format(domain.DateLayout),
			supplier,
			items,
			row.CreatedBy,
			numeric(row.DisplayTotal),
		}
	}

	return render("Purchases Report", subtitleOrAll(parts), now, stats, head, body, nil)
}

// RenderSupplierMonthlyReport renders one supplier's monthly breakdown
// workbook with a totals row.
func (r *Renderer) RenderSupplierMonthlyReport(report *domain.SupplierMonthlyReport, now time.Time) ([]byte, error) {
	subtitle := fmt.Sprintf("%s %d", report.Month.String(), report.Year)
	if report.Supplier.Phone != nil && *report.Supplier.Phone != "" {
		subtitle += " · " + *report.Supplier.Phone
	}

	stats := [][]interface{}{
		{"Transactions", report.TransactionCount},
		{"Total Weight (kg)", numeric(report.TotalWeight)},
		{"Total Paid", numeric(report.TotalAmount)},
	}

	head := []interface{}{"Item", "Transactions", "Total Weight (kg)", "Total Amount"}
	body := make([][]interface{}, len(report.Rows))
	for i, row := range report.Rows {
		body[i] = []interface{}{
			row.MaterialName,
			row.Count,
			numeric(row.TotalWeight),
			numeric(row.TotalAmount),
		}
	}
	foot := []interface{}{"Total", "", numeric(report.TotalWeight), numeric(report.TotalAmount)}

	return render("Supplier Report — "+report.Supplier.Name, subtitle, now, stats, head, body, foot)
}

// RenderExpenseReport renders the expenses report workbook.
func (r *Renderer) RenderExpenseReport(report *domain.ExpenseReport, now time.Time) ([]byte, error) {
	var parts []string
	if report.PeriodLabel != "" {
		parts = append(parts, "Period: "+report.PeriodLabel)
	}
	if report.TagName != "" {
		parts = append(parts, "Tag: "+report.TagName)
	}

	stats := [][]interface{}{
		{"Expenses", report.ExpenseCount},
		{"Total Amount", numeric(report.TotalAmount)},
	}

	head := []interface{}{"Date", "Description", "Tags", "Amount"}
	body := make([][]interface{}, len(report.Rows))
	for i, row := range report.Rows {
		tags := ""
		for j, name := range row.TagNames {
			if j > 0 {
				tags += ", "
			}
			tags += name
		}
		body[i] = []interface{}{
			row.Date.Format(domain.DateLayout),
			row.Description,
			tags,
			numeric(row.Amount),
		}
	}

	return render("Expenses Report", subtitleOrAll(parts), now, stats, head, body, nil)
}
