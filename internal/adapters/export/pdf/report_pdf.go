// Package pdf renders report payloads into A4 documents styled after the
// Wazeer web client: a brand header band, a row of stat cards and a striped
// table with optional totals footer.
package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
	portssvc "github.com/wazeer/wazeer_backend/internal/core/ports/services"
	"github.com/wazeer/wazeer_backend/internal/utils"
)

const (
	pageWidth  = 210.0
	marginX    = 14.0
	bandHeight = 16.0
	tableWidth = pageWidth - 2*marginX

	rowHeight     = 7.0
	pageBreakAtY  = 272.0
	statRowStartY = 40.0
)

type rgb struct{ r, g, b int }

var (
	brandColor = rgb{22, 163, 74}
	mutedColor = rgb{120, 120, 120}
	darkColor  = rgb{30, 30, 30}
	cardFill   = rgb{245, 247, 250}
	stripeFill = rgb{248, 250, 252}
	footFill   = rgb{240, 253, 244}
)

// Renderer implements the ReportRenderer port for PDF output.
type Renderer struct{}

// NewRenderer creates a PDF report renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

var _ portssvc.ReportRenderer = (*Renderer)(nil)

type stat struct {
	label string
	value string
}

type column struct {
	title      string
	width      float64
	alignRight bool
	bold       bool
}

// newDoc creates an A4 portrait document. The translator maps UTF-8 strings
// into the cp1252 range the built-in Helvetica font covers, so the em dash
// and middle dot used in the layout render correctly.
func newDoc() (*fpdf.Fpdf, func(string) string) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	return doc, doc.UnicodeTranslatorFromDescriptor("")
}

func setFill(doc *fpdf.Fpdf, c rgb) { doc.SetFillColor(c.r, c.g, c.b) }
func setText(doc *fpdf.Fpdf, c rgb) { doc.SetTextColor(c.r, c.g, c.b) }

// drawHeader paints the brand band with the product name and the current
// date, then the report title and its muted subtitle.
func drawHeader(doc *fpdf.Fpdf, tr func(string) string, title, subtitle string, now time.Time) {
	title, subtitle = tr(title), tr(subtitle)
	setFill(doc, brandColor)
	doc.Rect(0, 0, pageWidth, bandHeight, "F")

	setText(doc, rgb{255, 255, 255})
	doc.SetFont("Helvetica", "B", 11)
	doc.Text(marginX, 10.5, "Wazeer")

	doc.SetFont("Helvetica", "", 9)
	dateStr := now.Format("January 2, 2006")
	doc.Text(pageWidth-marginX-doc.GetStringWidth(dateStr), 10.5, dateStr)

	setText(doc, darkColor)
	doc.SetFont("Helvetica", "B", 16)
	doc.Text(marginX, 28, title)

	if subtitle != "" {
		doc.SetFont("Helvetica", "", 9)
		setText(doc, mutedColor)
		doc.Text(marginX, 35, subtitle)
	}
}

// drawStatRow paints one rounded card per stat and returns the y below them.
func drawStatRow(doc *fpdf.Fpdf, tr func(string) string, stats []stat, y float64) float64 {
	colW := tableWidth / float64(len(stats))
	for i, s := range stats {
		x := marginX + float64(i)*colW
		setFill(doc, cardFill)
		doc.RoundedRect(x, y, colW-4, 18, 2, "1234", "F")

		doc.SetFont("Helvetica", "B", 12)
		setText(doc, brandColor)
		doc.Text(x+6, y+10, tr(s.value))

		doc.SetFont("Helvetica", "", 8)
		setText(doc, mutedColor)
		doc.Text(x+6, y+15.5, tr(s.label))
	}
	return y + 24
}

func drawTableHead(doc *fpdf.Fpdf, cols []column, y float64) float64 {
	setFill(doc, brandColor)
	setText(doc, rgb{255, 255, 255})
	doc.SetFont("Helvetica", "B", 9)
	x := marginX
	for _, col := range cols {
		doc.SetXY(x, y)
		align := "L"
		if col.alignRight {
			align = "R"
		}
		doc.CellFormat(col.width, rowHeight, col.title, "", 0, align, true, 0, "")
		x += col.width
	}
	return y + rowHeight
}

func drawTableRow(doc *fpdf.Fpdf, tr func(string) string, cols []column, cells []string, y float64, striped bool) float64 {
	setText(doc, darkColor)
	x := marginX
	for i, col := range cols {
		doc.SetXY(x, y)
		style := ""
		if col.bold {
			style = "B"
		}
		doc.SetFont("Helvetica", style, 8.5)
		align := "L"
		if col.alignRight {
			align = "R"
		}
		cell := tr(cells[i])
		// Truncate overflowing text so columns never collide.
		for doc.GetStringWidth(cell) > col.width-2 && len(cell) > 1 {
			runes := []rune(cell)
			cell = strings.TrimSpace(string(runes[:len(runes)-2])) + tr("…")
		}
		if striped {
			setFill(doc, stripeFill)
		}
		doc.CellFormat(col.width, rowHeight, cell, "", 0, align, striped, 0, "")
		x += col.width
	}
	return y + rowHeight
}

func drawTableFoot(doc *fpdf.Fpdf, tr func(string) string, cols []column, cells []string, y float64) float64 {
	setFill(doc, footFill)
	setText(doc, brandColor)
	doc.SetFont("Helvetica", "B", 9)
	x := marginX
	for i, col := range cols {
		doc.SetXY(x, y)
		align := "L"
		if col.alignRight {
			align = "R"
		}
		doc.CellFormat(col.width, rowHeight, tr(cells[i]), "", 0, align, true, 0, "")
		x += col.width
	}
	return y + rowHeight
}

// drawTable lays out head, body and optional foot, breaking pages as needed
// and repeating the head on each new page.
func drawTable(doc *fpdf.Fpdf, tr func(string) string, cols []column, body [][]string, foot []string, y float64) {
	y = drawTableHead(doc, cols, y)
	for i, cells := range body {
		if y > pageBreakAtY {
			doc.AddPage()
			y = drawTableHead(doc, cols, marginX)
		}
		y = drawTableRow(doc, tr, cols, cells, y, i%2 == 1)
	}
	if foot != nil {
		if y > pageBreakAtY {
			doc.AddPage()
			y = drawTableHead(doc, cols, marginX)
		}
		drawTableFoot(doc, tr, cols, foot, y)
	}
}

func output(doc *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func dash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// filterSubtitle joins the active filter labels, defaulting to "All records".
func filterSubtitle(parts []string) string {
	if len(parts) == 0 {
		return "All records"
	}
	return strings.Join(parts, "  ·  ")
}

// RenderPurchaseReport renders the purchases report document.
func (r *Renderer) RenderPurchaseReport(report *domain.PurchaseReport, now time.Time) ([]byte, error) {
	doc, tr := newDoc()

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
	drawHeader(doc, tr, "Purchases Report", filterSubtitle(parts), now)

	totalLabel := "Total Value"
	if report.MaterialName != "" {
		totalLabel = "Total — " + report.MaterialName
	}
	stats := []stat{
		{label: "Transactions", value: strconv.Itoa(report.Summary.TransactionCount)},
		{label: totalLabel, value: utils.FormatAmount(report.Summary.TotalValue)},
	}
	if report.Summary.TotalWeight != nil {
		stats = append(stats, stat{
			label: "Weight — " + report.MaterialName,
			value: utils.FormatWeight(*report.Summary.TotalWeight),
		})
	}
	y := drawStatRow(doc, tr, stats, statRowStartY)

	cols := []column{
		{title: "Date", width: 25},
		{title: "Supplier", width: 35},
		{title: "Items", width: 67},
		{title: "Created By", width: 30},
		{title: "Total", width: 25, alignRight: true, bold: true},
	}
	body := make([][]string, len(report.Rows))
	for i, row := range report.Rows {
		supplier := "—"
		if row.SupplierName != nil && *row.SupplierName != "" {
			supplier = *row.SupplierName
		}
		body[i] = []string{
			row.Date.Format("1/2/2006"),
			supplier,
			dash(strings.Join(row.ItemNames, ", ")),
			dash(row.CreatedBy),
			utils.FormatAmount(row.DisplayTotal),
		}
	}
	drawTable(doc, tr, cols, body, nil, y)

	return output(doc)
}

// RenderSupplierMonthlyReport renders one supplier's monthly breakdown with a
// totals footer row.
func (r *Renderer) RenderSupplierMonthlyReport(report *domain.SupplierMonthlyReport, now time.Time) ([]byte, error) {
	doc, tr := newDoc()

	subtitle := fmt.Sprintf("%s %d", report.Month.String(), report.Year)
	if report.Supplier.Phone != nil && *report.Supplier.Phone != "" {
		subtitle += "  ·  " + *report.Supplier.Phone
	}
	drawHeader(doc, tr, "Supplier Report — "+report.Supplier.Name, subtitle, now)

	stats := []stat{
		{label: "Transactions", value: strconv.Itoa(report.TransactionCount)},
		{label: "Total Weight", value: utils.FormatWeight(report.TotalWeight)},
		{label: "Total Paid", value: utils.FormatAmount(report.TotalAmount)},
	}
	y := drawStatRow(doc, tr, stats, statRowStartY)

	cols := []column{
		{title: "Item", width: 62},
		{title: "Transactions", width: 30, alignRight: true},
		{title: "Total Weight", width: 45, alignRight: true},
		{title: "Total Amount", width: 45, alignRight: true, bold: true},
	}
	body := make([][]string, len(report.Rows))
	for i, row := range report.Rows {
		body[i] = []string{
			row.MaterialName,
			strconv.Itoa(row.Count),
			utils.FormatWeight(row.TotalWeight),
			utils.FormatAmount(row.TotalAmount),
		}
	}
	foot := []string{
		"Total", "",
		utils.FormatWeight(report.TotalWeight),
		utils.FormatAmount(report.TotalAmount),
	}
	drawTable(doc, tr, cols, body, foot, y)

	return output(doc)
}

// RenderExpenseReport renders the expenses report document.
func (r *Renderer) RenderExpenseReport(report *domain.ExpenseReport, now time.Time) ([]byte, error) {
	doc, tr := newDoc()

	var parts []string
	if report.PeriodLabel != "" {
		parts = append(parts, "Period: "+report.PeriodLabel)
	}
	if report.TagName != "" {
		parts = append(parts, "Tag: "+report.TagName)
	}
	drawHeader(doc, tr, "Expenses Report", filterSubtitle(parts), now)

	stats := []stat{
		{label: "Expenses", value: strconv.Itoa(report.ExpenseCount)},
		{label: "Total Amount", value: utils.FormatAmount(report.TotalAmount)},
	}
	y := drawStatRow(doc, tr, stats, statRowStartY)

	cols := []column{
		{title: "Date", width: 25},
		{title: "Description", width: 77},
		{title: "Tags", width: 50},
		{title: "Amount", width: 30, alignRight: true, bold: true},
	}
	body := make([][]string, len(report.Rows))
	for i, row := range report.Rows {
		body[i] = []string{
			row.Date.Format("1/2/2006"),
			dash(row.Description),
			dash(strings.Join(row.TagNames, ", ")),
			utils.FormatAmount(row.Amount),
		}
	}
	drawTable(doc, tr, cols, body, nil, y)

	return output(doc)
}
