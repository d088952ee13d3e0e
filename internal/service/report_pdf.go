package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/sivacabs/backend/internal/domain"
)

// PDF layout constants, in millimetres on an A4 portrait page.
// The layout is a fixed-width column grid laid out top to bottom with a
// manually tracked cursor; rows that would cross the bottom margin trigger
// a page break and a repeated table header.
const (
	pdfMarginX      = 20.0
	pdfTopY         = 20.0
	pdfBottomGuard  = 20.0 // minimum space a table row needs above the footer
	pdfSectionGuard = 40.0 // minimum space a new table section needs
	pdfRowH         = 7.0
	pdfTruncateLen  = 20 // customer/place truncation, characters
)

// tripColWidths are the five trip table columns: date, customer, place,
// amount, status.
var tripColWidths = []float64{30, 50, 50, 30, 30}

var tripColHeaders = []string{"Date", "Customer", "Place", "Amount", "Status"}

// PDF renders the report as a paginated A4 document and returns the raw
// bytes: title, period line, summary block, trips table, diesel table, and a
// "Page X of Y" footer on every page. The page count is resolved with
// gofpdf's {nb} alias after all pages are laid out.
func (s *ReportService) PDF(rep domain.Report, req domain.ReportRequest) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Siva Cabs - Trip Report", false)
	pdf.AliasNbPages("")

	pageW, pageH := pdf.GetPageSize()
	generated := time.Now().Format("02/01/2006")

	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "", 8)
		footer := fmt.Sprintf("Page %d of {nb} - Generated on %s", pdf.PageNo(), generated)
		pdf.Text(pageW/2-pdf.GetStringWidth(footer)/2, pageH-10, footer)
	})

	pdf.AddPage()
	y := pdfTopY

	// Title and period, centred.
	pdf.SetFont("Helvetica", "B", 18)
	centreText(pdf, pageW, y, "Siva Cabs - Trip Report")
	y += 10

	pdf.SetFont("Helvetica", "", 12)
	centreText(pdf, pageW, y, periodText(rep, req))
	y += 15

	// Summary block: label column at the left margin, bold value column.
	summary := []struct {
		label string
		value decimal.Decimal
	}{
		{"Total Amount", rep.TotalAmount},
		{"Total Paid", rep.TotalPaid},
		{"Total Pending", rep.TotalPending},
		{"Diesel Expenses", rep.TotalDiesel},
		{"Net Amount", rep.NetAmount},
	}
	for _, row := range summary {
		if y > pageH-30 {
			pdf.AddPage()
			y = pdfTopY
		}
		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(pdfMarginX, y, row.label+":")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Text(80, y, rupees(row.value))
		y += 8
	}
	y += 10

	if len(rep.Trips) > 0 {
		y = s.pdfTrips(pdf, rep, pageW, pageH, y)
	}

	if len(rep.DieselExpenses) > 0 {
		y += 10
		s.pdfDiesel(pdf, rep, pageW, pageH, y)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("service.ReportService.PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfTrips lays out the trips table and returns the cursor position below it.
func (s *ReportService) pdfTrips(pdf *gofpdf.Fpdf, rep domain.Report, pageW, pageH, y float64) float64 {
	if y > pageH-pdfSectionGuard {
		pdf.AddPage()
		y = pdfTopY
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(pdfMarginX, y, fmt.Sprintf("Trips (%d)", len(rep.Trips)))
	y += 8

	y = tripTableHeader(pdf, pageW, y)

	pdf.SetFont("Helvetica", "", 9)
	for _, t := range rep.Trips {
		if y > pageH-pdfBottomGuard {
			pdf.AddPage()
			y = tripTableHeader(pdf, pageW, pdfTopY)
			pdf.SetFont("Helvetica", "", 9)
		}

		cells := []string{
			t.Date.Format("02/01/2006"),
			truncate(t.CustomerName, pdfTruncateLen),
			truncate(t.Place, pdfTruncateLen),
			rupees(t.Amount),
			string(t.Status),
		}
		x := pdfMarginX
		for i, cell := range cells {
			pdf.Text(x, y, cell)
			x += tripColWidths[i]
		}
		y += pdfRowH
	}
	return y
}

// pdfDiesel lays out the diesel expense table (date and amount columns only).
func (s *ReportService) pdfDiesel(pdf *gofpdf.Fpdf, rep domain.Report, pageW, pageH, y float64) {
	if y > pageH-pdfSectionGuard {
		pdf.AddPage()
		y = pdfTopY
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(pdfMarginX, y, fmt.Sprintf("Diesel Expenses (%d)", len(rep.DieselExpenses)))
	y += 8

	pdf.SetFont("Helvetica", "B", 9)
	pdf.Text(pdfMarginX, y, "Date")
	pdf.Text(100, y, "Amount")
	y += 6
	pdf.SetLineWidth(0.5)
	pdf.Line(pdfMarginX, y, pageW-pdfMarginX, y)
	y += 5

	pdf.SetFont("Helvetica", "", 9)
	for _, e := range rep.DieselExpenses {
		if y > pageH-pdfBottomGuard {
			pdf.AddPage()
			y = pdfTopY
		}
		pdf.Text(pdfMarginX, y, e.Date.Format("02/01/2006"))
		pdf.Text(100, y, rupees(e.Amount))
		y += pdfRowH
	}
}

// tripTableHeader draws the bold column headers with an underline and
// returns the cursor position of the first data row. It is called again on
// every page overflow so each page carries its own headers.
func tripTableHeader(pdf *gofpdf.Fpdf, pageW, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 9)
	x := pdfMarginX
	for i, h := range tripColHeaders {
		pdf.Text(x, y, h)
		x += tripColWidths[i]
	}
	y += 6
	pdf.SetLineWidth(0.5)
	pdf.Line(pdfMarginX, y, pageW-pdfMarginX, y)
	return y + 5
}

// periodText describes the reporting interval under the title, phrased per
// report type ("Month: February 2024" rather than a raw date pair).
func periodText(rep domain.Report, req domain.ReportRequest) string {
	switch req.Type {
	case domain.ReportDaily:
		return "Date: " + rep.StartDate.Format("02/01/2006")
	case domain.ReportMonthly:
		return "Month: " + rep.StartDate.Format("January 2006")
	case domain.ReportYearly:
		return "Year: " + rep.StartDate.Format("2006")
	default:
		return fmt.Sprintf("Period: %s to %s",
			rep.StartDate.Format("02/01/2006"), rep.EndDate.Format("02/01/2006"))
	}
}

// centreText draws s horizontally centred at height y.
func centreText(pdf *gofpdf.Fpdf, pageW, y float64, s string) {
	pdf.Text(pageW/2-pdf.GetStringWidth(s)/2, y, s)
}

// rupees formats an amount for the PDF. The core PDF fonts are cp1252-only,
// so the rupee sign is written as "Rs" rather than the unicode symbol.
func rupees(d decimal.Decimal) string {
	return "Rs " + d.StringFixed(2)
}

// truncate cuts s to at most n characters to keep long names inside their
// fixed-width column.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
