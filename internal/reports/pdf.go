package reports

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFont       = "Helvetica"
	pdfMargin     = 15.0
	pdfLineHeight = 7.0
)

// PDFRenderer writes a portrait A4 document: letterhead, metadata, optional summary, then
// one titled table per section with alternating row fills.
type PDFRenderer struct{}

func (PDFRenderer) ContentType() string {
	return "application/pdf"
}

func (PDFRenderer) Render(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(doc.Letterhead.Title, true)
	pdf.SetAuthor(doc.Letterhead.Organization, true)
	pdf.SetCreationDate(doc.Meta.GeneratedAt)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	width, _ := pdf.GetPageSize()
	usable := width - 2*pdfMargin

	pdf.SetFont(pdfFont, "B", 14)
	for _, line := range []string{doc.Letterhead.Organization, doc.Letterhead.Department} {
		if line != "" {
			pdf.CellFormat(usable, pdfLineHeight, tr(line), "", 1, "C", false, 0, "")
		}
	}
	pdf.SetFont(pdfFont, "B", 16)
	pdf.CellFormat(usable, pdfLineHeight+2, tr(doc.Letterhead.Title), "", 1, "C", false, 0, "")

	pdf.SetFont(pdfFont, "", 10)
	pdf.CellFormat(usable, pdfLineHeight-1, tr("Region: "+doc.Meta.Region), "", 1, "C", false, 0, "")
	pdf.CellFormat(usable, pdfLineHeight-1, "Period: "+doc.Meta.RangeLabel(), "", 1, "C", false, 0, "")
	generated := "Generated " + doc.Meta.GeneratedAt.Format("2006-01-02 15:04")
	if doc.Meta.GeneratedBy != "" {
		generated += " by admin " + doc.Meta.GeneratedBy
	}
	pdf.CellFormat(usable, pdfLineHeight-1, tr(generated), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(doc.Summary) > 0 {
		pdfHeading(pdf, usable, SectionAll.Title())
		pdf.SetFont(pdfFont, "", 10)
		for i, item := range doc.Summary {
			pdfFill(pdf, i)
			pdf.CellFormat(usable*0.6, pdfLineHeight, tr(item.Label), "1", 0, "L", true, 0, "")
			pdf.CellFormat(usable*0.4, pdfLineHeight, tr(item.Value), "1", 1, "R", true, 0, "")
		}
		pdf.Ln(4)
	}

	for _, t := range doc.Tables {
		pdfTable(pdf, usable, t, tr)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("build pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfHeading(pdf *fpdf.Fpdf, width float64, title string) {
	pdf.SetFont(pdfFont, "B", 12)
	pdf.SetTextColor(31, 78, 120)
	pdf.CellFormat(width, pdfLineHeight+1, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func pdfFill(pdf *fpdf.Fpdf, row int) {
	if row%2 == 1 {
		pdf.SetFillColor(242, 242, 242)
		return
	}
	pdf.SetFillColor(255, 255, 255)
}

func pdfTable(pdf *fpdf.Fpdf, width float64, t Table, tr func(string) string) {
	pdfHeading(pdf, width, t.Title)

	cols := t.Columns()
	widths := make([]float64, len(cols))
	widths[0] = width * 0.4
	for i := 1; i < len(cols); i++ {
		widths[i] = width * 0.6 / float64(len(cols)-1)
	}

	pdf.SetFont(pdfFont, "B", 10)
	pdf.SetFillColor(31, 78, 120)
	pdf.SetTextColor(255, 255, 255)
	for i, c := range cols {
		pdf.CellFormat(widths[i], pdfLineHeight, c, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont(pdfFont, "", 10)
	for i := range t.Rows {
		pdfFill(pdf, i)
		for j, cell := range t.Cells(i) {
			align := "R"
			if j == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[j], pdfLineHeight, tr(cell), "1", 0, align, true, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont(pdfFont, "B", 10)
	pdf.SetFillColor(221, 235, 247)
	pdf.CellFormat(widths[0], pdfLineHeight, "Total", "1", 0, "L", true, 0, "")
	pdf.CellFormat(widths[1], pdfLineHeight, fmt.Sprint(t.Total), "1", 0, "R", true, 0, "")
	for j := 2; j < len(cols); j++ {
		pdf.CellFormat(widths[j], pdfLineHeight, "", "1", 0, "R", true, 0, "")
	}
	pdf.Ln(pdfLineHeight + 3)
}
