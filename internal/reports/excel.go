package reports

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	excelHeaderFill = "#1F4E78"
	excelBandFill   = "#DDEBF7"
	excelStripe     = "#F2F2F2"
	// excel caps sheet names at 31 characters
	maxSheetName = 31
)

// ExcelRenderer writes one worksheet per table, each with a merged title band, a bold
// header row and alternating row fills.
type ExcelRenderer struct{}

func (ExcelRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (ExcelRenderer) Render(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newExcelStyles(f)
	if err != nil {
		return nil, err
	}

	if len(doc.Summary) == 0 && len(doc.Tables) == 0 {
		return nil, errors.New("report has no content")
	}
	if len(doc.Summary) > 0 {
		if err := writeSummarySheet(f, doc, styles); err != nil {
			return nil, err
		}
	}
	for _, t := range doc.Tables {
		if err := writeTableSheet(f, doc, t, styles); err != nil {
			return nil, err
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("remove default sheet: %w", err)
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

type excelStyles struct {
	title, band, header, stripe, plain int
}

func newExcelStyles(f *excelize.File) (excelStyles, error) {
	var s excelStyles
	var err error
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	if s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{excelBandFill}},
		Alignment: center,
	}); err != nil {
		return s, fmt.Errorf("title style: %w", err)
	}
	if s.band, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Italic: true, Size: 10},
		Alignment: center,
	}); err != nil {
		return s, fmt.Errorf("band style: %w", err)
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{excelHeaderFill}},
		Alignment: center,
	}); err != nil {
		return s, fmt.Errorf("header style: %w", err)
	}
	if s.stripe, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{excelStripe}},
	}); err != nil {
		return s, fmt.Errorf("stripe style: %w", err)
	}
	if s.plain, err = f.NewStyle(&excelize.Style{}); err != nil {
		return s, fmt.Errorf("plain style: %w", err)
	}
	return s, nil
}

func sheetName(title string) string {
	if len(title) > maxSheetName {
		return title[:maxSheetName]
	}
	return title
}

// writeBand writes the merged letterhead rows above a sheet and returns the next free row.
func writeBand(f *excelize.File, sheet string, doc Document, width int, styles excelStyles) (int, error) {
	lastCol, err := excelize.ColumnNumberToName(width)
	if err != nil {
		return 0, err
	}
	lines := []string{
		doc.Letterhead.Organization,
		doc.Letterhead.Department,
		doc.Letterhead.Title,
		"Region: " + doc.Meta.Region + "    Period: " + doc.Meta.RangeLabel(),
		"Generated " + doc.Meta.GeneratedAt.Format("2006-01-02 15:04"),
	}
	row := 1
	for i, line := range lines {
		if line == "" {
			continue
		}
		left, right := fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row)
		if err := f.MergeCell(sheet, left, right); err != nil {
			return 0, err
		}
		if err := f.SetCellValue(sheet, left, line); err != nil {
			return 0, err
		}
		style := styles.band
		if i < 3 {
			style = styles.title
		}
		if err := f.SetCellStyle(sheet, left, right, style); err != nil {
			return 0, err
		}
		row++
	}
	return row + 1, nil
}

func writeSummarySheet(f *excelize.File, doc Document, styles excelStyles) error {
	sheet := sheetName(SectionAll.Title())
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	row, err := writeBand(f, sheet, doc, 2, styles)
	if err != nil {
		return fmt.Errorf("write letterhead: %w", err)
	}
	for i, item := range doc.Summary {
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &[]any{item.Label, item.Value}); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
		if i%2 == 1 {
			if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), styles.stripe); err != nil {
				return err
			}
		}
		row++
	}
	return f.SetColWidth(sheet, "A", "B", 32)
}

func writeTableSheet(f *excelize.File, doc Document, t Table, styles excelStyles) error {
	sheet := sheetName(t.Title)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	cols := t.Columns()
	lastCol, err := excelize.ColumnNumberToName(len(cols))
	if err != nil {
		return err
	}
	row, err := writeBand(f, sheet, doc, len(cols), styles)
	if err != nil {
		return fmt.Errorf("write letterhead: %w", err)
	}

	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), styles.header); err != nil {
		return err
	}
	row++

	for i := range t.Rows {
		r := t.Rows[i]
		values := []any{r.Category, r.Count, t.PercentLabel(i)}
		if t.Cumulative {
			values = append(values, r.Cumulative)
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
		style := styles.plain
		if i%2 == 1 {
			style = styles.stripe
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), style); err != nil {
			return err
		}
		row++
	}

	totals := []any{"Total", t.Total}
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &totals); err != nil {
		return fmt.Errorf("write total: %w", err)
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), styles.header); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", lastCol, 14)
}
