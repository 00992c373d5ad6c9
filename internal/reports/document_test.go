package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"soloparent/internal/dashboard"
	"soloparent/internal/exportquota"
	dErrors "soloparent/pkg/domain-errors"
)

var (
	testRange = dashboard.DateRange{
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}
	testHead = Letterhead{Organization: "Municipality of San Isidro", Department: "Social Welfare Office", Title: "Solo Parent Report"}
	testMeta = Meta{Region: "San Isidro", Range: testRange, GeneratedAt: time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC), GeneratedBy: "42"}
)

func testAggregate() dashboard.Aggregate {
	return dashboard.Aggregate{
		Region:     "San Isidro",
		Range:      testRange,
		Totals:     dashboard.Totals{Registered: 6, Verified: 5, PendingRemarks: 1, Remarks: 1},
		Population: []dashboard.Bucket{{Label: "2025-01", Count: 3}, {Label: "2025-02", Count: 0}, {Label: "2025-03", Count: 3}},
		Remarks:    []dashboard.Bucket{{Label: "2025-01", Count: 0}, {Label: "2025-02", Count: 1}, {Label: "2025-03", Count: 0}},
		Gender:     []dashboard.Bucket{{Label: "Male", Count: 2}, {Label: "Female", Count: 4}},
		Employment: []dashboard.Bucket{{Label: "Employed", Count: 6}},
		Children:   []dashboard.Bucket{{Label: "1", Count: 1}, {Label: "2", Count: 1}, {Label: "3", Count: 1}, {Label: "4", Count: 0}, {Label: "5+", Count: 0}},
		AgeGroups:  []dashboard.Bucket{{Label: "Below 20", Count: 0}, {Label: "20-29", Count: 6}},
	}
}

func TestBuild(t *testing.T) {
	t.Run("all emits every section and a summary", func(t *testing.T) {
		doc, err := Build(SectionAll, testAggregate(), testHead, testMeta)
		require.NoError(t, err)
		require.Len(t, doc.Tables, len(sectionOrder))
		assert.NotEmpty(t, doc.Summary)
		assert.Equal(t, "Total registered", doc.Summary[0].Label)
		assert.Equal(t, "6", doc.Summary[0].Value)
	})

	t.Run("time series carry a cumulative column", func(t *testing.T) {
		doc, err := Build(SectionPopulation, testAggregate(), testHead, testMeta)
		require.NoError(t, err)
		require.Len(t, doc.Tables, 1)
		tbl := doc.Tables[0]
		assert.Equal(t, []string{"Category", "Count", "Percentage", "Cumulative"}, tbl.Columns())
		assert.Equal(t, []string{"2025-03", "3", "50.0%", "6"}, tbl.Cells(2))
		assert.Empty(t, doc.Summary)
	})

	t.Run("distributions have no cumulative column", func(t *testing.T) {
		doc, err := Build(SectionGender, testAggregate(), testHead, testMeta)
		require.NoError(t, err)
		tbl := doc.Tables[0]
		assert.Equal(t, []string{"Category", "Count", "Percentage"}, tbl.Columns())
		assert.Equal(t, []string{"Female", "4", "66.7%"}, tbl.Cells(1))
		assert.Equal(t, 6, tbl.Total)
	})

	t.Run("empty section shows zero percent", func(t *testing.T) {
		agg := testAggregate()
		agg.Remarks = []dashboard.Bucket{{Label: "2025-01"}}
		doc, err := Build(SectionRemarks, agg, testHead, testMeta)
		require.NoError(t, err)
		tbl := doc.Tables[0]
		assert.Zero(t, tbl.Total)
		assert.Equal(t, "0%", tbl.Cells(0)[2])
	})

	t.Run("unknown section", func(t *testing.T) {
		_, err := Build(Section("income"), testAggregate(), testHead, testMeta)
		assert.Equal(t, "section", dErrors.FieldOf(err))
		_, err = ParseSection("income")
		assert.Equal(t, "section", dErrors.FieldOf(err))
	})
}

func TestValidateDates(t *testing.T) {
	now := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)

	_, err := ValidateDates("", "", now)
	assert.Equal(t, "start_date", dErrors.FieldOf(err), "reports need an explicit range")

	_, err = ValidateDates("2025-01-01", "", now)
	assert.Equal(t, "end_date", dErrors.FieldOf(err))

	r, err := ValidateDates("2025-01-01", "2025-03-31", now)
	require.NoError(t, err)
	assert.Equal(t, testRange, r)
}

func TestFilename(t *testing.T) {
	name := Filename(SectionGender, exportquota.FormatExcel, "Sto. Niño", testRange, testMeta.GeneratedAt)
	assert.Equal(t, "SoloParent_Gender_Report_Sto_Niño_2025-01-01_to_2025-03-31_2025-04-02.xlsx", name)

	name = Filename(SectionAll, exportquota.FormatPDF, "", testRange, testMeta.GeneratedAt)
	assert.Equal(t, "SoloParent_All_Report_All_2025-01-01_to_2025-03-31_2025-04-02.pdf", name)
}

func TestExcelRenderer(t *testing.T) {
	doc, err := Build(SectionAll, testAggregate(), testHead, testMeta)
	require.NoError(t, err)

	body, err := ExcelRenderer{}.Render(doc)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Equal(t, []string{"Summary", "Population by Month", "Remarks by Month", "Gender Distribution",
		"Employment Status", "Number of Children", "Age Groups"}, sheets)

	title, err := f.GetCellValue("Gender Distribution", "A1")
	require.NoError(t, err)
	assert.Equal(t, testHead.Organization, title)

	merged, err := f.GetMergeCells("Gender Distribution")
	require.NoError(t, err)
	assert.NotEmpty(t, merged)
}

func TestExcelRendererZeroTotalReadsZeroPercent(t *testing.T) {
	agg := testAggregate()
	agg.Remarks = []dashboard.Bucket{{Label: "2025-01"}, {Label: "2025-02"}}
	doc, err := Build(SectionRemarks, agg, testHead, testMeta)
	require.NoError(t, err)

	body, err := ExcelRenderer{}.Render(doc)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Remarks by Month")
	require.NoError(t, err)
	var percents []string
	for _, row := range rows {
		if len(row) >= 3 && (row[0] == "2025-01" || row[0] == "2025-02") {
			percents = append(percents, row[2])
		}
	}
	assert.Equal(t, []string{"0%", "0%"}, percents)
}

func TestExcelRendererRejectsEmptyDocument(t *testing.T) {
	_, err := ExcelRenderer{}.Render(Document{})
	assert.Error(t, err)
}

func TestPDFRenderer(t *testing.T) {
	doc, err := Build(SectionAll, testAggregate(), testHead, testMeta)
	require.NoError(t, err)

	body, err := PDFRenderer{}.Render(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
	assert.Equal(t, "application/pdf", PDFRenderer{}.ContentType())
}
