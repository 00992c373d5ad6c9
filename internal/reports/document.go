package reports

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"soloparent/internal/dashboard"
	dErrors "soloparent/pkg/domain-errors"
)

// Section selects which part of the dashboard a report covers.
type Section string

const (
	SectionAll        Section = "all"
	SectionPopulation Section = "population"
	SectionRemarks    Section = "remarks"
	SectionGender     Section = "gender"
	SectionEmployment Section = "employment"
	SectionChildren   Section = "children"
	SectionAge        Section = "age"
)

// sectionOrder is the layout of an "all" report.
var sectionOrder = []Section{
	SectionPopulation, SectionRemarks, SectionGender, SectionEmployment, SectionChildren, SectionAge,
}

var sectionTitles = map[Section]string{
	SectionAll:        "Summary",
	SectionPopulation: "Population by Month",
	SectionRemarks:    "Remarks by Month",
	SectionGender:     "Gender Distribution",
	SectionEmployment: "Employment Status",
	SectionChildren:   "Number of Children",
	SectionAge:        "Age Groups",
}

func ParseSection(raw string) (Section, error) {
	s := Section(strings.ToLower(strings.TrimSpace(raw)))
	if s == SectionAll {
		return s, nil
	}
	for _, known := range sectionOrder {
		if s == known {
			return s, nil
		}
	}
	return "", dErrors.NewField("section", "section must be one of [all population remarks gender employment children age]")
}

func (s Section) Title() string {
	return sectionTitles[s]
}

// Label is the capitalised section name used in file names.
func (s Section) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// timeSeries sections carry a running total column.
func (s Section) timeSeries() bool {
	return s == SectionPopulation || s == SectionRemarks
}

// Letterhead is printed at the top of every report.
type Letterhead struct {
	Organization string
	Department   string
	Title        string
}

type Meta struct {
	Region      string
	Range       dashboard.DateRange
	GeneratedAt time.Time
	GeneratedBy string
}

func (m Meta) RangeLabel() string {
	return m.Range.StartLabel() + " to " + m.Range.EndLabel()
}

type Row struct {
	Category   string
	Count      int
	Percentage decimal.Decimal
	Cumulative int
}

type Table struct {
	Section    Section
	Title      string
	Rows       []Row
	Total      int
	Cumulative bool
}

func (t Table) Columns() []string {
	cols := []string{"Category", "Count", "Percentage"}
	if t.Cumulative {
		cols = append(cols, "Cumulative")
	}
	return cols
}

// PercentLabel renders row i's share. An empty table reads 0% on every row.
func (t Table) PercentLabel(i int) string {
	if t.Total == 0 {
		return "0%"
	}
	return t.Rows[i].Percentage.StringFixed(1) + "%"
}

// Cells renders row i as text, in column order.
func (t Table) Cells(i int) []string {
	r := t.Rows[i]
	cells := []string{r.Category, strconv.Itoa(r.Count), t.PercentLabel(i)}
	if t.Cumulative {
		cells = append(cells, strconv.Itoa(r.Cumulative))
	}
	return cells
}

type SummaryItem struct {
	Label string
	Value string
}

// Document is the renderer-independent content of a report.
type Document struct {
	Section    Section
	Letterhead Letterhead
	Meta       Meta
	Summary    []SummaryItem
	Tables     []Table
}

// Build lays out the report for section. "all" emits every section plus an executive
// summary; any other section emits exactly its own table.
func Build(section Section, agg dashboard.Aggregate, head Letterhead, meta Meta) (Document, error) {
	doc := Document{Section: section, Letterhead: head, Meta: meta}
	switch section {
	case SectionAll:
		doc.Summary = summarize(agg)
		for _, s := range sectionOrder {
			doc.Tables = append(doc.Tables, table(s, agg))
		}
	case SectionPopulation, SectionRemarks, SectionGender, SectionEmployment, SectionChildren, SectionAge:
		doc.Tables = []Table{table(section, agg)}
	default:
		return Document{}, dErrors.NewField("section", "unknown report section "+string(section))
	}
	return doc, nil
}

func buckets(s Section, agg dashboard.Aggregate) []dashboard.Bucket {
	switch s {
	case SectionPopulation:
		return agg.Population
	case SectionRemarks:
		return agg.Remarks
	case SectionGender:
		return agg.Gender
	case SectionEmployment:
		return agg.Employment
	case SectionChildren:
		return agg.Children
	case SectionAge:
		return agg.AgeGroups
	}
	return nil
}

func table(s Section, agg dashboard.Aggregate) Table {
	bs := buckets(s, agg)
	counts := make([]int, len(bs))
	for i, b := range bs {
		counts[i] = b.Count
	}
	pcts := Percentages(counts)

	t := Table{Section: s, Title: s.Title(), Rows: make([]Row, 0, len(bs)), Cumulative: s.timeSeries()}
	for i, b := range bs {
		t.Total += b.Count
		t.Rows = append(t.Rows, Row{
			Category:   b.Label,
			Count:      b.Count,
			Percentage: pcts[i],
			Cumulative: t.Total,
		})
	}
	return t
}

func summarize(agg dashboard.Aggregate) []SummaryItem {
	items := []SummaryItem{
		{Label: "Total registered", Value: strconv.Itoa(agg.Totals.Registered)},
		{Label: "Verified", Value: strconv.Itoa(agg.Totals.Verified)},
		{Label: "Pending remarks", Value: strconv.Itoa(agg.Totals.PendingRemarks)},
		{Label: "Terminated", Value: strconv.Itoa(agg.Totals.Terminated)},
		{Label: "Remarks filed", Value: strconv.Itoa(agg.Totals.Remarks)},
	}
	for _, s := range []Section{SectionGender, SectionEmployment, SectionAge} {
		if top, ok := largest(buckets(s, agg)); ok {
			items = append(items, SummaryItem{Label: "Largest group (" + s.Title() + ")", Value: top.Label + " (" + strconv.Itoa(top.Count) + ")"})
		}
	}
	return items
}

func largest(bs []dashboard.Bucket) (dashboard.Bucket, bool) {
	var top dashboard.Bucket
	for _, b := range bs {
		if b.Count > top.Count {
			top = b
		}
	}
	return top, top.Count > 0
}
