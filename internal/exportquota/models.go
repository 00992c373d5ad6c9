package exportquota

import (
	"strings"
	"time"

	"soloparent/pkg/domain"
	dErrors "soloparent/pkg/domain-errors"
)

// DailyCap is the number of exports allowed per admin, per format, per day.
const DailyCap = 5

type Format string

const (
	FormatExcel Format = "excel"
	FormatPDF   Format = "pdf"
)

func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "excel", "xlsx":
		return FormatExcel, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", dErrors.NewField("format", "format must be one of [excel pdf]")
}

func (f Format) Extension() string {
	if f == FormatPDF {
		return "pdf"
	}
	return "xlsx"
}

// Quota mirrors the backend's counters for one admin.
type Quota struct {
	AdminID        domain.AdminID `json:"admin_id"`
	ExcelCount     int            `json:"excel_count"`
	PDFCount       int            `json:"pdf_count"`
	CanExportExcel bool           `json:"can_export_excel"`
	CanExportPDF   bool           `json:"can_export_pdf"`
	FetchedAt      time.Time      `json:"fetched_at"`
}

func (q *Quota) Count(f Format) int {
	if f == FormatPDF {
		return q.PDFCount
	}
	return q.ExcelCount
}

func (q *Quota) Remaining(f Format) int {
	return max(DailyCap-q.Count(f), 0)
}

// Allows reports whether another export of f fits. The backend's flag and the local cap
// must both agree.
func (q *Quota) Allows(f Format) bool {
	can := q.CanExportExcel
	if f == FormatPDF {
		can = q.CanExportPDF
	}
	return can && q.Count(f) < DailyCap
}

// StaleAt reports whether the mirror was fetched on an earlier calendar day than now.
func (q *Quota) StaleAt(now time.Time) bool {
	fy, fm, fd := q.FetchedAt.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return fy != ny || fm != nm || fd != nd
}

// Snapshot is the quota view served to the console.
type Snapshot struct {
	Quota
	Cap            int `json:"cap"`
	ExcelRemaining int `json:"excel_remaining"`
	PDFRemaining   int `json:"pdf_remaining"`
}

func (q *Quota) Snapshot() Snapshot {
	return Snapshot{
		Quota:          *q,
		Cap:            DailyCap,
		ExcelRemaining: q.Remaining(FormatExcel),
		PDFRemaining:   q.Remaining(FormatPDF),
	}
}
