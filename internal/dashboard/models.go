package dashboard

import (
	"strings"
	"time"

	dErrors "soloparent/pkg/domain-errors"
)

// DateLayout is the YYYY-MM-DD form used for date filters.
const DateLayout = time.DateOnly

// DateRange is an inclusive range of calendar days. The zero value is unbounded.
type DateRange struct {
	Start time.Time `json:"start,omitzero"`
	End   time.Time `json:"end,omitzero"`
}

func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Contains reports whether t falls on a day within the range.
func (r DateRange) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	if r.IsZero() {
		return true
	}
	return !t.Before(r.Start) && t.Before(r.End.AddDate(0, 0, 1))
}

func (r DateRange) StartLabel() string { return r.Start.Format(DateLayout) }
func (r DateRange) EndLabel() string   { return r.End.Format(DateLayout) }

// ParseRange reads a start/end pair. Both blank means unbounded; otherwise both must be
// valid dates, end may not precede start, and neither may lie in a year after now's.
func ParseRange(start, end string, now time.Time) (DateRange, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" && end == "" {
		return DateRange{}, nil
	}
	if start == "" {
		return DateRange{}, dErrors.NewField("start_date", "start date is required")
	}
	if end == "" {
		return DateRange{}, dErrors.NewField("end_date", "end date is required")
	}
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, dErrors.NewField("start_date", "start date must be YYYY-MM-DD")
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, dErrors.NewField("end_date", "end date must be YYYY-MM-DD")
	}
	if s.Year() > now.Year() {
		return DateRange{}, dErrors.NewField("start_date", "start date cannot be in a future year")
	}
	if e.Year() > now.Year() {
		return DateRange{}, dErrors.NewField("end_date", "end date cannot be in a future year")
	}
	if e.Before(s) {
		return DateRange{}, dErrors.NewField("end_date", "end date must not be before start date")
	}
	return DateRange{Start: s, End: e}, nil
}

// Bucket is one labelled count of a distribution.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Totals counts records in range by status.
type Totals struct {
	Registered     int `json:"registered"`
	Verified       int `json:"verified"`
	PendingRemarks int `json:"pending_remarks"`
	Terminated     int `json:"terminated"`
	Unverified     int `json:"unverified"`
	Remarks        int `json:"remarks"`
}

// Aggregate is the folded dashboard for one region and range. It is rebuilt, never
// mutated, when the range changes.
type Aggregate struct {
	Region      string    `json:"region"`
	Range       DateRange `json:"range"`
	Totals      Totals    `json:"totals"`
	Population  []Bucket  `json:"population_by_month"`
	Remarks     []Bucket  `json:"remarks_by_month"`
	Gender      []Bucket  `json:"gender"`
	Employment  []Bucket  `json:"employment"`
	Children    []Bucket  `json:"children_count"`
	AgeGroups   []Bucket  `json:"age_groups"`
	GeneratedAt time.Time `json:"generated_at,omitzero"`
}
