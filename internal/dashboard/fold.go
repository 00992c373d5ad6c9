package dashboard

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"time"

	"soloparent/internal/soloparents/models"
	"soloparent/pkg/domain"
	s "soloparent/pkg/string"
)

// MonthLayout labels the time-series buckets.
const MonthLayout = "2006-01"

var (
	childrenLabels = []string{"1", "2", "3", "4", "5+"}
	ageLabels      = []string{"Below 20", "20-29", "30-39", "40-49", "50-59", "60+"}
	genderOrder    = []string{"Male", "Female"}
)

// Fold builds the dashboard aggregate for region from the solo parent records. Records of
// other regions are ignored. Distributions count the records registered within r; the
// remarks series counts records whose remarks were filed within r.
func Fold(records []models.SoloParent, r DateRange, region domain.Region) Aggregate {
	agg := Aggregate{Region: region.String(), Range: r}

	population := map[string]int{}
	remarks := map[string]int{}
	gender := map[string]int{}
	employment := map[string]int{}
	children := map[string]int{}
	ages := map[string]int{}
	var first, last time.Time

	for i := range records {
		p := &records[i]
		if !region.Matches(p.Barangay) {
			continue
		}
		if r.Contains(p.RemarksAt) {
			remarks[p.RemarksAt.Format(MonthLayout)]++
			agg.Totals.Remarks++
			first, last = widen(first, last, p.RemarksAt)
		}
		if !r.Contains(p.CreatedAt) {
			continue
		}
		first, last = widen(first, last, p.CreatedAt)
		population[p.CreatedAt.Format(MonthLayout)]++
		agg.Totals.Registered++
		switch p.Status {
		case models.StatusVerified:
			agg.Totals.Verified++
		case models.StatusPendingRemarks:
			agg.Totals.PendingRemarks++
		case models.StatusTerminated:
			agg.Totals.Terminated++
		case models.StatusUnverified:
			agg.Totals.Unverified++
		}
		gender[label(p.Gender)]++
		employment[label(p.EmploymentStatus)]++
		if l, ok := childrenLabel(p.ChildrenCount); ok {
			children[l]++
		}
		if l, ok := ageLabel(p.Age); ok {
			ages[l]++
		}
	}

	if !r.IsZero() {
		first, last = r.Start, r.End
	}
	months := monthsBetween(first, last)
	agg.Population = series(months, population)
	agg.Remarks = series(months, remarks)
	agg.Gender = ranked(gender, genderOrder)
	agg.Employment = ranked(employment, nil)
	agg.Children = fixed(childrenLabels, children)
	agg.AgeGroups = fixed(ageLabels, ages)
	return agg
}

func label(raw string) string {
	if l := s.Title(raw); l != "" {
		return l
	}
	return "Unspecified"
}

func childrenLabel(n int) (string, bool) {
	switch {
	case n <= 0:
		return "", false
	case n >= 5:
		return "5+", true
	default:
		return strconv.Itoa(n), true
	}
}

func ageLabel(age int) (string, bool) {
	switch {
	case age <= 0:
		return "", false
	case age < 20:
		return "Below 20", true
	case age >= 60:
		return "60+", true
	default:
		lo := age / 10 * 10
		return strconv.Itoa(lo) + "-" + strconv.Itoa(lo+9), true
	}
}

func widen(first, last, t time.Time) (time.Time, time.Time) {
	if first.IsZero() || t.Before(first) {
		first = t
	}
	if last.IsZero() || t.After(last) {
		last = t
	}
	return first, last
}

func monthsBetween(first, last time.Time) []string {
	if first.IsZero() || last.IsZero() {
		return nil
	}
	var out []string
	m := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !m.After(end) {
		out = append(out, m.Format(MonthLayout))
		m = m.AddDate(0, 1, 0)
	}
	return out
}

func series(months []string, counts map[string]int) []Bucket {
	out := make([]Bucket, 0, len(months))
	for _, m := range months {
		out = append(out, Bucket{Label: m, Count: counts[m]})
	}
	return out
}

func fixed(labels []string, counts map[string]int) []Bucket {
	out := make([]Bucket, 0, len(labels))
	for _, l := range labels {
		out = append(out, Bucket{Label: l, Count: counts[l]})
	}
	return out
}

// ranked lists the pinned labels first, then the rest by count descending and label.
func ranked(counts map[string]int, pinned []string) []Bucket {
	out := make([]Bucket, 0, len(counts))
	for _, l := range pinned {
		if n, ok := counts[l]; ok {
			out = append(out, Bucket{Label: l, Count: n})
		}
	}
	rest := make([]Bucket, 0, len(counts))
	for l, n := range counts {
		if !slices.Contains(pinned, l) {
			rest = append(rest, Bucket{Label: l, Count: n})
		}
	}
	slices.SortFunc(rest, func(a, b Bucket) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Label, b.Label)
	})
	return append(out, rest...)
}
