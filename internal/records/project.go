package records

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Schema describes how Project reads a record type.
type Schema[T any] struct {
	// Field returns the stringified value of a named field; ok is false when the
	// record has no value for it.
	Field func(rec T, name string) (value string, ok bool)

	SearchFields []string
	RegionField  string
	SortFields   []string

	// Visible excludes records before any other stage. Nil keeps everything.
	Visible func(rec T) bool
}

// Page is one page of projected records plus the size of the filtered set.
type Page[T any] struct {
	Items     []T `json:"items"`
	Total     int `json:"total"`
	Page      int `json:"page"`
	PageSize  int `json:"page_size"`
	PageCount int `json:"page_count"`
}

// Project filters, sorts and paginates records according to q.
// A page past the end returns no items but still reports the true total.
func Project[T any](records []T, q Query, schema Schema[T]) Page[T] {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	region := strings.TrimSpace(q.Region)

	filtered := make([]T, 0, len(records))
	for _, rec := range records {
		if schema.Visible != nil && !schema.Visible(rec) {
			continue
		}
		if region != "" && !regionMatches(schema, rec, region) {
			continue
		}
		if term != "" && !searchMatches(schema, rec, term) {
			continue
		}
		filtered = append(filtered, rec)
	}

	if q.SortKey != "" {
		desc := q.Direction == Descending
		slices.SortStableFunc(filtered, func(a, b T) int {
			c := compareValues(value(schema, a, q.SortKey), value(schema, b, q.SortKey))
			if desc {
				return -c
			}
			return c
		})
	}

	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	page := max(q.Page, 0)
	total := len(filtered)

	out := Page[T]{
		Items:     []T{},
		Total:     total,
		Page:      page,
		PageSize:  size,
		PageCount: (total + size - 1) / size,
	}
	// Compare page against the last index before multiplying so huge pages cannot overflow.
	if total > 0 && page <= (total-1)/size {
		start := page * size
		end := min(start+size, total)
		out.Items = filtered[start:end]
	}
	return out
}

// regionMatches fails closed: a record without the region field never matches.
func regionMatches[T any](schema Schema[T], rec T, region string) bool {
	if schema.RegionField == "" {
		return false
	}
	v, ok := schema.Field(rec, schema.RegionField)
	if !ok {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(v), region)
}

func searchMatches[T any](schema Schema[T], rec T, term string) bool {
	for _, name := range schema.SearchFields {
		if v, ok := schema.Field(rec, name); ok && strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

func value[T any](schema Schema[T], rec T, name string) string {
	v, ok := schema.Field(rec, name)
	if !ok {
		return ""
	}
	return v
}

// Value classes in ascending order. Missing values arrive as "" and sort first,
// then numbers, then text.
const (
	classMissing = iota
	classNumber
	classText
)

func classify(v string) (int, float64) {
	if v == "" {
		return classMissing, 0
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return classNumber, f
	}
	return classText, 0
}

// compareValues orders numbers numerically and text case-insensitively. Numbers always
// precede text, which keeps the order consistent on mixed columns.
func compareValues(a, b string) int {
	ca, fa := classify(a)
	cb, fb := classify(b)
	if ca != cb {
		return cmp.Compare(ca, cb)
	}
	if ca == classNumber {
		return cmp.Compare(fa, fb)
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
