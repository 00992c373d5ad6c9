// Package records projects backend record lists into the page an admin sees:
// visibility, region, search, sort, then pagination. Projection is pure; the input slice
// is never reordered or modified.
package records

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	dErrors "soloparent/pkg/domain-errors"
	"soloparent/pkg/validation"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// PageSizes are the page sizes an admin can pick from.
var PageSizes = []int{5, 10, 25, 100}

const DefaultPageSize = 10

// Query is the admin's current view over a record list.
type Query struct {
	Search    string    `json:"search" validate:"max=200"`
	Region    string    `json:"region"`
	SortKey   string    `json:"sort,omitempty"`
	Direction Direction `json:"dir" validate:"oneof=asc desc"`
	Page      int       `json:"page" validate:"min=0"`
	PageSize  int       `json:"page_size" validate:"oneof=5 10 25 100"`
}

func DefaultQuery() Query {
	return Query{Direction: Ascending, PageSize: DefaultPageSize}
}

// WithSearch sets the search term and returns to the first page.
func (q Query) WithSearch(term string) Query {
	q.Search = term
	q.Page = 0
	return q
}

// WithRegion sets the equality filter and returns to the first page.
func (q Query) WithRegion(region string) Query {
	q.Region = region
	q.Page = 0
	return q
}

// WithPageSize changes the page size and returns to the first page.
func (q Query) WithPageSize(size int) (Query, error) {
	if !slices.Contains(PageSizes, size) {
		return q, dErrors.NewField("page_size", "page_size must be one of [5 10 25 100]")
	}
	q.PageSize = size
	q.Page = 0
	return q, nil
}

func (q Query) WithPage(page int) Query {
	if page < 0 {
		page = 0
	}
	q.Page = page
	return q
}

// ToggleSort flips the direction when key is already active, otherwise sorts by key ascending.
func (q Query) ToggleSort(key string) Query {
	if q.SortKey == key {
		if q.Direction == Ascending {
			q.Direction = Descending
		} else {
			q.Direction = Ascending
		}
		return q
	}
	q.SortKey = key
	q.Direction = Ascending
	return q
}

// ParseQuery reads search, sort, dir, page and page_size from URL query values.
// sortable lists the accepted sort keys; an unknown key is a validation error.
func ParseQuery(values url.Values, sortable []string) (Query, error) {
	q := DefaultQuery()
	q.Search = strings.TrimSpace(values.Get("search"))
	q.SortKey = strings.TrimSpace(values.Get("sort"))
	if dir := strings.ToLower(strings.TrimSpace(values.Get("dir"))); dir != "" {
		q.Direction = Direction(dir)
	}
	var err error
	if q.Page, err = intParam(values, "page", 0); err != nil {
		return Query{}, err
	}
	if q.PageSize, err = intParam(values, "page_size", DefaultPageSize); err != nil {
		return Query{}, err
	}
	if err := validation.Validate(q); err != nil {
		return Query{}, err
	}
	if q.SortKey != "" && !slices.Contains(sortable, q.SortKey) {
		return Query{}, dErrors.NewField("sort", "sort must be one of ["+strings.Join(sortable, " ")+"]")
	}
	return q, nil
}

func intParam(values url.Values, name string, def int) (int, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dErrors.NewField(name, name+" must be an integer")
	}
	return n, nil
}
