package records

import (
	"fmt"
	"math/rand"
	"net/url"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "soloparent/pkg/domain-errors"
)

type row struct {
	ID        int
	Name      string
	Region    string
	Age       string
	Approval  string
	Status    string
	hasRegion bool
}

var rowSchema = Schema[row]{
	Field: func(r row, name string) (string, bool) {
		switch name {
		case "id":
			return strconv.Itoa(r.ID), true
		case "name":
			return r.Name, r.Name != ""
		case "region":
			return r.Region, r.hasRegion
		case "age":
			return r.Age, r.Age != ""
		}
		return "", false
	},
	SearchFields: []string{"id", "name", "region", "age"},
	RegionField:  "region",
	SortFields:   []string{"id", "name", "age"},
}

func pendingOnly(r row) bool {
	return r.Approval != "Approved" && r.Status != "Declined"
}

func TestProject_VisibilityExcludesApprovedAndDeclined(t *testing.T) {
	schema := rowSchema
	schema.Visible = pendingOnly
	in := []row{
		{ID: 1, Name: "Approved One", Approval: "Approved", Status: "Pending"},
		{ID: 2, Name: "Pending Two", Approval: "Pending", Status: "Pending"},
		{ID: 3, Name: "Declined Three", Status: "Declined"},
	}

	page := Project(in, DefaultQuery(), schema)

	require.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.Items[0].ID)
	assert.Equal(t, 1, page.Total)
}

func TestProject_RegionFilterFailsClosed(t *testing.T) {
	in := []row{
		{ID: 1, Region: "san isidro", hasRegion: true},
		{ID: 2, Region: "Poblacion", hasRegion: true},
		{ID: 3},
	}

	page := Project(in, DefaultQuery().WithRegion("San Isidro"), rowSchema)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Items[0].ID)

	page = Project(in, DefaultQuery(), rowSchema)
	assert.Equal(t, 3, page.Total, "empty region disables the stage")
}

func TestProject_SearchMatchesAnyField(t *testing.T) {
	in := []row{
		{ID: 10, Name: "Maria Santos", Age: "31"},
		{ID: 11, Name: "Jose Rizal", Age: "45"},
		{ID: 12, Name: "Ana", Region: "Santa Cruz", hasRegion: true},
	}

	page := Project(in, DefaultQuery().WithSearch("SANT"), rowSchema)
	ids := idsOf(page.Items)
	assert.ElementsMatch(t, []int{10, 12}, ids)

	page = Project(in, DefaultQuery().WithSearch("45"), rowSchema)
	assert.Equal(t, []int{11}, idsOf(page.Items))

	page = Project(in, DefaultQuery().WithSearch(""), rowSchema)
	assert.Equal(t, 3, page.Total)
}

func TestProject_SortIsStableAndMissingFirst(t *testing.T) {
	in := []row{
		{ID: 1, Name: "beta"},
		{ID: 2, Name: "Alpha"},
		{ID: 3},
		{ID: 4, Name: "alpha"},
	}

	q := DefaultQuery().ToggleSort("name")
	assert.Equal(t, []int{3, 2, 4, 1}, idsOf(Project(in, q, rowSchema).Items))

	q = q.ToggleSort("name")
	assert.Equal(t, Descending, q.Direction)
	assert.Equal(t, []int{1, 2, 4, 3}, idsOf(Project(in, q, rowSchema).Items))
}

func TestProject_NumericSort(t *testing.T) {
	in := []row{{ID: 1, Age: "9"}, {ID: 2, Age: "10"}, {ID: 3, Age: "100"}}
	q := DefaultQuery().ToggleSort("age")
	assert.Equal(t, []int{1, 2, 3}, idsOf(Project(in, q, rowSchema).Items))
}

func TestProject_MixedColumnSortsNumbersBeforeText(t *testing.T) {
	ages := []string{"10", "9", "1a", "2", "1b", "100"}
	in := make([]row, len(ages))
	for i, age := range ages {
		in[i] = row{ID: i + 1, Age: age}
	}
	q := DefaultQuery().ToggleSort("age")

	got := Project(in, q, rowSchema).Items
	sorted := make([]string, len(got))
	for i, r := range got {
		sorted[i] = r.Age
	}
	assert.Equal(t, []string{"2", "9", "10", "100", "1a", "1b"}, sorted)

	for _, a := range ages {
		for _, b := range ages {
			assert.Equal(t, compareValues(a, b), -compareValues(b, a), "antisymmetric for %q %q", a, b)
		}
	}
}

func TestProject_HugePageDoesNotOverflow(t *testing.T) {
	q, err := ParseQuery(url.Values{"page": {"922337203685477581"}, "page_size": {"10"}}, nil)
	require.NoError(t, err)

	var page Page[row]
	assert.NotPanics(t, func() {
		page = Project([]row{{ID: 1}, {ID: 2}, {ID: 3}}, q, rowSchema)
	})
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.Total)
}

func TestProject_PastLastPage(t *testing.T) {
	in := make([]row, 12)
	for i := range in {
		in[i] = row{ID: i + 1}
	}

	page := Project(in, DefaultQuery().WithPage(1), rowSchema)
	assert.Equal(t, []int{11, 12}, idsOf(page.Items))
	assert.Equal(t, 2, page.PageCount)

	page = Project(in, DefaultQuery().WithPage(5), rowSchema)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 12, page.Total)
}

func TestQuery_ChangesResetPage(t *testing.T) {
	q := DefaultQuery().WithPage(3)

	assert.Zero(t, q.WithSearch("x").Page)
	assert.Zero(t, q.WithRegion("x").Page)

	sized, err := q.WithPageSize(25)
	require.NoError(t, err)
	assert.Zero(t, sized.Page)
	assert.Equal(t, 25, sized.PageSize)

	_, err = q.WithPageSize(7)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	assert.Equal(t, 3, q.ToggleSort("name").Page, "sorting keeps the page")
}

func TestQuery_ToggleSort(t *testing.T) {
	q := DefaultQuery().ToggleSort("name")
	assert.Equal(t, "name", q.SortKey)
	assert.Equal(t, Ascending, q.Direction)

	q = q.ToggleSort("name")
	assert.Equal(t, Descending, q.Direction)

	q = q.ToggleSort("age")
	assert.Equal(t, "age", q.SortKey)
	assert.Equal(t, Ascending, q.Direction)
}

func TestParseQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q, err := ParseQuery(url.Values{}, rowSchema.SortFields)
		require.NoError(t, err)
		assert.Equal(t, DefaultQuery(), q)
	})

	t.Run("full", func(t *testing.T) {
		q, err := ParseQuery(url.Values{
			"search":    {" maria "},
			"sort":      {"name"},
			"dir":       {"DESC"},
			"page":      {"2"},
			"page_size": {"25"},
		}, rowSchema.SortFields)
		require.NoError(t, err)
		assert.Equal(t, Query{Search: "maria", SortKey: "name", Direction: Descending, Page: 2, PageSize: 25}, q)
	})

	invalid := []struct {
		name   string
		values url.Values
		field  string
	}{
		{"unknown sort", url.Values{"sort": {"password"}}, "sort"},
		{"bad direction", url.Values{"dir": {"up"}}, "direction"},
		{"negative page", url.Values{"page": {"-1"}}, "page"},
		{"non-numeric page", url.Values{"page": {"two"}}, "page"},
		{"odd page size", url.Values{"page_size": {"7"}}, "page_size"},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseQuery(tc.values, rowSchema.SortFields)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			assert.Equal(t, tc.field, dErrors.FieldOf(err))
		})
	}
}

// TestProject_Properties checks invariants over random inputs: the page is a subset of
// the input, totals agree across pages, and the input is left untouched.
func TestProject_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	regions := []string{"San Isidro", "Poblacion", "Santa Cruz"}

	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(40)
		in := make([]row, n)
		for i := range in {
			in[i] = row{
				ID:        i + 1,
				Name:      fmt.Sprintf("name-%d", rng.Intn(10)),
				Region:    regions[rng.Intn(len(regions))],
				hasRegion: rng.Intn(5) != 0,
				Age:       strconv.Itoa(18 + rng.Intn(50)),
			}
		}
		snapshot := slices.Clone(in)

		q := DefaultQuery()
		if rng.Intn(2) == 0 {
			q = q.WithRegion(regions[rng.Intn(len(regions))])
		}
		if rng.Intn(2) == 0 {
			q = q.WithSearch(strconv.Itoa(rng.Intn(10)))
		}
		if rng.Intn(2) == 0 {
			q = q.ToggleSort(rowSchema.SortFields[rng.Intn(len(rowSchema.SortFields))])
		}
		q, _ = q.WithPageSize(PageSizes[rng.Intn(len(PageSizes))])

		first := Project(in, q, rowSchema)
		seen := 0
		for p := 0; p < first.PageCount+1; p++ {
			page := Project(in, q.WithPage(p), rowSchema)
			require.Equal(t, first.Total, page.Total)
			require.LessOrEqual(t, len(page.Items), q.PageSize)
			for _, item := range page.Items {
				require.Contains(t, in, item)
			}
			seen += len(page.Items)
		}
		require.Equal(t, first.Total, seen)
		require.Equal(t, snapshot, in)
	}
}

func idsOf(rows []row) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}
