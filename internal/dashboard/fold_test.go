package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soloparent/internal/soloparents/models"
	"soloparent/pkg/domain"
	dErrors "soloparent/pkg/domain-errors"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 30, 0, 0, time.UTC)
}

func sampleRecords() []models.SoloParent {
	return []models.SoloParent{
		{ID: 1, Barangay: "San Isidro", Gender: "female", Age: 19, ChildrenCount: 1, EmploymentStatus: "employed",
			Status: models.StatusVerified, CreatedAt: day(2025, 1, 5)},
		{ID: 2, Barangay: "san isidro", Gender: "Male", Age: 34, ChildrenCount: 6, EmploymentStatus: "Unemployed",
			Status: models.StatusPendingRemarks, CreatedAt: day(2025, 1, 20), RemarksAt: day(2025, 3, 2)},
		{ID: 3, Barangay: "San Isidro", Gender: "", Age: 61, ChildrenCount: 3, EmploymentStatus: "Employed",
			Status: models.StatusVerified, CreatedAt: day(2025, 3, 31)},
		{ID: 4, Barangay: "Poblacion", Gender: "Female", Age: 40, ChildrenCount: 2,
			Status: models.StatusVerified, CreatedAt: day(2025, 2, 1)},
		{ID: 5, Barangay: "San Isidro", Gender: "Female", Age: 45, ChildrenCount: 2,
			Status: models.StatusVerified, CreatedAt: day(2024, 12, 31)},
	}
}

func buckets(bs []Bucket) map[string]int {
	out := make(map[string]int, len(bs))
	for _, b := range bs {
		out[b.Label] = b.Count
	}
	return out
}

func TestFold(t *testing.T) {
	r := DateRange{Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)}
	agg := Fold(sampleRecords(), r, "San Isidro")

	t.Run("region and range filter records", func(t *testing.T) {
		assert.Equal(t, 3, agg.Totals.Registered)
		assert.Equal(t, 2, agg.Totals.Verified)
		assert.Equal(t, 1, agg.Totals.PendingRemarks)
		assert.Equal(t, 1, agg.Totals.Remarks)
	})

	t.Run("time series cover every month of the range", func(t *testing.T) {
		require.Len(t, agg.Population, 3)
		assert.Equal(t, Bucket{Label: "2025-01", Count: 2}, agg.Population[0])
		assert.Equal(t, Bucket{Label: "2025-02", Count: 0}, agg.Population[1])
		assert.Equal(t, Bucket{Label: "2025-03", Count: 1}, agg.Population[2], "end day is inclusive")
		assert.Equal(t, 1, buckets(agg.Remarks)["2025-03"])
	})

	t.Run("distributions", func(t *testing.T) {
		assert.Equal(t, "Male", agg.Gender[0].Label, "pinned labels come first")
		assert.Equal(t, map[string]int{"Male": 1, "Female": 1, "Unspecified": 1}, buckets(agg.Gender))
		assert.Equal(t, map[string]int{"Employed": 2, "Unemployed": 1}, buckets(agg.Employment))
		assert.Equal(t, map[string]int{"1": 1, "2": 0, "3": 1, "4": 0, "5+": 1}, buckets(agg.Children))
		assert.Equal(t, map[string]int{"Below 20": 1, "20-29": 0, "30-39": 1, "40-49": 0, "50-59": 0, "60+": 1}, buckets(agg.AgeGroups))
		assert.Len(t, agg.AgeGroups, len(ageLabels))
	})
}

func TestFoldUnboundedRange(t *testing.T) {
	agg := Fold(sampleRecords(), DateRange{}, "San Isidro")
	assert.Equal(t, 4, agg.Totals.Registered)
	require.NotEmpty(t, agg.Population)
	assert.Equal(t, "2024-12", agg.Population[0].Label)
	assert.Equal(t, "2025-03", agg.Population[len(agg.Population)-1].Label)
}

func TestFoldEmpty(t *testing.T) {
	agg := Fold(nil, DateRange{}, domain.Region("San Isidro"))
	assert.NotNil(t, agg.Population)
	assert.Empty(t, agg.Population)
	assert.Equal(t, 0, agg.Totals.Registered)
	assert.Len(t, agg.Children, len(childrenLabels))
}

func TestParseRange(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name, start, end string
		field            string
	}{
		{name: "both blank is unbounded", start: "", end: ""},
		{name: "valid", start: "2025-01-01", end: "2025-01-01"},
		{name: "missing start", start: "", end: "2025-01-01", field: "start_date"},
		{name: "missing end", start: "2025-01-01", end: " ", field: "end_date"},
		{name: "bad start", start: "01/01/2025", end: "2025-01-02", field: "start_date"},
		{name: "end before start", start: "2025-02-01", end: "2025-01-31", field: "end_date"},
		{name: "future year", start: "2025-01-01", end: "2026-01-01", field: "end_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRange(tt.start, tt.end, now)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			assert.Equal(t, tt.field, dErrors.FieldOf(err))
		})
	}
}
