package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "soloparent/pkg/domain-errors"
)

func TestParseIDs(t *testing.T) {
	t.Run("rejects blank admin id", func(t *testing.T) {
		_, err := ParseAdminID("   ")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("trims region", func(t *testing.T) {
		r, err := ParseRegion("  San Isidro ")
		require.NoError(t, err)
		assert.Equal(t, Region("San Isidro"), r)
	})

	t.Run("rejects non-positive numeric id", func(t *testing.T) {
		_, err := ParseNumericID("0", "notification id")
		require.Error(t, err)
		_, err = ParseNumericID("abc", "notification id")
		require.Error(t, err)
		n, err := ParseNumericID("42", "notification id")
		require.NoError(t, err)
		assert.Equal(t, int64(42), n)
	})
}

func TestRegionMatches(t *testing.T) {
	r := Region("Poblacion")
	assert.True(t, r.Matches("POBLACION"))
	assert.True(t, r.Matches(" poblacion "))
	assert.False(t, r.Matches("Poblacion East"))
	assert.False(t, r.Matches(""), "missing field fails closed")
	assert.False(t, Region("").Matches("Poblacion"))
}
