package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "soloparent/pkg/domain-errors"
)

type remarksRequest struct {
	Remarks string `json:"remarks" validate:"notblank,max=10"`
	Format  string `json:"format" validate:"omitempty,oneof=excel pdf"`
}

func TestValidate(t *testing.T) {
	t.Run("blank remarks rejected with field", func(t *testing.T) {
		err := Validate(remarksRequest{Remarks: "   "})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Equal(t, "remarks", dErrors.FieldOf(err))
		assert.Equal(t, "remarks must not be blank", err.Error())
	})

	t.Run("oneof lists options", func(t *testing.T) {
		err := Validate(remarksRequest{Remarks: "ok", Format: "csv"})
		require.Error(t, err)
		assert.Equal(t, "format must be one of [excel pdf]", err.Error())
	})

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, Validate(remarksRequest{Remarks: "duplicate", Format: "pdf"}))
	})
}
