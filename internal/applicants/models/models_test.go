package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "soloparent/pkg/domain-errors"
)

func TestLifecycleFrom(t *testing.T) {
	cases := []struct {
		approval, status string
		want             Lifecycle
	}{
		{"Pending", "Pending", LifecyclePending},
		{"Approved", "Pending", LifecycleApproved},
		{"approved", "", LifecycleApproved},
		{"Pending", "Declined", LifecycleDeclined},
		{"Approved", "declined", LifecycleDeclined},
		{"", "", LifecyclePending},
		{" Approved ", "", LifecycleApproved},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LifecycleFrom(tc.approval, tc.status), "approval=%q status=%q", tc.approval, tc.status)
	}
}

func TestApplicant_Transitions(t *testing.T) {
	t.Run("approve from pending", func(t *testing.T) {
		a := Applicant{Lifecycle: LifecyclePending}
		require.NoError(t, a.Approve())
		assert.Equal(t, LifecycleApproved, a.Lifecycle)

		err := a.Approve()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
	})

	t.Run("decline requires remarks", func(t *testing.T) {
		a := Applicant{Lifecycle: LifecyclePending}
		err := a.Decline(" ")
		require.Error(t, err)
		assert.Equal(t, "remarks", dErrors.FieldOf(err))
		assert.Equal(t, LifecyclePending, a.Lifecycle)

		require.NoError(t, a.Decline("incomplete"))
		assert.Equal(t, LifecycleDeclined, a.Lifecycle)
	})

	t.Run("declined cannot be approved", func(t *testing.T) {
		a := Applicant{Lifecycle: LifecycleDeclined}
		assert.True(t, dErrors.HasCode(a.Approve(), dErrors.CodeConflict))
	})
}

func TestApplicant_Field(t *testing.T) {
	a := Applicant{ID: 7, CodeID: "SP-7", FirstName: "Ana", LastName: "Reyes", Age: 30, Barangay: "Poblacion"}

	v, ok := a.Field("name")
	assert.True(t, ok)
	assert.Equal(t, "Ana Reyes", v)

	_, ok = a.Field("email")
	assert.False(t, ok, "missing email is reported as absent")

	_, ok = a.Field("unknown")
	assert.False(t, ok)
}
