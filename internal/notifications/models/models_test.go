package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoute(t *testing.T) {
	cases := map[string]string{
		"new_application": "/applications",
		"child_request":   "/child-requests",
		"remarks":         "/solo-parents",
		"Revoke":          "/solo-parents",
		"export":          "/reports",
		"something_else":  "/dashboard",
		"":                "/dashboard",
	}
	for typ, want := range cases {
		assert.Equal(t, want, Route(typ), "type %q", typ)
	}
}

func TestDateOf(t *testing.T) {
	assert.Equal(t, "2025-03-01", DateOf(time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC)))
	assert.Empty(t, DateOf(time.Time{}))
}
