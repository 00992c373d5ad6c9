package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite covers the error primitives every console boundary relies on:
// wrapped domain errors keep their code and errors.Is matches by code.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeNotFound, Message: "applicant not found"}
		s.Equal("applicant not found", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeQuotaExceeded}
		s.Equal("quota_exceeded", err.Error())
	})
}

func (s *DomainErrorsSuite) TestIsMatching() {
	s.Run("matches by code only", func() {
		err1 := &Error{Code: CodeConflict, Message: "request already resolved"}
		err2 := &Error{Code: CodeConflict, Message: "applicant already approved"}
		s.True(errors.Is(err1, err2))
	})

	s.Run("different codes do not match", func() {
		err1 := &Error{Code: CodeConflict}
		err2 := &Error{Code: CodeNotFound}
		s.False(errors.Is(err1, err2))
	})
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("preserves the original domain code", func() {
		inner := New(CodeQuotaExceeded, "daily excel export limit reached")
		wrapped := Wrap(inner, CodeInternal, "export failed")
		s.True(HasCode(wrapped, CodeQuotaExceeded))
		s.Equal("export failed", wrapped.Error())
	})

	s.Run("applies the code to plain errors", func() {
		wrapped := Wrap(fmt.Errorf("dial tcp: refused"), CodeUpstreamUnavailable, "backend unavailable")
		s.True(HasCode(wrapped, CodeUpstreamUnavailable))
		s.NotNil(errors.Unwrap(wrapped))
	})

	s.Run("keeps the field of wrapped validation errors", func() {
		wrapped := Wrap(NewField("end_date", "end date must not be before start date"), CodeInternal, "invalid range")
		s.Equal("end_date", FieldOf(wrapped))
	})
}

func (s *DomainErrorsSuite) TestFieldOf() {
	s.Equal("remarks", FieldOf(NewField("remarks", "remarks are required")))
	s.Empty(FieldOf(New(CodeValidation, "invalid body")))
	s.Empty(FieldOf(errors.New("plain")))
}
