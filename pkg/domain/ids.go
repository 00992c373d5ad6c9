// Package domain provides typed identifiers so admin ids, regions and applicant codes
// cannot be mixed up at compile time.
package domain

import (
	"strconv"
	"strings"

	dErrors "soloparent/pkg/domain-errors"
)

// Distinct string identifiers issued by the welfare backend.
type (
	// AdminID identifies the signed-in administrator.
	AdminID string
	// Region is the barangay an administrator is assigned to.
	Region string
	// CodeID is the public applicant/solo parent reference code.
	CodeID string
)

// Parse functions - use at trust boundaries (handlers, token claims).

func ParseAdminID(s string) (AdminID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeBadRequest, "admin ID cannot be empty")
	}
	return AdminID(s), nil
}

func ParseRegion(s string) (Region, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeBadRequest, "region cannot be empty")
	}
	return Region(s), nil
}

func ParseCodeID(s string) (CodeID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeBadRequest, "code ID cannot be empty")
	}
	return CodeID(s), nil
}

// ParseNumericID parses backend row identifiers (notifications, child requests).
func ParseNumericID(s, name string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, dErrors.New(dErrors.CodeBadRequest, "invalid "+name)
	}
	return n, nil
}

func (id AdminID) String() string { return string(id) }
func (r Region) String() string   { return string(r) }
func (c CodeID) String() string   { return string(c) }

func (id AdminID) IsNil() bool { return id == "" }
func (r Region) IsNil() bool   { return r == "" }

// Matches reports whether other names the same region, ignoring case and surrounding space.
// An empty region never matches.
func (r Region) Matches(other string) bool {
	other = strings.TrimSpace(other)
	if r == "" || other == "" {
		return false
	}
	return strings.EqualFold(string(r), other)
}
