package models

import (
	"strconv"
	"strings"
	"time"

	"soloparent/internal/records"
	"soloparent/pkg/domain"
	dErrors "soloparent/pkg/domain-errors"
	s "soloparent/pkg/string"
)

type Status string

const (
	StatusVerified       Status = "Verified"
	StatusPendingRemarks Status = "Pending Remarks"
	StatusTerminated     Status = "Terminated"
	StatusUnverified     Status = "Unverified"
)

var statuses = []Status{StatusVerified, StatusPendingRemarks, StatusTerminated, StatusUnverified}

// ParseStatus accepts a status name in any case. Blank means "all statuses".
func ParseStatus(raw string) (Status, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	for _, st := range statuses {
		if strings.EqualFold(raw, string(st)) {
			return st, nil
		}
	}
	return "", dErrors.NewField("status", "status must be one of [Verified, Pending Remarks, Terminated, Unverified]")
}

// SoloParent is a registered beneficiary as listed for the admin.
type SoloParent struct {
	ID               int64                 `json:"id"`
	UserID           int64                 `json:"user_id"`
	CodeID           domain.CodeID         `json:"code_id"`
	FirstName        string                `json:"first_name"`
	MiddleName       string                `json:"middle_name,omitempty"`
	LastName         string                `json:"last_name"`
	Suffix           string                `json:"suffix,omitempty"`
	Email            string                `json:"email,omitempty"`
	Barangay         string                `json:"barangay"`
	Age              int                   `json:"age"`
	Gender           string                `json:"gender,omitempty"`
	DateOfBirth      string                `json:"date_of_birth,omitempty"`
	EmploymentStatus string                `json:"employment_status,omitempty"`
	Classification   string                `json:"classification,omitempty"`
	ChildrenCount    int                   `json:"children_count"`
	Status           Status                `json:"status"`
	Remarks          string                `json:"remarks,omitempty"`
	CreatedAt        time.Time             `json:"created_at,omitzero"`
	RemarksAt        time.Time             `json:"remarks_at,omitzero"`
	FamilyMembers    []domain.FamilyMember `json:"family_members"`
	Documents        []domain.Document     `json:"documents"`
}

func (p *SoloParent) FullName() string {
	return s.JoinNonEmpty(" ", p.FirstName, p.MiddleName, p.LastName, p.Suffix)
}

// Revoke moves a verified beneficiary to Pending Remarks. Remarks are mandatory.
func (p *SoloParent) Revoke(remarks string, now time.Time) error {
	remarks = strings.TrimSpace(remarks)
	if remarks == "" {
		return dErrors.NewField("remarks", "remarks are required to revoke a solo parent")
	}
	if p.Status != StatusVerified {
		return dErrors.New(dErrors.CodeConflict, "only verified solo parents can be revoked")
	}
	p.Status = StatusPendingRemarks
	p.Remarks = remarks
	p.RemarksAt = now
	return nil
}

func (p SoloParent) Field(name string) (string, bool) {
	switch name {
	case "id":
		return strconv.FormatInt(p.ID, 10), p.ID != 0
	case "code":
		return p.CodeID.String(), p.CodeID != ""
	case "name":
		n := p.FullName()
		return n, n != ""
	case "email":
		return p.Email, p.Email != ""
	case "region":
		return p.Barangay, p.Barangay != ""
	case "age":
		return strconv.Itoa(p.Age), p.Age != 0
	case "status":
		return string(p.Status), p.Status != ""
	case "created_at":
		if p.CreatedAt.IsZero() {
			return "", false
		}
		return p.CreatedAt.Format(time.RFC3339), true
	}
	return "", false
}

var Schema = records.Schema[SoloParent]{
	Field:        SoloParent.Field,
	SearchFields: []string{"id", "code", "name", "email", "region", "age"},
	RegionField:  "region",
	SortFields:   []string{"id", "code", "name", "email", "region", "age", "status", "created_at"},
}

type RevokeRequest struct {
	Remarks string `json:"remarks" validate:"notblank,max=2000"`
}

func (r *RevokeRequest) Normalize() {
	r.Remarks = strings.TrimSpace(r.Remarks)
}
