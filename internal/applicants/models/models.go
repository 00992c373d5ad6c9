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

// Lifecycle is the single review state of an application.
type Lifecycle string

const (
	LifecyclePending  Lifecycle = "Pending"
	LifecycleApproved Lifecycle = "Approved"
	LifecycleDeclined Lifecycle = "Declined"
)

// LifecycleFrom collapses the backend's approval/status pair. A declined status wins over
// an approval; anything else is pending. Comparison ignores case.
func LifecycleFrom(approval, status string) Lifecycle {
	switch {
	case strings.EqualFold(strings.TrimSpace(status), string(LifecycleDeclined)):
		return LifecycleDeclined
	case strings.EqualFold(strings.TrimSpace(approval), string(LifecycleApproved)):
		return LifecycleApproved
	default:
		return LifecyclePending
	}
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship,omitempty"`
	Address      string `json:"address,omitempty"`
	Contact      string `json:"contact,omitempty"`
}

// Applicant is a pending solo parent application.
type Applicant struct {
	ID                  int64                 `json:"id"`
	CodeID              domain.CodeID         `json:"code_id"`
	FirstName           string                `json:"first_name"`
	MiddleName          string                `json:"middle_name,omitempty"`
	LastName            string                `json:"last_name"`
	Suffix              string                `json:"suffix,omitempty"`
	Age                 int                   `json:"age"`
	Gender              string                `json:"gender,omitempty"`
	DateOfBirth         string                `json:"date_of_birth,omitempty"`
	PlaceOfBirth        string                `json:"place_of_birth,omitempty"`
	Barangay            string                `json:"barangay"`
	Address             string                `json:"address,omitempty"`
	Email               string                `json:"email,omitempty"`
	ContactNumber       string                `json:"contact_number,omitempty"`
	Education           string                `json:"education,omitempty"`
	Occupation          string                `json:"occupation,omitempty"`
	Company             string                `json:"company,omitempty"`
	EmploymentStatus    string                `json:"employment_status,omitempty"`
	Income              string                `json:"income,omitempty"`
	CivilStatus         string                `json:"civil_status,omitempty"`
	Religion            string                `json:"religion,omitempty"`
	Classification      string                `json:"classification,omitempty"`
	Needs               string                `json:"needs,omitempty"`
	PantawidBeneficiary string                `json:"pantawid_beneficiary,omitempty"`
	IndigenousPerson    string                `json:"indigenous_person,omitempty"`
	EmergencyContact    EmergencyContact      `json:"emergency_contact"`
	FamilyMembers       []domain.FamilyMember `json:"family_members"`
	Documents           []domain.Document     `json:"documents"`
	CreatedAt           time.Time             `json:"created_at,omitzero"`
	Lifecycle           Lifecycle             `json:"lifecycle"`
}

func (a *Applicant) FullName() string {
	return s.JoinNonEmpty(" ", a.FirstName, a.MiddleName, a.LastName, a.Suffix)
}

func (a *Applicant) IsPending() bool {
	return a.Lifecycle == LifecyclePending
}

// Approve moves a pending application to Approved.
func (a *Applicant) Approve() error {
	if !a.IsPending() {
		return dErrors.New(dErrors.CodeConflict, "application is already "+strings.ToLower(string(a.Lifecycle)))
	}
	a.Lifecycle = LifecycleApproved
	return nil
}

// Decline moves a pending application to Declined. Remarks are mandatory.
func (a *Applicant) Decline(remarks string) error {
	if strings.TrimSpace(remarks) == "" {
		return dErrors.NewField("remarks", "remarks are required to decline an application")
	}
	if !a.IsPending() {
		return dErrors.New(dErrors.CodeConflict, "application is already "+strings.ToLower(string(a.Lifecycle)))
	}
	a.Lifecycle = LifecycleDeclined
	return nil
}

// Field exposes stringified fields to the record pipeline.
func (a Applicant) Field(name string) (string, bool) {
	switch name {
	case "id":
		return strconv.FormatInt(a.ID, 10), a.ID != 0
	case "code":
		return a.CodeID.String(), a.CodeID != ""
	case "name":
		n := a.FullName()
		return n, n != ""
	case "email":
		return a.Email, a.Email != ""
	case "region":
		return a.Barangay, a.Barangay != ""
	case "age":
		return strconv.Itoa(a.Age), a.Age != 0
	case "created_at":
		if a.CreatedAt.IsZero() {
			return "", false
		}
		return a.CreatedAt.Format(time.RFC3339), true
	}
	return "", false
}

// Schema drives the pending queue view.
var Schema = records.Schema[Applicant]{
	Field:        Applicant.Field,
	SearchFields: []string{"id", "code", "name", "email", "region", "age"},
	RegionField:  "region",
	SortFields:   []string{"id", "code", "name", "email", "region", "age", "created_at"},
	Visible:      func(a Applicant) bool { return a.IsPending() },
}
