package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"soloparent/internal/backend"
	"soloparent/pkg/domain"
)

// TestSession is the admin most tests act as.
var TestSession = domain.Session{
	AdminID:      "42",
	Region:       "San Isidro",
	BackendToken: "backend-token",
}

var seq atomic.Int64

func nextID() int64 { return seq.Add(1) }

// ApplicantBuilder provides a fluent interface for building backend applicant rows.
type ApplicantBuilder struct {
	dto backend.ApplicantDTO
}

// NewApplicantBuilder creates a pending applicant in TestSession's region.
func NewApplicantBuilder() *ApplicantBuilder {
	n := nextID()
	return &ApplicantBuilder{dto: backend.ApplicantDTO{
		ID:               backend.FlexInt(n),
		CodeID:           fmt.Sprintf("SP-%04d", n),
		FirstName:        "Maria",
		LastName:         "Santos",
		Age:              34,
		Gender:           "Female",
		Barangay:         TestSession.Region.String(),
		Email:            fmt.Sprintf("applicant%d@example.com", n),
		EmploymentStatus: "Employed",
		Classification:   "Death of spouse",
		Approval:         "Pending",
		Status:           "Pending",
		CreatedAt:        "2025-01-15 08:30:00",
	}}
}

func (b *ApplicantBuilder) WithCode(code string) *ApplicantBuilder {
	b.dto.CodeID = code
	return b
}

func (b *ApplicantBuilder) WithName(first, last string) *ApplicantBuilder {
	b.dto.FirstName = first
	b.dto.LastName = last
	return b
}

func (b *ApplicantBuilder) WithRegion(region string) *ApplicantBuilder {
	b.dto.Barangay = region
	return b
}

func (b *ApplicantBuilder) WithAge(age int) *ApplicantBuilder {
	b.dto.Age = backend.FlexInt(age)
	return b
}

func (b *ApplicantBuilder) Approved() *ApplicantBuilder {
	b.dto.Approval = "Approved"
	return b
}

func (b *ApplicantBuilder) Declined() *ApplicantBuilder {
	b.dto.Status = "Declined"
	return b
}

func (b *ApplicantBuilder) Build() backend.ApplicantDTO {
	return b.dto
}

// SoloParentBuilder provides a fluent interface for building verified-user rows.
type SoloParentBuilder struct {
	dto backend.SoloParentDTO
}

// NewSoloParentBuilder creates a verified solo parent in TestSession's region.
func NewSoloParentBuilder() *SoloParentBuilder {
	n := nextID()
	return &SoloParentBuilder{dto: backend.SoloParentDTO{
		ID:               backend.FlexInt(n),
		UserID:           backend.FlexInt(1000 + n),
		CodeID:           fmt.Sprintf("SP-%04d", n),
		FirstName:        "Ana",
		LastName:         "Reyes",
		Email:            fmt.Sprintf("parent%d@example.com", n),
		Barangay:         TestSession.Region.String(),
		Age:              31,
		Gender:           "Female",
		EmploymentStatus: "Employed",
		ChildrenCount:    2,
		Status:           "Verified",
		CreatedAt:        "2025-02-10 09:00:00",
	}}
}

func (b *SoloParentBuilder) WithCode(code string) *SoloParentBuilder {
	b.dto.CodeID = code
	return b
}

func (b *SoloParentBuilder) WithRegion(region string) *SoloParentBuilder {
	b.dto.Barangay = region
	return b
}

func (b *SoloParentBuilder) WithStatus(status string) *SoloParentBuilder {
	b.dto.Status = status
	return b
}

func (b *SoloParentBuilder) WithGender(gender string) *SoloParentBuilder {
	b.dto.Gender = gender
	return b
}

func (b *SoloParentBuilder) WithAge(age int) *SoloParentBuilder {
	b.dto.Age = backend.FlexInt(age)
	return b
}

func (b *SoloParentBuilder) WithEmployment(status string) *SoloParentBuilder {
	b.dto.EmploymentStatus = status
	return b
}

func (b *SoloParentBuilder) WithChildren(n int) *SoloParentBuilder {
	b.dto.ChildrenCount = backend.FlexInt(n)
	return b
}

func (b *SoloParentBuilder) RegisteredAt(t time.Time) *SoloParentBuilder {
	b.dto.CreatedAt = t.Format("2006-01-02 15:04:05")
	return b
}

// Revoked marks the record as revoked with remarks at t.
func (b *SoloParentBuilder) Revoked(remarks string, t time.Time) *SoloParentBuilder {
	b.dto.Status = "Pending Remarks"
	b.dto.Remarks = remarks
	b.dto.RemarksAt = t.Format("2006-01-02 15:04:05")
	return b
}

func (b *SoloParentBuilder) Build() backend.SoloParentDTO {
	return b.dto
}

// NotificationBuilder provides a fluent interface for building inbox rows.
type NotificationBuilder struct {
	dto backend.NotificationDTO
}

func NewNotificationBuilder() *NotificationBuilder {
	n := nextID()
	return &NotificationBuilder{dto: backend.NotificationDTO{
		ID:        backend.FlexInt(n),
		UserID:    backend.FlexInt(1000 + n),
		NotifType: "new_application",
		Message:   "A new application was submitted",
		CreatedAt: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC).Add(time.Duration(n) * time.Minute).Format(time.RFC3339),
	}}
}

func (b *NotificationBuilder) WithID(id int64) *NotificationBuilder {
	b.dto.ID = backend.FlexInt(id)
	return b
}

func (b *NotificationBuilder) WithType(t string) *NotificationBuilder {
	b.dto.NotifType = t
	return b
}

func (b *NotificationBuilder) At(t time.Time) *NotificationBuilder {
	b.dto.CreatedAt = t.Format(time.RFC3339)
	return b
}

func (b *NotificationBuilder) Read() *NotificationBuilder {
	b.dto.IsRead = true
	return b
}

func (b *NotificationBuilder) Build() backend.NotificationDTO {
	return b.dto
}
