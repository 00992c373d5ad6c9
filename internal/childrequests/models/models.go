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
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusDeclined Status = "Declined"
)

// Action is the terminal decision on a child request. Its value is the backend path segment.
type Action string

const (
	ActionApprove Action = "approve"
	ActionDecline Action = "decline"
)

func ParseAction(raw string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(raw))) {
	case ActionApprove:
		return ActionApprove, nil
	case ActionDecline:
		return ActionDecline, nil
	}
	return "", dErrors.NewField("action", "action must be one of [approve decline]")
}

// ChildRequest asks to add a child to a registered solo parent's household.
type ChildRequest struct {
	ID              int64         `json:"id"`
	UserID          int64         `json:"user_id"`
	CodeID          domain.CodeID `json:"code_id"`
	ParentFirstName string        `json:"parent_first_name"`
	ParentLastName  string        `json:"parent_last_name"`
	FirstName       string        `json:"first_name"`
	LastName        string        `json:"last_name"`
	Birthdate       string        `json:"birthdate,omitempty"`
	Age             int           `json:"age"`
	Education       string        `json:"education,omitempty"`
	Barangay        string        `json:"barangay"`
	Status          Status        `json:"status"`
	CreatedAt       time.Time     `json:"created_at,omitzero"`
}

// StatusFrom maps backend status text; blank and unknown values are pending.
func StatusFrom(raw string) Status {
	for _, st := range []Status{StatusApproved, StatusDeclined} {
		if strings.EqualFold(strings.TrimSpace(raw), string(st)) {
			return st
		}
	}
	return StatusPending
}

func (c *ChildRequest) ParentName() string {
	return s.JoinNonEmpty(" ", c.ParentFirstName, c.ParentLastName)
}

func (c *ChildRequest) ChildName() string {
	return s.JoinNonEmpty(" ", c.FirstName, c.LastName)
}

// Resolve applies the one terminal transition a request can take.
func (c *ChildRequest) Resolve(action Action) error {
	if c.Status != StatusPending {
		return dErrors.New(dErrors.CodeConflict, "child request is already "+strings.ToLower(string(c.Status)))
	}
	switch action {
	case ActionApprove:
		c.Status = StatusApproved
	case ActionDecline:
		c.Status = StatusDeclined
	default:
		return dErrors.NewField("action", "action must be one of [approve decline]")
	}
	return nil
}

func (c ChildRequest) Field(name string) (string, bool) {
	switch name {
	case "id":
		return strconv.FormatInt(c.ID, 10), c.ID != 0
	case "code":
		return c.CodeID.String(), c.CodeID != ""
	case "name":
		n := s.JoinNonEmpty(" ", c.ChildName(), c.ParentName())
		return n, n != ""
	case "region":
		return c.Barangay, c.Barangay != ""
	case "age":
		return strconv.Itoa(c.Age), c.Age != 0
	case "status":
		return string(c.Status), true
	case "created_at":
		if c.CreatedAt.IsZero() {
			return "", false
		}
		return c.CreatedAt.Format(time.RFC3339), true
	}
	return "", false
}

var Schema = records.Schema[ChildRequest]{
	Field:        ChildRequest.Field,
	SearchFields: []string{"id", "code", "name", "region", "age"},
	RegionField:  "region",
	SortFields:   []string{"id", "code", "name", "age", "status", "created_at"},
}
