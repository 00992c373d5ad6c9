package audit

import "time"

// Event records one admin action. Keep it transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	AdminID   string    `json:"admin_id"`
	Region    string    `json:"region"`
	Action    Action    `json:"action"`
	Subject   string    `json:"subject"`
	Reason    string    `json:"reason,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

type Action string

const (
	ActionApplicantApproved    Action = "applicant_approved"
	ActionApplicantDeclined    Action = "applicant_declined"
	ActionSoloParentRevoked    Action = "solo_parent_revoked"
	ActionChildRequestApproved Action = "child_request_approved"
	ActionChildRequestDeclined Action = "child_request_declined"
	ActionReportExported       Action = "report_exported"
	ActionNotificationsCleared Action = "notifications_cleared"
)
