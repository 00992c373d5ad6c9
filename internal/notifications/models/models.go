package models

import (
	"strings"
	"time"
)

// Notification is one entry of the region's admin inbox.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Type      string    `json:"notif_type"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	Date      string    `json:"date"`
}

// DateOf formats t the way the inbox groups entries.
func DateOf(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

// Route is the console page a notification of type t opens.
func Route(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "new_application":
		return "/applications"
	case "child_request":
		return "/child-requests"
	case "remarks", "revoke":
		return "/solo-parents"
	case "export":
		return "/reports"
	default:
		return "/dashboard"
	}
}

// Inbox is the mirror handed back to the console.
type Inbox struct {
	Notifications []Notification `json:"notifications"`
	Unread        int            `json:"unread_count"`
}

// MarkAllResult reports a bulk acknowledgement. Ids that failed stay unread.
type MarkAllResult struct {
	Total     int     `json:"total"`
	Succeeded int     `json:"succeeded"`
	FailedIDs []int64 `json:"failed_ids"`
}

type OpenResult struct {
	Notification Notification `json:"notification"`
	Route        string       `json:"route"`
}
