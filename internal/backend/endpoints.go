package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"soloparent/pkg/domain"
)

// Endpoint names used for spans, metrics and error messages.
const (
	EndpointPendingApplicants = "pending_applicants"
	EndpointApproveApplicant  = "approve_applicant"
	EndpointDeclineApplicant  = "decline_applicant"
	EndpointVerifiedUsers     = "verified_users"
	EndpointSaveRemarks       = "save_remarks"
	EndpointChildRequests     = "child_requests"
	EndpointResolveChild      = "resolve_child_request"
	EndpointNotifications     = "notifications"
	EndpointMarkRead          = "mark_notification_read"
	EndpointClearNotification = "clear_notifications"
	EndpointExportLimit       = "export_limit"
	EndpointExportIncrement   = "export_limit_increment"
)

// Approval/status values the backend understands.
const (
	ApprovalApproved = "Approved"
	StatusDeclined   = "Declined"
)

func (c *Client) ListPendingApplicants(ctx context.Context) ([]ApplicantDTO, error) {
	var out []ApplicantDTO
	err := c.do(ctx, call{
		endpoint: EndpointPendingApplicants,
		method:   http.MethodGet,
		path:     "/pendingUsersAdmin",
	}, &out)
	return out, err
}

func (c *Client) ApproveApplicant(ctx context.Context, code domain.CodeID) error {
	return c.do(ctx, call{
		endpoint: EndpointApproveApplicant,
		method:   http.MethodPost,
		path:     "/updateUserStatusAdmin",
		body: map[string]string{
			"code_id":  code.String(),
			"approval": ApprovalApproved,
		},
	}, nil)
}

func (c *Client) DeclineApplicant(ctx context.Context, req DeclineApplicantRequest) error {
	req.Status = StatusDeclined
	return c.do(ctx, call{
		endpoint: EndpointDeclineApplicant,
		method:   http.MethodPost,
		path:     "/updateUserStatus",
		body:     req,
	}, nil)
}

// ListSoloParents fetches the admin's solo parent records. An empty status returns all.
func (c *Client) ListSoloParents(ctx context.Context, adminID domain.AdminID, status string) ([]SoloParentDTO, error) {
	var q url.Values
	if status != "" {
		q = url.Values{"status": {status}}
	}
	var out []SoloParentDTO
	err := c.do(ctx, call{
		endpoint: EndpointVerifiedUsers,
		method:   http.MethodGet,
		path:     "/verifiedUsers/" + url.PathEscape(adminID.String()),
		query:    q,
	}, &out)
	return out, err
}

func (c *Client) SaveRemarks(ctx context.Context, req SaveRemarksRequest) error {
	return c.do(ctx, call{
		endpoint: EndpointSaveRemarks,
		method:   http.MethodPost,
		path:     "/saveRemarks",
		body:     req,
	}, nil)
}

func (c *Client) ListChildRequests(ctx context.Context, region domain.Region) ([]ChildRequestDTO, error) {
	var out childRequestsEnvelope
	err := c.do(ctx, call{
		endpoint: EndpointChildRequests,
		method:   http.MethodGet,
		path:     "/newchildrequest/by-barangay",
		query:    url.Values{"barangay": {region.String()}},
	}, &out)
	return out.Requests, err
}

// ResolveChildRequest approves or declines a child request. A {success:false}
// acknowledgement is returned as a conflict.
func (c *Client) ResolveChildRequest(ctx context.Context, id int64, action string) error {
	var out ActionResult
	if err := c.do(ctx, call{
		endpoint: EndpointResolveChild,
		method:   http.MethodPost,
		path:     "/newchildrequest/" + url.PathEscape(action),
		body:     map[string]int64{"id": id},
	}, &out); err != nil {
		return err
	}
	if !out.Success {
		msg := out.Message
		if msg == "" {
			msg = "child request was not updated"
		}
		return newError(ErrorConflict, EndpointResolveChild, msg, nil)
	}
	return nil
}

func (c *Client) ListNotifications(ctx context.Context, region domain.Region) ([]NotificationDTO, error) {
	var out notificationsEnvelope
	err := c.do(ctx, call{
		endpoint: EndpointNotifications,
		method:   http.MethodGet,
		path:     "/api/adminnotifications",
		query:    url.Values{"barangay": {region.String()}},
	}, &out)
	return out.Notifications, err
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.do(ctx, call{
		endpoint: EndpointMarkRead,
		method:   http.MethodPut,
		path:     "/api/adminnotifications/mark-as-read/" + strconv.FormatInt(id, 10),
	}, nil)
}

func (c *Client) ClearNotifications(ctx context.Context, region domain.Region) error {
	return c.do(ctx, call{
		endpoint: EndpointClearNotification,
		method:   http.MethodDelete,
		path:     "/api/adminnotifications",
		query:    url.Values{"barangay": {region.String()}},
	}, nil)
}

func (c *Client) GetExportLimit(ctx context.Context, adminID domain.AdminID) (*ExportLimitDTO, error) {
	var out ExportLimitDTO
	if err := c.do(ctx, call{
		endpoint: EndpointExportLimit,
		method:   http.MethodGet,
		path:     "/api/export-limit/" + url.PathEscape(adminID.String()),
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IncrementExportLimit records one export of the given format ("excel" or "pdf").
func (c *Client) IncrementExportLimit(ctx context.Context, adminID domain.AdminID, format string) (*ExportLimitDTO, error) {
	var out ExportLimitDTO
	if err := c.do(ctx, call{
		endpoint: EndpointExportIncrement,
		method:   http.MethodPost,
		path:     "/api/export-limit/increment/" + url.PathEscape(adminID.String()),
		body:     map[string]string{"type": format},
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
