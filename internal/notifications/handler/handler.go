package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"soloparent/internal/notifications/models"
	"soloparent/pkg/domain"
	"soloparent/pkg/platform/httputil"
	"soloparent/pkg/requestcontext"
)

type Service interface {
	Fetch(ctx context.Context, sess domain.Session) (*models.Inbox, error)
	MarkRead(ctx context.Context, sess domain.Session, id int64) (*models.Notification, error)
	MarkAllRead(ctx context.Context, sess domain.Session) (*models.MarkAllResult, error)
	ClearAll(ctx context.Context, sess domain.Session, confirmed bool) error
	Open(ctx context.Context, sess domain.Session, id int64) (*models.OpenResult, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/notifications", h.HandleList)
	r.Delete("/notifications", h.HandleClear)
	r.Post("/notifications/read-all", h.HandleMarkAllRead)
	r.Post("/notifications/{id}/read", h.HandleMarkRead)
	r.Post("/notifications/{id}/open", h.HandleOpen)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sess, err := httputil.RequireSession(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	inbox, err := h.service.Fetch(ctx, sess)
	if err != nil {
		h.logger.ErrorContext(ctx, "fetch notifications failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, inbox)
}

func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sess, err := httputil.RequireSession(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	id, err := domain.ParseNumericID(chi.URLParam(r, "id"), "notification id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	n, err := h.service.MarkRead(ctx, sess, id)
	if err != nil {
		h.logger.WarnContext(ctx, "mark notification read failed", "error", err, "request_id", requestID, "notification_id", id)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, n)
}

// HandleOpen marks the notification read and tells the console where to navigate.
func (h *Handler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sess, err := httputil.RequireSession(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	id, err := domain.ParseNumericID(chi.URLParam(r, "id"), "notification id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.Open(ctx, sess, id)
	if err != nil {
		h.logger.WarnContext(ctx, "open notification failed", "error", err, "request_id", requestID, "notification_id", id)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sess, err := httputil.RequireSession(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.MarkAllRead(ctx, sess)
	if err != nil {
		h.logger.ErrorContext(ctx, "mark all notifications read failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	if len(result.FailedIDs) > 0 {
		h.logger.WarnContext(ctx, "some notifications could not be marked read",
			"request_id", requestID,
			"failed", len(result.FailedIDs),
			"total", result.Total,
		)
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleClear deletes every notification of the region. Requires ?confirm=true.
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sess, err := httputil.RequireSession(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

	if err := h.service.ClearAll(ctx, sess, confirmed); err != nil {
		h.logger.WarnContext(ctx, "clear notifications failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	h.logger.InfoContext(ctx, "notifications cleared", "request_id", requestID, "admin_id", sess.AdminID, "region", sess.Region)
	w.WriteHeader(http.StatusNoContent)
}
