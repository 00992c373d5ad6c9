package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"soloparent/internal/childrequests/models"
	"soloparent/internal/records"
	"soloparent/pkg/domain"
	"soloparent/pkg/platform/httputil"
	"soloparent/pkg/requestcontext"
)

type Service interface {
	List(ctx context.Context, sess domain.Session, q records.Query) (*records.Page[models.ChildRequest], error)
	Resolve(ctx context.Context, sess domain.Session, id int64, action models.Action) (*models.ChildRequest, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/child-requests", h.HandleList)
	r.Post("/child-requests/{id}/{action}", h.HandleResolve)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sess, err := httputil.RequireSession(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	q, err := records.ParseQuery(r.URL.Query(), models.Schema.SortFields)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	page, err := h.service.List(ctx, sess, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "list child requests failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, page)
}

// HandleResolve approves or declines a child request.
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sess, err := httputil.RequireSession(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	id, err := domain.ParseNumericID(chi.URLParam(r, "id"), "child request id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	action, err := models.ParseAction(chi.URLParam(r, "action"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	c, err := h.service.Resolve(ctx, sess, id, action)
	if err != nil {
		h.logger.ErrorContext(ctx, "resolve child request failed",
			"error", err, "request_id", requestID, "child_request_id", id, "action", action)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "child request resolved",
		"request_id", requestID, "child_request_id", id, "action", action, "admin_id", sess.AdminID)
	httputil.WriteJSON(w, http.StatusOK, c)
}
