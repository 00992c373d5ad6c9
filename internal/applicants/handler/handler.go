package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"soloparent/internal/applicants/models"
	"soloparent/internal/records"
	"soloparent/pkg/domain"
	"soloparent/pkg/platform/httputil"
	"soloparent/pkg/requestcontext"
)

// Service defines the applicant queue operations.
type Service interface {
	ListPending(ctx context.Context, sess domain.Session, q records.Query) (*records.Page[models.Applicant], error)
	Get(ctx context.Context, sess domain.Session, code domain.CodeID) (*models.Applicant, error)
	Approve(ctx context.Context, sess domain.Session, code domain.CodeID) (*models.Applicant, error)
	Decline(ctx context.Context, sess domain.Session, code domain.CodeID, remarks string) (*models.Applicant, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/applicants", h.HandleList)
	r.Get("/applicants/{code}", h.HandleGet)
	r.Post("/applicants/{code}/approve", h.HandleApprove)
	r.Post("/applicants/{code}/decline", h.HandleDecline)
}

// HandleList returns one page of the pending queue.
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

	page, err := h.service.ListPending(ctx, sess, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "list applicants failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toPageResponse(page))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sess, err := httputil.RequireSession(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	code, err := domain.ParseCodeID(chi.URLParam(r, "code"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	applicant, err := h.service.Get(ctx, sess, code)
	if err != nil {
		h.logger.ErrorContext(ctx, "get applicant failed", "error", err, "request_id", requestID, "code_id", code)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, applicant)
}

func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sess, err := httputil.RequireSession(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	code, err := domain.ParseCodeID(chi.URLParam(r, "code"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	applicant, err := h.service.Approve(ctx, sess, code)
	if err != nil {
		h.logger.ErrorContext(ctx, "approve applicant failed", "error", err, "request_id", requestID, "code_id", code)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "applicant approved", "request_id", requestID, "code_id", code, "admin_id", sess.AdminID)
	httputil.WriteJSON(w, http.StatusOK, toSummary(applicant))
}

func (h *Handler) HandleDecline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sess, err := httputil.RequireSession(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	code, err := domain.ParseCodeID(chi.URLParam(r, "code"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.DeclineRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	applicant, err := h.service.Decline(ctx, sess, code, req.Remarks)
	if err != nil {
		h.logger.ErrorContext(ctx, "decline applicant failed", "error", err, "request_id", requestID, "code_id", code)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "applicant declined", "request_id", requestID, "code_id", code, "admin_id", sess.AdminID)
	httputil.WriteJSON(w, http.StatusOK, toSummary(applicant))
}
