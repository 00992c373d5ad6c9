package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"soloparent/internal/records"
	"soloparent/internal/soloparents/models"
	"soloparent/pkg/domain"
	"soloparent/pkg/platform/httputil"
	"soloparent/pkg/requestcontext"
)

type Service interface {
	List(ctx context.Context, sess domain.Session, status models.Status, q records.Query) (*records.Page[models.SoloParent], error)
	Get(ctx context.Context, sess domain.Session, code domain.CodeID) (*models.SoloParent, error)
	Revoke(ctx context.Context, sess domain.Session, code domain.CodeID, remarks string) (*models.SoloParent, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/solo-parents", h.HandleList)
	r.Get("/solo-parents/{code}", h.HandleGet)
	r.Post("/solo-parents/{code}/revoke", h.HandleRevoke)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sess, err := httputil.RequireSession(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	status, err := models.ParseStatus(r.URL.Query().Get("status"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	q, err := records.ParseQuery(r.URL.Query(), models.Schema.SortFields)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	page, err := h.service.List(ctx, sess, status, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "list solo parents failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, page)
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

	p, err := h.service.Get(ctx, sess, code)
	if err != nil {
		h.logger.ErrorContext(ctx, "get solo parent failed", "error", err, "request_id", requestID, "code_id", code)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, p)
}

// HandleRevoke sends a verified solo parent back for remarks.
func (h *Handler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
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
	req, ok := httputil.DecodeAndPrepare[models.RevokeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	p, err := h.service.Revoke(ctx, sess, code, req.Remarks)
	if err != nil {
		h.logger.ErrorContext(ctx, "revoke solo parent failed", "error", err, "request_id", requestID, "code_id", code)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "solo parent revoked", "request_id", requestID, "code_id", code, "admin_id", sess.AdminID)
	httputil.WriteJSON(w, http.StatusOK, p)
}
