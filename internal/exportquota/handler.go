package exportquota

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"soloparent/pkg/domain"
	"soloparent/pkg/platform/httputil"
	"soloparent/pkg/requestcontext"
)

type checker interface {
	Check(ctx context.Context, sess domain.Session) (*Quota, error)
}

type Handler struct {
	service checker
	logger  *slog.Logger
}

func NewHandler(service checker, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/export-quota", h.HandleGet)
}

// HandleGet returns the admin's counters as of now, refreshing the mirror.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sess, err := httputil.RequireSession(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	q, err := h.service.Check(ctx, sess)
	if err != nil {
		h.logger.ErrorContext(ctx, "export quota check failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, q.Snapshot())
}
