package dashboard

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"soloparent/pkg/domain"
	"soloparent/pkg/platform/httputil"
	"soloparent/pkg/requestcontext"
)

type builder interface {
	Build(ctx context.Context, sess domain.Session, r DateRange) (*Aggregate, error)
	Now() time.Time
}

type Handler struct {
	service builder
	logger  *slog.Logger
}

func NewHandler(service builder, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/dashboard", h.HandleGet)
}

// HandleGet serves the aggregate for the optional start_date/end_date range.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sess, err := httputil.RequireSession(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	q := r.URL.Query()
	dates, err := ParseRange(q.Get("start_date"), q.Get("end_date"), h.service.Now())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	agg, err := h.service.Build(ctx, sess, dates)
	if err != nil {
		h.logger.ErrorContext(ctx, "build dashboard failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, agg)
}
