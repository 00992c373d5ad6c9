package audit

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	dErrors "soloparent/pkg/domain-errors"
	"soloparent/pkg/platform/httputil"
	"soloparent/pkg/requestcontext"
)

const (
	defaultRecentLimit = 50
	maxRecentLimit     = 500
)

type Lister interface {
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}

// Handler serves the recent admin action trail.
type Handler struct {
	lister Lister
	logger *slog.Logger
}

func NewHandler(lister Lister, logger *slog.Logger) *Handler {
	return &Handler{lister: lister, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/audit/recent", h.HandleRecent)
}

type recentResponse struct {
	Events []Event `json:"events"`
	Count  int     `json:"count"`
}

// HandleRecent returns the newest events. Only the caller's region is shown.
func (h *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sess, err := httputil.RequireSession(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n <= 0 || n > maxRecentLimit {
			httputil.WriteError(w, dErrors.NewField("limit", "limit must be between 1 and 500"))
			return
		}
		limit = n
	}

	events, err := h.lister.ListRecent(ctx, 0)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list audit events", "error", err, "request_id", requestID)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audit events"))
		return
	}

	scoped := make([]Event, 0, limit)
	for _, e := range events {
		if len(scoped) == limit {
			break
		}
		if sess.Region.Matches(e.Region) {
			scoped = append(scoped, e)
		}
	}

	httputil.WriteJSON(w, http.StatusOK, recentResponse{Events: scoped, Count: len(scoped)})
}
