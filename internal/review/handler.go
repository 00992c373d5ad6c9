package review

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"soloparent/internal/wizard"
	"soloparent/pkg/domain"
	dErrors "soloparent/pkg/domain-errors"
	"soloparent/pkg/platform/httputil"
	"soloparent/pkg/requestcontext"
)

// Handler exposes the review modal under /review.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/review", func(r chi.Router) {
		r.Post("/", h.HandleOpen)
		r.Get("/", h.HandleCurrent)
		r.Delete("/", h.HandleClose)
		r.Post("/next", h.HandleNext)
		r.Post("/previous", h.HandlePrevious)
		r.Post("/steps/{step}", h.HandleJump)
		r.Post("/gesture", h.HandleGesture)
		r.Post("/confirm", h.HandleConfirm)
		r.Delete("/confirm", h.HandleCancelConfirm)
		r.Post("/submit", h.HandleSubmit)
	})
}

// HandleOpen opens a review over a freshly fetched record.
func (h *Handler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sess, err := httputil.RequireSession(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[OpenRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	kind, err := ParseKind(req.Kind)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	code, err := domain.ParseCodeID(req.Code)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	view, err := h.service.Open(ctx, sess, kind, code)
	if err != nil {
		h.logger.ErrorContext(ctx, "open review failed", "error", err, "request_id", requestID, "code_id", code)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(sess domain.Session) (View, error) {
		return h.service.Current(sess)
	})
}

func (h *Handler) HandleClose(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, err := httputil.RequireSession(ctx, h.logger, requestcontext.RequestID(ctx))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.service.Close(sess)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleNext(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.Next)
}

func (h *Handler) HandlePrevious(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.Previous)
}

func (h *Handler) HandleJump(w http.ResponseWriter, r *http.Request) {
	step, convErr := strconv.Atoi(chi.URLParam(r, "step"))
	if convErr != nil {
		httputil.WriteError(w, dErrors.NewField("step", "step must be an integer"))
		return
	}
	h.respond(w, r, func(sess domain.Session) (View, error) {
		return h.service.JumpTo(sess, step)
	})
}

func (h *Handler) HandleGesture(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[GestureRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	h.respond(w, r, func(sess domain.Session) (View, error) {
		return h.service.Gesture(sess, *req)
	})
}

func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[ConfirmRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	h.respond(w, r, func(sess domain.Session) (View, error) {
		return h.service.Confirm(sess, wizard.Action(req.Action), req.Remarks)
	})
}

func (h *Handler) HandleCancelConfirm(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.CancelConfirm)
}

// HandleSubmit executes the confirmed decision.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sess, err := httputil.RequireSession(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req := &SubmitRequest{}
	if r.ContentLength != 0 {
		var ok bool
		if req, ok = httputil.DecodeJSON[SubmitRequest](w, r, h.logger, ctx, requestID); !ok {
			return
		}
	}

	outcome, err := h.service.Submit(ctx, sess, req.Remarks)
	if err != nil {
		h.logger.ErrorContext(ctx, "submit review failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "review decision submitted",
		"request_id", requestID,
		"admin_id", sess.AdminID,
		"code_id", outcome.Code,
		"action", outcome.Decision.Action,
	)
	httputil.WriteJSON(w, http.StatusOK, outcome)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, fn func(domain.Session) (View, error)) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sess, err := httputil.RequireSession(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	view, err := fn(sess)
	if err != nil {
		h.logger.WarnContext(ctx, "review step failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}
