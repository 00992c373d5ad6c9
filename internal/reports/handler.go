package reports

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"soloparent/internal/exportquota"
	"soloparent/pkg/domain"
	"soloparent/pkg/platform/httputil"
	"soloparent/pkg/requestcontext"
)

type generator interface {
	Generate(ctx context.Context, sess domain.Session, req Request) (*Report, error)
}

type Handler struct {
	service generator
	logger  *slog.Logger
}

func NewHandler(service generator, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/reports", h.HandleGenerate)
}

// HandleGenerate renders a report and streams it back as an attachment.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sess, err := httputil.RequireSession(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[Request](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	report, err := h.service.Generate(ctx, sess, *req)
	if err != nil {
		h.logger.WarnContext(ctx, "report generation failed", "error", err, "request_id", requestID,
			"section", req.Section, "format", req.Format)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "report exported",
		"request_id", requestID,
		"admin_id", sess.AdminID,
		"filename", report.Filename,
		"bytes", len(report.Body),
	)
	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", contentDisposition(report.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(report.Body)))
	if report.Quota != nil {
		w.Header().Set("X-Export-Remaining-Excel", strconv.Itoa(report.Quota.Remaining(exportquota.FormatExcel)))
		w.Header().Set("X-Export-Remaining-Pdf", strconv.Itoa(report.Quota.Remaining(exportquota.FormatPDF)))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(report.Body); err != nil {
		h.logger.WarnContext(ctx, "failed to stream report", "error", err, "request_id", requestID)
	}
}

// contentDisposition quotes ASCII filenames and RFC 5987-encodes the rest.
func contentDisposition(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "attachment"
}
