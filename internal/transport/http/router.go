// Package httptransport assembles the console's HTTP surface: shared middleware, the
// unauthenticated probes, and the session-guarded /console API.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"soloparent/pkg/platform/middleware/auth"
	"soloparent/pkg/platform/middleware/request"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// Registrar is implemented by every feature handler.
type Registrar interface {
	Register(r chi.Router)
}

type Config struct {
	Logger         *slog.Logger
	Sessions       auth.SessionValidator
	RequestMetrics *request.Metrics
	// Public routes are mounted at the root without a session.
	Public []Registrar
	// Console routes are mounted under /console behind the session middleware.
	Console []Registrar
}

// NewRouter wires middleware and every handler.
func NewRouter(cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(request.Recovery(cfg.Logger))
	r.Use(request.RequestID)
	r.Use(request.ClientIP)
	r.Use(request.Logger(cfg.Logger))
	r.Use(request.Latency(cfg.RequestMetrics))
	r.Use(request.BodyLimit(maxBodyBytes))
	r.Use(request.ContentTypeJSON)

	for _, h := range cfg.Public {
		h.Register(r)
	}
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/console", func(r chi.Router) {
		r.Use(auth.RequireSession(cfg.Sessions, cfg.Logger))
		for _, h := range cfg.Console {
			h.Register(r)
		}
	})

	return r
}
