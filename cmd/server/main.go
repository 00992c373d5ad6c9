package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	applicanthandler "soloparent/internal/applicants/handler"
	applicantsvc "soloparent/internal/applicants/service"
	"soloparent/internal/audit"
	"soloparent/internal/backend"
	childrequesthandler "soloparent/internal/childrequests/handler"
	childrequestsvc "soloparent/internal/childrequests/service"
	"soloparent/internal/dashboard"
	"soloparent/internal/exportquota"
	notificationhandler "soloparent/internal/notifications/handler"
	notificationsvc "soloparent/internal/notifications/service"
	notificationstore "soloparent/internal/notifications/store"
	"soloparent/internal/platform/config"
	"soloparent/internal/platform/health"
	"soloparent/internal/platform/httpserver"
	"soloparent/internal/platform/logger"
	"soloparent/internal/platform/metrics"
	"soloparent/internal/platform/tracer"
	"soloparent/internal/reports"
	"soloparent/internal/review"
	"soloparent/internal/session"
	soloparenthandler "soloparent/internal/soloparents/handler"
	soloparentsvc "soloparent/internal/soloparents/service"
	httptransport "soloparent/internal/transport/http"
	"soloparent/pkg/platform/middleware/request"
)

const (
	auditCapacity   = 1000
	auditBuffer     = 256
	shutdownTimeout = 10 * time.Second
)

// main wires the console's dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Log)

	log.Info("initializing solo parent console",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"backend", cfg.BackendBaseURL,
	)

	m := metrics.New()
	client := backend.New(backend.Config{
		BaseURL:  cfg.BackendBaseURL,
		Tracer:   tracer.NewOTel(nil),
		Observer: m,
	})

	auditStore := audit.NewInMemoryStore(auditCapacity)
	auditPublisher := audit.NewPublisher(auditStore,
		audit.WithAsyncBuffer(auditBuffer),
		audit.WithPublisherLogger(log),
	)

	router := httptransport.NewRouter(httptransport.Config{
		Logger:         log,
		Sessions:       session.NewTokenService(cfg.SigningKey, cfg.SessionTTL),
		RequestMetrics: request.NewMetrics(),
		Public:         []httptransport.Registrar{newHealth(cfg, client)},
		Console:        buildConsole(cfg, log, client, m, auditPublisher, auditStore),
	})

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	auditPublisher.Close()

	log.Info("server stopped")
}

func newHealth(cfg config.Server, client *backend.Client) *health.Handler {
	h := health.New(cfg.Environment)
	h.RegisterCheck("backend", client.Ping)
	return h
}

func buildConsole(
	cfg config.Server,
	log *slog.Logger,
	client *backend.Client,
	m *metrics.Metrics,
	publisher *audit.Publisher,
	auditStore *audit.InMemoryStore,
) []httptransport.Registrar {
	applicants := applicantsvc.New(client,
		applicantsvc.WithAuditPublisher(publisher),
		applicantsvc.WithMetrics(m),
		applicantsvc.WithLogger(log),
	)
	soloParents := soloparentsvc.New(client,
		soloparentsvc.WithAuditPublisher(publisher),
		soloparentsvc.WithMetrics(m),
		soloparentsvc.WithLogger(log),
	)
	childRequests := childrequestsvc.New(client,
		childrequestsvc.WithAuditPublisher(publisher),
		childrequestsvc.WithMetrics(m),
		childrequestsvc.WithLogger(log),
	)
	notifications := notificationsvc.New(client, notificationstore.New(),
		notificationsvc.WithAuditPublisher(publisher),
		notificationsvc.WithMetrics(m),
		notificationsvc.WithLogger(log),
	)
	quota := exportquota.New(client, exportquota.NewStore(),
		exportquota.WithLogger(log),
	)
	aggregates := dashboard.New(soloParents)
	reportService := reports.New(quota, aggregates,
		reports.Letterhead{
			Organization: cfg.Report.OrganizationName,
			Department:   cfg.Report.DepartmentName,
			Title:        cfg.Report.Title,
		},
		reports.WithAuditPublisher(publisher),
		reports.WithMetrics(m),
		reports.WithLogger(log),
	)
	reviews := review.New(review.NewStore(), applicants, soloParents,
		review.WithMetrics(m),
		review.WithLogger(log),
	)

	return []httptransport.Registrar{
		applicanthandler.New(applicants, log),
		soloparenthandler.New(soloParents, log),
		childrequesthandler.New(childRequests, log),
		notificationhandler.New(notifications, log),
		exportquota.NewHandler(quota, log),
		dashboard.NewHandler(aggregates, log),
		reports.NewHandler(reportService, log),
		review.NewHandler(reviews, log),
		audit.NewHandler(auditStore, log),
	}
}
