package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jortega-dev/tienda-admin/internal/dal/postgres"
	"github.com/jortega-dev/tienda-admin/internal/dal/rabbitmq"
	outboxrepo "github.com/jortega-dev/tienda-admin/internal/dal/repositories/outbox/postgres"
	"github.com/jortega-dev/tienda-admin/internal/otel"
	"github.com/jortega-dev/tienda-admin/internal/service/services/storesvc"
	httptransport "github.com/jortega-dev/tienda-admin/internal/transport/http"
	"github.com/jortega-dev/tienda-admin/internal/transport/proxy"
	"github.com/jortega-dev/tienda-admin/internal/worker/outbox"
	"github.com/spf13/viper"
)

// server is the lifecycle every transport exposes.
type server interface {
	Run() error
	Shutdown(ctx context.Context) error
}

// App represents a running server surface: the dev record store or the
// dev proxy, plus the collaborators it owns.
type App struct {
	name           string
	transport      server
	postgresClient *postgres.Client
	rabbitClient   *rabbitmq.Client
	outboxWorker   *outbox.Worker
	otelController *otel.OtelController
}

// MustNewStoreApp wires the dev record store: Postgres, the store
// service, the HTTP transport and, when enabled, the audit outbox worker.
func MustNewStoreApp() *App {
	a := &App{name: "store"}

	if viper.GetBool("tracing.enabled") {
		a.otelController = otel.MustInitOtel("tienda-store")
	}

	a.postgresClient = postgres.MustNewClient()

	var svc *storesvc.StoreService
	if viper.GetBool("rabbitmq.audit.enabled") {
		svc = storesvc.MustNewStoreService(
			storesvc.WithPostgresClient(a.postgresClient),
			storesvc.WithAudit(),
		)
		a.rabbitClient = rabbitmq.MustNewClient()
		a.outboxWorker = outbox.NewWorker(
			outboxrepo.NewPostgresOutboxRepository(a.postgresClient.Pool()),
			a.rabbitClient,
		)
	} else {
		svc = storesvc.MustNewStoreService(
			storesvc.WithPostgresClient(a.postgresClient),
		)
	}

	transport := httptransport.NewHTTPTransport(svc)
	transport.RegisterRoutes()
	a.transport = transport

	return a
}

// MustNewProxyApp wires the dev proxy.
func MustNewProxyApp() *App {
	a := &App{name: "proxy"}

	if viper.GetBool("tracing.enabled") {
		a.otelController = otel.MustInitOtel("tienda-proxy")
	}

	a.transport = proxy.MustNewProxyTransport()

	return a
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()

	if a.outboxWorker != nil {
		go a.outboxWorker.Start(workerCtx)
	}

	go func() {
		slog.Info("Starting HTTP server", "app", a.name)
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	cancelWorker()

	if a.rabbitClient != nil {
		if err := a.rabbitClient.Close(); err != nil {
			slog.Error("RabbitMQ connection close error", "error", err)
		}
	}

	if a.postgresClient != nil {
		a.postgresClient.Close()
		slog.Info("Database connection closed gracefully")
	}

	if a.otelController != nil {
		if err := a.otelController.Shutdown(); err != nil {
			slog.Error("Trace provider shutdown error", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
}
