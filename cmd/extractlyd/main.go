// extractlyd is the API daemon: gRPC for project and session management,
// HTTP for document upload, status polling, export, and the inbound-email
// webhook.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	extractlypb "github.com/extractly-io/extractly/gen/proto/extractly/v1"

	"github.com/extractly-io/extractly/internal/common"
	"github.com/extractly-io/extractly/internal/export"
	"github.com/extractly-io/extractly/internal/httpapi"
	"github.com/extractly-io/extractly/internal/inbox"
	"github.com/extractly-io/extractly/internal/ingest"
	"github.com/extractly-io/extractly/internal/observability/logging"
	"github.com/extractly-io/extractly/internal/observability/metrics"
	"github.com/extractly-io/extractly/internal/queue/nats"
	"github.com/extractly-io/extractly/internal/repository"
	"github.com/extractly-io/extractly/internal/server"
)

func main() {
	log := logging.NewJSONLogger("extractlyd", os.Getenv("LOG_LEVEL"))

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, cfg.Database, log)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, log)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, log); err != nil {
		log.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	if err := entc.Schema.Create(ctx); err != nil {
		log.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	queue, err := nats.New(cfg.Queue.URL, cfg.Queue.Subject, log)
	if err != nil {
		log.Error("queue connection failed", "error", err)
		os.Exit(1)
	}
	defer queue.Close()

	projects := repository.NewProjectRepository(entc, log)
	sessions := repository.NewSessionRepository(entc, log)
	documents := repository.NewDocumentRepository(entc, log)
	records := repository.NewRecordRepository(entc, log)
	rules := repository.NewRuleRepository(entc, log)

	ingestor := ingest.NewService(sessions, documents, log)
	exporter := export.NewService(sessions, projects, records, log)

	// without a provider the webhook route answers 503 instead of intaking
	var provider inbox.Provider
	var intake httpapi.EmailIntake
	if cfg.Inbox.BaseURL != "" {
		provider = inbox.NewClient(cfg.Inbox, log)
		intake = inbox.NewIntakeService(provider, projects, sessions, ingestor, queue, log)
	}

	httpMetrics := metrics.NewHTTPServerMetrics("extractlyd")
	api := httpapi.NewServer(sessions, ingestor, exporter, intake, cfg.Inbox.WebhookSecret,
		func() error {
			hctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()
			return pool.Ping(hctx)
		},
		httpMetrics, log)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)
	extractlypb.RegisterProjectsServiceServer(grpcServer, server.NewProjectsServer(projects, rules, provider, log))
	extractlypb.RegisterSessionsServiceServer(grpcServer, server.NewSessionsServer(sessions, projects, records, queue, log))

	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
		if err != nil {
			return err
		}
		log.Info("grpc serving", "addr", cfg.Server.GRPCAddr)
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		log.Info("http serving", "addr", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		grpcServer.GracefulStop()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("stopped")
}
