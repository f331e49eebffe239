// extractworker consumes queued sessions and runs the extraction pipeline.
// Any number of workers can share the queue group; each session is processed
// by exactly one of them.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/google/uuid"

	"github.com/extractly-io/extractly/internal/common"
	"github.com/extractly-io/extractly/internal/llm/gemini"
	"github.com/extractly-io/extractly/internal/observability/logging"
	"github.com/extractly-io/extractly/internal/observability/metrics"
	"github.com/extractly-io/extractly/internal/pipeline"
	"github.com/extractly-io/extractly/internal/queue/nats"
	"github.com/extractly-io/extractly/internal/repository"
)

const serviceName = "extractworker"

func main() {
	log := logging.NewJSONLogger(serviceName, os.Getenv("LOG_LEVEL"))

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

	queue, err := nats.New(cfg.Queue.URL, cfg.Queue.Subject, log)
	if err != nil {
		log.Error("queue connection failed", "error", err)
		os.Exit(1)
	}
	defer queue.Close()

	sessions := repository.NewSessionRepository(entc, log)
	projects := repository.NewProjectRepository(entc, log)
	documents := repository.NewDocumentRepository(entc, log)
	records := repository.NewRecordRepository(entc, log)
	rules := repository.NewRuleRepository(entc, log)

	extractor := gemini.NewClient(gemini.Config{
		BaseURL:         cfg.LLM.BaseURL,
		Model:           cfg.LLM.Model,
		APIKey:          cfg.LLM.APIKey,
		Temperature:     cfg.LLM.Temperature,
		Timeout:         cfg.LLM.Timeout,
		MaxRetries:      cfg.LLM.MaxRetries,
		RatePerSec:      cfg.LLM.RatePerSec,
		LenientOptional: true,
	}, log)

	processor := pipeline.NewProcessor(sessions, projects, documents, records, rules, extractor, cfg.LLM.Model, log)
	workerMetrics := metrics.NewWorkerMetrics(serviceName)

	metricsServer := &http.Server{
		Addr:              getMetricsAddr(),
		Handler:           workerMetrics.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return queue.SubscribeSessions(gctx, func(hctx context.Context, sessionID uuid.UUID) error {
			start := time.Now()
			workerMetrics.StartSession()
			written, err := processor.ProcessSession(hctx, sessionID)
			status := "completed"
			if err != nil {
				status = "error"
			}
			workerMetrics.FinishSession(serviceName, status, time.Since(start))
			workerMetrics.ObserveRecords(serviceName, written)
			return err
		})
	})
	g.Go(func() error {
		log.Info("metrics serving", "addr", metricsServer.Addr)
		if err := metricsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return metricsServer.Shutdown(sctx)
	})

	log.Info("worker started", "subject", cfg.Queue.Subject)
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("worker exited", "error", err)
		os.Exit(1)
	}
	log.Info("stopped")
}

func getMetricsAddr() string {
	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		return addr
	}
	return ":9091"
}
