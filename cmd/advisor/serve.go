package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpadapter "github.com/couchcryptid/symptom-advisor/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/symptom-advisor/internal/adapter/kafka"
	"github.com/couchcryptid/symptom-advisor/internal/adapter/source"
	"github.com/couchcryptid/symptom-advisor/internal/advisor"
	"github.com/couchcryptid/symptom-advisor/internal/config"
	"github.com/couchcryptid/symptom-advisor/internal/domain"
	"github.com/couchcryptid/symptom-advisor/internal/observability"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return err
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	opts := []advisor.Option{advisor.WithReplyCache(cfg.ReplyCacheSize)}
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		opts = append(opts, advisor.WithPublisher(writer))
		logger.Info("consultation events enabled", "topic", cfg.KafkaConsultationTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("consultation events disabled")
	}

	svc := advisor.New(logger, metrics, opts...)
	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, cfg.CORSAllowedOrigins, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Load the knowledge base; /readyz reports 503 until this returns.
	go func() {
		_ = loadKnowledgeBase(ctx, cfg, svc, logger)
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
	return nil
}

// loadKnowledgeBase loads from DATASET_SOURCE within DATASET_TIMEOUT. An
// unusable source degrades to the empty knowledge base like a failed fetch.
func loadKnowledgeBase(ctx context.Context, cfg *config.Config, svc *advisor.Advisor, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.DatasetTimeout)
	defer cancel()

	logger.Info("loading knowledge base", "source", redactSource(cfg.DatasetSource))

	var fetcher advisor.TableFetcher
	src, err := source.New(ctx, cfg.DatasetSource, cfg.DatasetTimeout, logger)
	if err != nil {
		fetcher = unavailable{err: err}
	} else {
		defer src.Close()
		fetcher = src
	}
	return svc.Load(ctx, fetcher)
}

type unavailable struct{ err error }

func (u unavailable) Fetch(context.Context, domain.Table) (string, error) {
	return "", fmt.Errorf("dataset source unavailable: %w", u.err)
}
