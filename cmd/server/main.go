// Command server runs the loanflow HTTP API.
//
// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages. Optional backends
// (PostgreSQL, Redis, Kafka, the credit bureau) are enabled by configuration;
// absent ones degrade to in-process equivalents or skipped pipeline stages.
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

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"loanflow/internal/audit"
	"loanflow/internal/creditbureau"
	"loanflow/internal/documents"
	"loanflow/internal/pipeline"
	"loanflow/internal/pipeline/adapters"
	"loanflow/internal/pipeline/handler"
	pipelinemetrics "loanflow/internal/pipeline/metrics"
	"loanflow/internal/pipeline/ports"
	memorystore "loanflow/internal/pipeline/store/memory"
	postgresstore "loanflow/internal/pipeline/store/postgres"
	"loanflow/internal/platform/config"
	"loanflow/internal/platform/httpserver"
	"loanflow/internal/platform/logger"
	platformredis "loanflow/internal/platform/redis"
	"loanflow/internal/platform/token"
	httpapi "loanflow/internal/transport/http"
	"loanflow/pkg/platform/middleware/auth"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, cleanup, err := buildRepository(ctx, cfg, log)
	if err != nil {
		fatal(log, "repository init failed", err)
	}
	defer cleanup()

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		fatal(log, "redis init failed", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	opts := []pipeline.Option{
		pipeline.WithLogger(log),
		pipeline.WithMetrics(pipelinemetrics.New()),
		pipeline.WithTracer(otel.Tracer("loanflow/pipeline")),
	}

	docService := documents.New(documents.DefaultConfig(), []string{string(pipeline.DocumentKindBankStatement)}, documents.WithLogger(log))
	opts = append(opts, pipeline.WithDocumentValidator(adapters.NewDocumentAdapter(docService)))

	if cfg.BureauURL != "" {
		bureauClient, err := creditbureau.NewClient(creditbureau.Config{
			BaseURL: cfg.BureauURL,
			Timeout: cfg.BureauTimeout,
		}, creditbureau.WithLogger(log))
		if err != nil {
			fatal(log, "bureau client init failed", err)
		}

		var scorer creditbureau.Scorer = bureauClient
		if redisClient != nil {
			scorer = creditbureau.NewScoreCache(scorer, redisClient.Client, cfg.ScoreCacheTTL, creditbureau.WithCacheLogger(log))
		}
		opts = append(opts, pipeline.WithCreditBureau(adapters.NewBureauAdapter(scorer)))
	} else {
		log.Warn("credit bureau not configured, credit check stage disabled")
	}

	auditor, auditCleanup, err := buildAuditor(ctx, cfg, log)
	if err != nil {
		fatal(log, "audit init failed", err)
	}
	defer auditCleanup()
	opts = append(opts, pipeline.WithAudit(auditor))

	service, err := pipeline.New(repo, opts...)
	if err != nil {
		fatal(log, "pipeline init failed", err)
	}

	var validator auth.TokenValidator
	if cfg.JWTSigningKey != "" {
		validator = token.NewValidator(cfg.JWTSigningKey)
	} else {
		log.Warn("JWT signing key not configured, API auth disabled")
	}

	h := handler.New(service, repo, log)
	router := httpapi.NewRouter(h, validator, log)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting loanflow", "addr", cfg.Addr)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		fatal(log, "server error", err)
	}
	log.Info("shutdown complete")
}

func buildRepository(ctx context.Context, cfg config.Config, log *slog.Logger) (pipeline.Repository, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Warn("database not configured, using in-memory repository")
		return memorystore.New(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	store := postgresstore.New(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return store, pool.Close, nil
}

func buildAuditor(ctx context.Context, cfg config.Config, log *slog.Logger) (ports.AuditPort, func(), error) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Warn("kafka not configured, audit events stay in process")
		return audit.NewPublisher(audit.NewInMemoryStore()), func() {}, nil
	}

	publisher, err := audit.NewKafkaPublisher(ctx, cfg.KafkaBrokers, cfg.AuditTopic, audit.WithKafkaLogger(log))
	if err != nil {
		return nil, nil, err
	}
	return publisher, publisher.Close, nil
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}
