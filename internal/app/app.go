package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/linglual-backend/internal/adapter/postgres"
	"github.com/heartmarshall/linglual-backend/internal/adapter/postgres/record"
	"github.com/heartmarshall/linglual-backend/internal/adapter/postgres/similar"
	"github.com/heartmarshall/linglual-backend/internal/adapter/postgres/vocabulary"
	"github.com/heartmarshall/linglual-backend/internal/adapter/provider/claude"
	"github.com/heartmarshall/linglual-backend/internal/adapter/provider/openai"
	"github.com/heartmarshall/linglual-backend/internal/adapter/provider/tavily"
	"github.com/heartmarshall/linglual-backend/internal/config"
	"github.com/heartmarshall/linglual-backend/internal/observability"
	"github.com/heartmarshall/linglual-backend/internal/provider"
	similarsvc "github.com/heartmarshall/linglual-backend/internal/service/similar"
	vocabularysvc "github.com/heartmarshall/linglual-backend/internal/service/vocabulary"
	"github.com/heartmarshall/linglual-backend/internal/service/writing"
	"github.com/heartmarshall/linglual-backend/internal/transport/rest"
)

// completer is the language model client shared by all services.
type completer interface {
	Complete(ctx context.Context, req provider.CompletionRequest) (string, error)
	String() string
}

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations when enabled, wires the services and
// serves the HTTP API until ctx is cancelled or SIGINT/SIGTERM arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.Provider),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if !cfg.Database.SkipMigrate {
		if err := migrate(ctx, logger, pool); err != nil {
			return err
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	observability.MustRegister(registry)

	handler, llm, err := newHandler(ctx, cfg, logger, pool, registry)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening",
			slog.String("addr", srv.Addr),
			slog.String("llm", llm.String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

func migrate(ctx context.Context, logger *slog.Logger, pool *pgxpool.Pool) error {
	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck

	results, err := m.Up(ctx)
	if err != nil {
		return err
	}
	for _, r := range results {
		logger.Info("migration applied",
			slog.String("source", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

// newHandler wires repositories, providers and services into the HTTP API.
func newHandler(ctx context.Context, cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, gatherer prometheus.Gatherer) (http.Handler, completer, error) {
	llm, err := newCompleter(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, nil, err
	}
	search := tavily.New(cfg.Search, logger)

	records := record.New(pool)
	expressions := similar.New(pool)
	words := vocabulary.New(pool)
	tx := postgres.NewTxManager(pool)

	writingSvc := writing.NewService(logger, records, expressions, llm, tx, cfg.Writing)
	vocabularySvc := vocabularysvc.NewService(logger, words, llm)
	similarSvc := similarsvc.NewService(logger, records, expressions, search, llm)

	handler := rest.NewRouter(logger, cfg.CORS, gatherer, rest.Handlers{
		Health:     rest.NewHealthHandler(Version, map[string]rest.Pinger{"database": pool}),
		Records:    rest.NewRecordHandler(writingSvc, logger),
		Vocabulary: rest.NewVocabularyHandler(vocabularySvc, logger),
		Similar:    rest.NewSimilarHandler(similarSvc, logger),
	})
	return handler, llm, nil
}

// newCompleter builds the language model client named by cfg.Provider.
func newCompleter(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (completer, error) {
	switch cfg.Provider {
	case config.ProviderClaude:
		return claude.New(cfg, logger), nil
	case config.ProviderOpenAI:
		return openai.New(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
