package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"content-hub/internal/common/pagination"
	"content-hub/internal/handler/httpx"
	"content-hub/internal/handler/httpx/middleware"
	"content-hub/internal/handler/httpx/requestid"
	"content-hub/internal/handler/rpc"
	pgRepo "content-hub/internal/infra/adapter/persistence/postgres"
	"content-hub/internal/infra/db"
	"content-hub/internal/observability/logging"
	artUC "content-hub/internal/usecase/article"
	itemUC "content-hub/internal/usecase/item"
	"content-hub/pkg/config"
)

const maxRequestBody = 1 << 20 // 1 MiB

func main() {
	// Local development convenience; missing .env is not an error.
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	serverCfg, err := config.LoadServerConfig()
	if err != nil {
		return fmt.Errorf("load server config: %w", err)
	}

	database, err := initDatabase(logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler := setupServer(logger, database, serverCfg)
	return runServer(logger, handler, serverCfg)
}

// initDatabase opens the connection pool and applies migrations.
func initDatabase(logger *slog.Logger) (*sql.DB, error) {
	database, err := db.Open()
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.MigrateUp(database); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	logger.Info("database ready")
	return database, nil
}

// setupServer wires repositories, use cases, procedure routes and the
// middleware chain into one handler.
func setupServer(logger *slog.Logger, database *sql.DB, serverCfg config.ServerConfig) http.Handler {
	itemSvc := itemUC.Service{Repo: pgRepo.NewItemRepo(database)}
	articleSvc := artUC.Service{Repo: pgRepo.NewArticleRepo(database)}
	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()
	rpc.Register(mux, itemSvc, articleSvc, paginationCfg, logger)
	mux.Handle("GET /health", &httpx.HealthHandler{DB: database, Version: getVersion()})
	mux.Handle("GET /metrics", httpx.MetricsHandler())

	chain := []func(http.Handler) http.Handler{
		middleware.CORS(middleware.DefaultCORSConfig(serverCfg.ClientOrigin)),
		requestid.Middleware,
	}
	if serverCfg.RateLimit.Enabled {
		// After request ID assignment so 429s are traceable, before the
		// handlers so rejected requests stay cheap.
		rl := httpx.NewIPRateLimiter(serverCfg.RateLimit.RPS, serverCfg.RateLimit.Burst)
		chain = append(chain, rl.Limit)
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}
	chain = append(chain,
		httpx.Recover(logger),
		httpx.Logging(logger),
		httpx.Metrics,
		httpx.LimitRequestBody(maxRequestBody),
	)

	return httpx.Chain(mux, chain...)
}

func getVersion() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}

// runServer serves until SIGINT/SIGTERM, then drains with a timeout.
func runServer(logger *slog.Logger, handler http.Handler, serverCfg config.ServerConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%d", serverCfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris guard
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("client_origin", serverCfg.ClientOrigin),
			slog.String("version", getVersion()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
