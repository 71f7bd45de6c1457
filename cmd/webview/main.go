// Command webview serves the server-rendered article page backed by the
// content hub API. It keeps an in-memory snapshot of the articles,
// refreshed on a schedule and on demand, and falls back to demo content
// when the API is unreachable.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"content-hub/internal/client"
	"content-hub/internal/observability/logging"
	"content-hub/pkg/config"
)

func main() {
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("webview exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	port := config.GetEnvInt("WEBVIEW_PORT", 3000)
	apiURL := config.GetEnvString("API_URL", "http://localhost:2022")
	refreshSpec := config.GetEnvString("WEBVIEW_REFRESH_SPEC", "@every 5m")

	view, err := client.NewView(client.New(apiURL, logger), logger)
	if err != nil {
		return fmt.Errorf("init view: %w", err)
	}

	// Populate the snapshot before serving; a failure just means the
	// fallback dataset is shown until the next scheduled refresh.
	initCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	_ = view.Refresh(initCtx)
	cancel()

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(refreshSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = view.Refresh(ctx)
	}); err != nil {
		return fmt.Errorf("schedule refresh %q: %w", refreshSpec, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	mux := http.NewServeMux()
	view.Register(mux)

	addr := fmt.Sprintf(":%d", port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("webview starting",
			slog.String("addr", addr),
			slog.String("api_url", apiURL),
			slog.String("refresh", refreshSpec))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down webview...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("webview stopped")
	return nil
}
