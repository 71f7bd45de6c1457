package client

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// View serves the article page from an in-memory snapshot that is
// refreshed from the API in the background. A failed refresh falls back
// to the demo dataset rather than an error page.
type View struct {
	client   *Client
	renderer *Renderer
	logger   *slog.Logger

	mu   sync.RWMutex
	page Page
}

// NewView creates a view backed by c. The initial snapshot is the
// fallback dataset until the first refresh succeeds.
func NewView(c *Client, logger *slog.Logger) (*View, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	return &View{
		client:   c,
		renderer: renderer,
		logger:   logger,
		page: Page{
			Articles:    FallbackArticles(),
			Fallback:    true,
			RefreshedAt: time.Now().UTC(),
		},
	}, nil
}

// Refresh fetches the current articles and swaps the snapshot. On
// failure the snapshot becomes the fallback dataset and the error is
// returned after being logged.
func (v *View) Refresh(ctx context.Context) error {
	articles, err := v.client.GetArticles(ctx)

	page := Page{RefreshedAt: time.Now().UTC()}
	if err != nil {
		v.logger.Error("failed to load articles, serving fallback data",
			slog.String("error", err.Error()))
		page.Articles = FallbackArticles()
		page.Fallback = true
	} else {
		page.Articles = articles
	}

	v.mu.Lock()
	v.page = page
	v.mu.Unlock()
	return err
}

func (v *View) snapshot() Page {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.page
}

// Fallback reports whether the current snapshot is the demo dataset.
func (v *View) Fallback() bool {
	return v.snapshot().Fallback
}

// Register mounts the page and refresh routes on mux.
func (v *View) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", v.handleIndex)
	mux.HandleFunc("POST /refresh", v.handleRefresh)
}

func (v *View) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := v.renderer.Render(w, v.snapshot()); err != nil {
		v.logger.Error("render failed", slog.Any("error", err))
	}
}

// handleRefresh re-fetches synchronously, then redirects back to the
// page. The refresh button posts here.
func (v *View) handleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()
	_ = v.Refresh(ctx)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
