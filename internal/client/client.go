// Package client provides a typed client for the content hub procedures
// plus the server-rendered article view built on top of it. Calls run
// through a circuit breaker so a struggling API server degrades the view
// to fallback content instead of hanging page loads.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// Article mirrors the wire shape of the getArticles procedure.
type Article struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Author       string    `json:"author"`
	PublishTime  time.Time `json:"publish_time"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// Client calls content hub procedures over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// New creates a client for the API at baseURL, e.g. "http://localhost:2022".
func New(baseURL string, logger *slog.Logger) *Client {
	settings := gobreaker.Settings{
		Name:        "content-hub-api",
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

// GetArticles fetches all articles, newest publish time first.
// Returns gobreaker.ErrOpenState without touching the network while the
// breaker is open.
func (c *Client) GetArticles(ctx context.Context) ([]Article, error) {
	out, err := c.breaker.Execute(func() (interface{}, error) {
		var articles []Article
		if err := c.call(ctx, "getArticles", struct{}{}, &articles); err != nil {
			return nil, err
		}
		return articles, nil
	})
	if err != nil {
		return nil, err
	}
	return out.([]Article), nil
}

// Healthcheck probes the API. Used by the view process at startup.
func (c *Client) Healthcheck(ctx context.Context) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		var status struct {
			Status string `json:"status"`
		}
		if err := c.call(ctx, "healthcheck", struct{}{}, &status); err != nil {
			return nil, err
		}
		if status.Status != "ok" {
			return nil, fmt.Errorf("unexpected status %q", status.Status)
		}
		return nil, nil
	})
	return err
}

// call posts input to /rpc/<procedure> and decodes the response into out.
func (c *Client) call(ctx context.Context, procedure string, input, out any) error {
	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("encode %s input: %w", procedure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/rpc/"+procedure, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", procedure, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", procedure, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("call %s: unexpected status %d", procedure, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", procedure, err)
	}
	return nil
}
