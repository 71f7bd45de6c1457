package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"content-hub/internal/handler/httpx/requestid"
)

func TestMiddleware_GeneratesID(t *testing.T) {
	var seen string
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatalf("no request ID in context")
	}
	if _, err := uuid.Parse(seen); err != nil {
		t.Errorf("generated ID not a UUID: %q", seen)
	}
	if got := rr.Header().Get(requestid.RequestIDHeader); got != seen {
		t.Errorf("header %q != context %q", got, seen)
	}
}

func TestMiddleware_PropagatesExistingID(t *testing.T) {
	var seen string
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestid.RequestIDHeader, "upstream-id")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "upstream-id" {
		t.Fatalf("request ID = %q, want upstream-id", seen)
	}
}

func TestFromContext_Empty(t *testing.T) {
	if got := requestid.FromContext(context.Background()); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}
