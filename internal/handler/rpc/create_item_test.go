package rpc_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"content-hub/internal/handler/rpc"
	itemUC "content-hub/internal/usecase/item"
)

func TestCreateItemHandler_Success(t *testing.T) {
	stub := newItemStub()
	handler := rpc.CreateItemHandler{Svc: itemUC.Service{Repo: stub}}

	body := `{
		"title": "Mechanical keyboard",
		"description": "Hot-swappable switches.",
		"imageUrl": "https://example.com/kb.jpg",
		"category": "Hardware"
	}`
	req := httptest.NewRequest(http.MethodPost, "/rpc/createItem", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	var out rpc.ItemDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.ID != 1 {
		t.Errorf("ID = %d, want 1", out.ID)
	}
	if out.Category == nil || *out.Category != "Hardware" {
		t.Errorf("Category = %v, want Hardware", out.Category)
	}
	if !out.CreatedAt.Equal(out.UpdatedAt) {
		t.Errorf("created_at %v != updated_at %v on creation", out.CreatedAt, out.UpdatedAt)
	}
}

func TestCreateItemHandler_NullCategory(t *testing.T) {
	stub := newItemStub()
	handler := rpc.CreateItemHandler{Svc: itemUC.Service{Repo: stub}}

	body := `{"title":"T","description":"D","imageUrl":"https://example.com/i.png","category":null}`
	req := httptest.NewRequest(http.MethodPost, "/rpc/createItem", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}
	if stub.data[1].Category != nil {
		t.Errorf("Category = %v, want nil", *stub.data[1].Category)
	}
}

func TestCreateItemHandler_MissingCategoryKey(t *testing.T) {
	handler := rpc.CreateItemHandler{Svc: itemUC.Service{Repo: newItemStub()}}

	body := `{"title":"T","description":"D","imageUrl":"https://example.com/i.png"}`
	req := httptest.NewRequest(http.MethodPost, "/rpc/createItem", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestCreateItemHandler_Validation(t *testing.T) {
	handler := rpc.CreateItemHandler{Svc: itemUC.Service{Repo: newItemStub()}}

	tests := []struct {
		name string
		body string
	}{
		{"empty title", `{"title":"","description":"D","imageUrl":"https://example.com/i.png","category":null}`},
		{"bad url", `{"title":"T","description":"D","imageUrl":"nope","category":null}`},
		{"malformed json", `{"title":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/rpc/createItem", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestCreateItemHandler_StorageError(t *testing.T) {
	stub := newItemStub()
	stub.err = errForced
	handler := rpc.CreateItemHandler{Svc: itemUC.Service{Repo: stub}}

	body := `{"title":"T","description":"D","imageUrl":"https://example.com/i.png","category":null}`
	req := httptest.NewRequest(http.MethodPost, "/rpc/createItem", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(rr.Body.String(), "internal server error") {
		t.Fatalf("storage detail leaked: %s", rr.Body.String())
	}
}
