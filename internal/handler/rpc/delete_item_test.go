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

func TestDeleteItemHandler_Success(t *testing.T) {
	stub := newItemStub()
	seedItem(stub, "Lamp", "warm light", nil)
	handler := rpc.DeleteItemHandler{Svc: itemUC.Service{Repo: stub}}

	req := httptest.NewRequest(http.MethodPost, "/rpc/deleteItem", strings.NewReader(`{"id":1}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d: %s", rr.Code, rr.Body.String())
	}

	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.Success {
		t.Errorf("success = false")
	}
	if want := "Item with ID 1 has been deleted successfully"; out.Message != want {
		t.Errorf("message = %q, want %q", out.Message, want)
	}
	if len(stub.data) != 0 {
		t.Errorf("item still present")
	}
}

func TestDeleteItemHandler_Errors(t *testing.T) {
	handler := rpc.DeleteItemHandler{Svc: itemUC.Service{Repo: newItemStub()}}

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"not found", `{"id":9}`, http.StatusNotFound},
		{"invalid id", `{"id":0}`, http.StatusBadRequest},
		{"malformed json", `{"id"`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/rpc/deleteItem", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			if rr.Code != tt.wantCode {
				t.Fatalf("status code = %d, want %d", rr.Code, tt.wantCode)
			}
		})
	}
}
