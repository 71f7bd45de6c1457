package rpc

import (
	"net/http"
	"time"

	"content-hub/internal/handler/rpc/respond"
)

// HealthcheckHandler answers liveness probes with the current server time.
type HealthcheckHandler struct{}

func (HealthcheckHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
