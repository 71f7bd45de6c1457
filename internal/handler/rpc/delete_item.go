package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"content-hub/internal/handler/rpc/respond"
	itemUC "content-hub/internal/usecase/item"
)

type DeleteItemHandler struct{ Svc itemUC.Service }

// ServeHTTP hard-deletes an item by the ID in the JSON body.
func (h DeleteItemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	if err := h.Svc.Delete(r.Context(), req.ID); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, itemUC.ErrInvalidItemID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, itemUC.ErrItemNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Item with ID %d has been deleted successfully", req.ID),
	})
}
