package rpc

import (
	"encoding/json"
	"errors"
	"net/http"

	"content-hub/internal/handler/rpc/respond"
	itemUC "content-hub/internal/usecase/item"
)

type GetItemHandler struct{ Svc itemUC.Service }

// ServeHTTP fetches a single item by the ID in the JSON body.
func (h GetItemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	it, err := h.Svc.Get(r.Context(), req.ID)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, itemUC.ErrInvalidItemID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, itemUC.ErrItemNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, itemDTO(it))
}
