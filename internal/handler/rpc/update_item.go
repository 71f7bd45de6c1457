package rpc

import (
	"encoding/json"
	"errors"
	"net/http"

	"content-hub/internal/domain/entity"
	"content-hub/internal/handler/rpc/respond"
	itemUC "content-hub/internal/usecase/item"
)

type UpdateItemHandler struct{ Svc itemUC.Service }

// ServeHTTP applies a partial update. Absent fields stay unchanged;
// category additionally distinguishes explicit null, which clears it.
func (h UpdateItemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          int64                `json:"id"`
		Title       *string              `json:"title"`
		Description *string              `json:"description"`
		ImageURL    *string              `json:"imageUrl"`
		Category    entity.Patch[string] `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	it, err := h.Svc.Update(r.Context(), itemUC.UpdateInput{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var ve *entity.ValidationError
		switch {
		case errors.Is(err, itemUC.ErrInvalidItemID), errors.As(err, &ve):
			code = http.StatusBadRequest
		case errors.Is(err, itemUC.ErrItemNotFound):
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, itemDTO(it))
}
