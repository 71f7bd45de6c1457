package rpc

import (
	"encoding/json"
	"errors"
	"net/http"

	"content-hub/internal/domain/entity"
	"content-hub/internal/handler/rpc/respond"
	itemUC "content-hub/internal/usecase/item"
)

type CreateItemHandler struct{ Svc itemUC.Service }

// ServeHTTP creates a new item from the JSON body.
// The category key must be present: a string assigns a category, an
// explicit null leaves the item uncategorized. Omitting the key is
// rejected, matching the wire contract of the procedure.
func (h CreateItemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string               `json:"title"`
		Description string               `json:"description"`
		ImageURL    string               `json:"imageUrl"`
		Category    entity.Patch[string] `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}
	if !req.Category.Present {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("category is required (pass null for no category)"))
		return
	}

	it, err := h.Svc.Create(r.Context(), itemUC.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category.Ptr(),
	})
	if err != nil {
		code := http.StatusInternalServerError
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, itemDTO(it))
}
