package rpc

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"content-hub/internal/common/pagination"
	"content-hub/internal/handler/rpc/respond"
	"content-hub/internal/repository"
	itemUC "content-hub/internal/usecase/item"
)

type GetItemsHandler struct {
	Svc           itemUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ItemsResponse is one page of a filtered listing.
type ItemsResponse struct {
	Items   []ItemDTO `json:"items"`
	Total   int64     `json:"total"`
	HasMore bool      `json:"hasMore"`
}

// ServeHTTP lists items. All inputs are optional: an empty or absent body
// yields the first page with default limits.
func (h GetItemsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Limit    *int    `json:"limit"`
		Offset   *int    `json:"offset"`
		Category *string `json:"category"`
		Search   *string `json:"search"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	params, err := pagination.FromInput(req.Limit, req.Offset, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	filters := repository.ItemFilters{}
	if req.Category != nil && strings.TrimSpace(*req.Category) != "" {
		filters.Category = req.Category
	}
	if req.Search != nil && strings.TrimSpace(*req.Search) != "" {
		filters.Search = req.Search
	}

	res, err := h.Svc.List(r.Context(), filters, params)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Error("list items failed", slog.Any("error", err))
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := ItemsResponse{
		Items:   make([]ItemDTO, 0, len(res.Items)),
		Total:   res.Total,
		HasMore: res.HasMore,
	}
	for _, it := range res.Items {
		out.Items = append(out.Items, itemDTO(it))
	}
	respond.JSON(w, http.StatusOK, out)
}
