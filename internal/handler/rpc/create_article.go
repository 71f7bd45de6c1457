package rpc

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"content-hub/internal/domain/entity"
	"content-hub/internal/handler/rpc/respond"
	artUC "content-hub/internal/usecase/article"
)

type CreateArticleHandler struct{ Svc artUC.Service }

// ServeHTTP creates a new article from the JSON body.
func (h CreateArticleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Content     string `json:"content"`
		Author      string `json:"author"`
		PublishTime string `json:"publish_time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	var pt time.Time
	if req.PublishTime != "" {
		var err error
		pt, err = time.Parse(time.RFC3339, req.PublishTime)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("publish_time must be in RFC3339 format"))
			return
		}
	}

	article, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:       req.Title,
		Content:     req.Content,
		Author:      req.Author,
		PublishTime: pt,
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

	respond.JSON(w, http.StatusCreated, articleDTO(article))
}
