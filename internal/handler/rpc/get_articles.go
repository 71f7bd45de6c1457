package rpc

import (
	"net/http"

	"content-hub/internal/handler/rpc/respond"
	artUC "content-hub/internal/usecase/article"
)

type GetArticlesHandler struct{ Svc artUC.Service }

// ServeHTTP returns all articles, newest publish time first.
func (h GetArticlesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]ArticleDTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, articleDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}
