package rpc

import (
	"log/slog"
	"net/http"

	"content-hub/internal/common/pagination"
	artUC "content-hub/internal/usecase/article"
	itemUC "content-hub/internal/usecase/item"
)

// Register mounts all procedure handlers on the given mux.
// Procedures carry their arguments in the request body, so every route is
// POST; healthcheck also answers GET for load balancer probes.
func Register(mux *http.ServeMux, itemSvc itemUC.Service, articleSvc artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET  /rpc/healthcheck", HealthcheckHandler{})
	mux.Handle("POST /rpc/healthcheck", HealthcheckHandler{})

	mux.Handle("POST /rpc/createItem", CreateItemHandler{Svc: itemSvc})
	mux.Handle("POST /rpc/getItems", GetItemsHandler{
		Svc:           itemSvc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("POST /rpc/getItem", GetItemHandler{Svc: itemSvc})
	mux.Handle("POST /rpc/updateItem", UpdateItemHandler{Svc: itemSvc})
	mux.Handle("POST /rpc/deleteItem", DeleteItemHandler{Svc: itemSvc})

	mux.Handle("POST /rpc/createArticle", CreateArticleHandler{Svc: articleSvc})
	mux.Handle("POST /rpc/getArticles", GetArticlesHandler{Svc: articleSvc})
}
