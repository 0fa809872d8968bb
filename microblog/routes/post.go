package routes

import (
	"encoding/json"
	"net/http"

	"microblog/microblog/config"
	"microblog/microblog/controllers"
	"microblog/microblog/middlewares"
	httputils "microblog/microblog/utils/http"
	"microblog/microblog/utils/types"

	"github.com/go-chi/chi/v5"
)

func PostRoutes(ctrl *controllers.PostController, cfg config.Config, seen middlewares.SeenRecorder) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg, seen))

	r.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
		me, ok := authedUserID(r)
		if !ok {
			return nil, http.StatusUnauthorized, nil
		}
		var req types.CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		post, err := ctrl.CreatePost(r.Context(), me, req.Body)
		if err != nil {
			return nil, statusForErr(err), err
		}
		return post, http.StatusCreated, nil
	}))

	r.Get("/search", handleJSON(func(r *http.Request) (any, int, error) {
		q := r.URL.Query().Get("q")
		if q == "" {
			return nil, http.StatusBadRequest, errMissingQuery
		}
		page, perPage := httputils.ParsePagination(r)
		list, err := ctrl.Search(r.Context(), q, page, perPage)
		if err != nil {
			return nil, statusForErr(err), err
		}
		return types.PostPage{Posts: list, Page: page, PerPage: perPage}, http.StatusOK, nil
	}))

	return r
}
