package routes

import (
	"net/http"

	"microblog/microblog/config"
	"microblog/microblog/controllers"
	"microblog/microblog/middlewares"
	httputils "microblog/microblog/utils/http"
	"microblog/microblog/utils/types"

	"github.com/go-chi/chi/v5"
)

func FeedRoutes(social *controllers.SocialController, cfg config.Config, seen middlewares.SeenRecorder) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg, seen))

	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		me, ok := authedUserID(r)
		if !ok {
			return nil, http.StatusUnauthorized, nil
		}
		page, perPage := httputils.ParsePagination(r)
		list, err := social.FollowedPosts(r.Context(), me, page, perPage)
		if err != nil {
			return nil, statusForErr(err), err
		}
		return types.PostPage{Posts: list, Page: page, PerPage: perPage}, http.StatusOK, nil
	}))

	return r
}
