package routes

import (
	"encoding/json"
	"net/http"
	"strconv"

	"microblog/microblog/config"
	"microblog/microblog/controllers"
	"microblog/microblog/middlewares"
	"microblog/microblog/sources/psql/models"
	httputils "microblog/microblog/utils/http"
	"microblog/microblog/utils/types"

	"github.com/go-chi/chi/v5"
)

func UserRoutes(
	ctrl *controllers.UserController,
	social *controllers.SocialController,
	posts *controllers.PostController,
	cfg config.Config,
	seen middlewares.SeenRecorder,
) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg, seen))

	r.Get("/me", handleJSON(func(r *http.Request) (any, int, error) {
		id, ok := authedUserID(r)
		if !ok {
			return nil, http.StatusUnauthorized, nil
		}
		profile, err := ctrl.GetProfile(r.Context(), id)
		if err != nil {
			return nil, statusForErr(err), err
		}
		return profile, http.StatusOK, nil
	}))

	r.Put("/me", handleJSON(func(r *http.Request) (any, int, error) {
		id, ok := authedUserID(r)
		if !ok {
			return nil, http.StatusUnauthorized, nil
		}
		var req types.UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		profile, err := ctrl.EditProfile(r.Context(), id, req.Nickname, req.AboutMe)
		if err != nil {
			return nil, statusForErr(err), err
		}
		return profile, http.StatusOK, nil
	}))

	r.Get("/{user_id}", handleJSON(func(r *http.Request) (any, int, error) {
		id, err := strconv.Atoi(chi.URLParam(r, "user_id"))
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		profile, err := ctrl.GetProfile(r.Context(), id)
		if err != nil {
			return nil, statusForErr(err), err
		}
		return profile, http.StatusOK, nil
	}))

	r.Get("/{user_id}/posts", handleJSON(func(r *http.Request) (any, int, error) {
		id, err := strconv.Atoi(chi.URLParam(r, "user_id"))
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		page, perPage := httputils.ParsePagination(r)
		list, err := posts.UserPosts(r.Context(), id, page, perPage)
		if err != nil {
			return nil, statusForErr(err), err
		}
		return types.PostPage{Posts: list, Page: page, PerPage: perPage}, http.StatusOK, nil
	}))

	// The self-follow rejection is handler policy: the graph core treats the
	// self edge like any other and must keep accepting the bootstrap edge.
	r.Post("/{user_id}/follow", handleJSON(func(r *http.Request) (any, int, error) {
		me, ok := authedUserID(r)
		if !ok {
			return nil, http.StatusUnauthorized, nil
		}
		target, err := strconv.Atoi(chi.URLParam(r, "user_id"))
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		if target == me {
			return nil, http.StatusBadRequest, models.ErrCannotFollowSelf
		}
		if err := social.Follow(r.Context(), me, target); err != nil {
			return nil, statusForErr(err), err
		}
		return types.FollowStatus{Following: true}, http.StatusOK, nil
	}))

	r.Delete("/{user_id}/follow", handleJSON(func(r *http.Request) (any, int, error) {
		me, ok := authedUserID(r)
		if !ok {
			return nil, http.StatusUnauthorized, nil
		}
		target, err := strconv.Atoi(chi.URLParam(r, "user_id"))
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		if target == me {
			return nil, http.StatusBadRequest, models.ErrCannotFollowSelf
		}
		if err := social.Unfollow(r.Context(), me, target); err != nil {
			return nil, statusForErr(err), err
		}
		return types.FollowStatus{Following: false}, http.StatusOK, nil
	}))

	r.Get("/{user_id}/follow", handleJSON(func(r *http.Request) (any, int, error) {
		me, ok := authedUserID(r)
		if !ok {
			return nil, http.StatusUnauthorized, nil
		}
		target, err := strconv.Atoi(chi.URLParam(r, "user_id"))
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		following, err := social.IsFollowing(r.Context(), me, target)
		if err != nil {
			return nil, statusForErr(err), err
		}
		return types.FollowStatus{Following: following}, http.StatusOK, nil
	}))

	return r
}
