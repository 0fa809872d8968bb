package routes

import (
	"encoding/json"
	"net/http"

	"microblog/microblog/controllers"
	"microblog/microblog/utils/types"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(ctrl *controllers.AuthController, users *controllers.UserController) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		token, user, err := ctrl.CompleteLogin(r.Context(), req.Provider, req.Email, req.Nickname)
		if err != nil {
			return nil, statusForErr(err), err
		}
		profile, err := users.GetProfile(r.Context(), user.ID)
		if err != nil {
			return nil, statusForErr(err), err
		}
		return types.LoginResponse{Token: token, User: profile}, http.StatusOK, nil
	}))
	return r
}
