package routes

import (
	"errors"
	"net/http"

	"microblog/microblog/controllers"
	"microblog/microblog/middlewares"
	"microblog/microblog/sources/psql/models"
	httputils "microblog/microblog/utils/http"
)

var errMissingQuery = errors.New("missing query parameter q")

// generic wrapper to reduce boilerplate
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			http.Error(w, err.Error(), status)
			return
		}
		httputils.WriteJSON(w, status, res)
	}
}

// statusForErr maps the outcome taxonomy to HTTP statuses: absent rows to
// 404, no-effect outcomes and uniqueness conflicts to 409, caller mistakes
// to 400, everything else (storage failures included) to 500.
func statusForErr(err error) int {
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrAlreadyFollowing),
		errors.Is(err, models.ErrNotFollowing),
		errors.Is(err, models.ErrNicknameTaken),
		errors.Is(err, models.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, models.ErrCannotFollowSelf),
		errors.Is(err, models.ErrBodyRequired),
		errors.Is(err, models.ErrBodyTooLong),
		errors.Is(err, models.ErrAboutMeTooLong),
		errors.Is(err, controllers.ErrUnknownProvider):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func authedUserID(r *http.Request) (int, bool) {
	id, ok := r.Context().Value(middlewares.UserIDKey).(int)
	return id, ok
}
