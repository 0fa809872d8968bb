package middlewares

import (
	"context"
	"net/http"
	"strings"

	"microblog/microblog/config"
	"microblog/microblog/utils/logging"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// SeenRecorder stamps last_seen for the authenticated user. Failures are
// logged and ignored; a stale last_seen never fails a request.
type SeenRecorder interface {
	TouchLastSeen(ctx context.Context, id int) error
}

func AuthMiddleware(cfg config.Config, seen SeenRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			parts := strings.Split(auth, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			tokenStr := parts[1]
			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			userID, ok := claims["user_id"].(float64)
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), UserIDKey, int(userID))
			if seen != nil {
				if err := seen.TouchLastSeen(ctx, int(userID)); err != nil {
					logging.ErrorLogger.Error("touch last_seen failed",
						zap.Int("user_id", int(userID)),
						zap.Error(err),
					)
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
