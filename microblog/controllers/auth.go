package controllers

import (
	"context"
	"errors"
	"microblog/microblog/config"
	"microblog/microblog/sources/psql/models"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrUnknownProvider = errors.New("unknown identity provider")

// AuthController picks up after the federated handshake: the upstream
// collaborator has already verified the email and suggested a display name.
type AuthController struct {
	users UserStore
	graph *SocialController
	cfg   config.Config
}

func NewAuthController(users UserStore, graph *SocialController, cfg config.Config) *AuthController {
	return &AuthController{users: users, graph: graph, cfg: cfg}
}

// CompleteLogin finds or creates the user for a verified (email, nickname)
// pair and returns a signed session token. The email is the correlation key;
// the nickname only matters on first login, where collisions are resolved by
// suffixing.
func (c *AuthController) CompleteLogin(ctx context.Context, provider, email, suggestedNickname string) (string, *models.User, error) {
	if !c.cfg.KnownProvider(provider) {
		return "", nil, ErrUnknownProvider
	}
	user, err := c.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		nickname := strings.TrimSpace(suggestedNickname)
		if nickname == "" {
			// Some providers send no display name; fall back to the
			// local part of the email.
			nickname, _, _ = strings.Cut(email, "@")
		}
		nickname, err = c.graph.ResolveUniqueNickname(ctx, nickname)
		if err != nil {
			return "", nil, err
		}
		user = &models.User{
			Nickname: nickname,
			Email:    email,
			Role:     models.RoleUser,
			LastSeen: time.Now().UTC(),
		}
		if err := c.users.Create(ctx, user); err != nil {
			return "", nil, err
		}
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(c.cfg.JWTSecret))
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}
