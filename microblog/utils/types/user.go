package types

import (
	"microblog/microblog/sources/psql/models"
	"time"
)

type UpdateProfileRequest struct {
	Nickname string `json:"nickname,omitempty"`
	AboutMe  string `json:"about_me"`
}

type UserProfile struct {
	ID        int         `json:"id"`
	Nickname  string      `json:"nickname"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	AboutMe   string      `json:"about_me,omitempty"`
	LastSeen  time.Time   `json:"last_seen"`
	Avatar    string      `json:"avatar"`
	Followers int64       `json:"followers"`
	Following int64       `json:"following"`
}

func NewUserProfile(u *models.User, followers, following int64) *UserProfile {
	return &UserProfile{
		ID:        u.ID,
		Nickname:  u.Nickname,
		Email:     u.Email,
		Role:      u.Role,
		AboutMe:   u.AboutMe,
		LastSeen:  u.LastSeen,
		Avatar:    u.AvatarURL(128),
		Followers: followers,
		Following: following,
	}
}
