package models

import (
	"errors"
	"time"
)

// Follow is a directed edge: the follower's feed includes the followed's posts.
// Every user carries a bootstrap self-edge created in the same transaction as
// the user row, which is how a feed includes the user's own posts without a
// special case in the query.
type Follow struct {
	ID         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	FollowerID int       `json:"follower_id" gorm:"not null;index;uniqueIndex:idx_follower_followed"`
	FollowedID int       `json:"followed_id" gorm:"not null;uniqueIndex:idx_follower_followed"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}

// Outcome taxonomy for callers. The "no effect" cases are structured results
// the handler layer maps to informational messages, not server errors.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
	ErrCannotFollowSelf = errors.New("cannot follow yourself")
	ErrNicknameTaken    = errors.New("nickname already taken")
	ErrEmailTaken       = errors.New("email already registered")
	ErrBodyRequired     = errors.New("post body is required")
	ErrBodyTooLong      = errors.New("post body exceeds 140 characters")
	ErrAboutMeTooLong   = errors.New("about_me exceeds 140 characters")
)
