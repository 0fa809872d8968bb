package controllers

import (
	"context"
	"fmt"
	"microblog/microblog/sources/psql/models"
	"microblog/microblog/utils/logging"
	"strconv"
)

// maxNicknameAttempts caps the suffix search. The loop terminates long before
// this in practice; the cap only guards against a pathological nickname space.
const maxNicknameAttempts = 1000

// SocialController owns the follow graph and feed assembly. It holds no
// state of its own; everything lives behind the injected stores.
type SocialController struct {
	users   UserStore
	follows FollowStore
	posts   PostStore
}

func NewSocialController(users UserStore, follows FollowStore, posts PostStore) *SocialController {
	return &SocialController{users: users, follows: follows, posts: posts}
}

// ResolveUniqueNickname returns candidate if no user holds it, otherwise the
// first free form of candidate+"2", candidate+"3", ... The storage unique
// index backstops the race between this check and the insert.
func (c *SocialController) ResolveUniqueNickname(ctx context.Context, candidate string) (string, error) {
	existing, err := c.users.GetByNickname(ctx, candidate)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return candidate, nil
	}
	for i := 2; i <= maxNicknameAttempts; i++ {
		nickname := candidate + strconv.Itoa(i)
		existing, err := c.users.GetByNickname(ctx, nickname)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return nickname, nil
		}
	}
	return "", fmt.Errorf("no free nickname for %q after %d attempts", candidate, maxNicknameAttempts)
}

// Follow adds the (follower, target) edge. Already-following is a structured
// no-op outcome, not a server error. Self-targeting is not special-cased
// here; the handler layer rejects user-initiated self-follows before calling.
func (c *SocialController) Follow(ctx context.Context, followerID, targetID int) error {
	target, err := c.users.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return models.ErrUserNotFound
	}
	following, err := c.follows.Exists(ctx, followerID, targetID)
	if err != nil {
		return err
	}
	if following {
		return models.ErrAlreadyFollowing
	}
	return c.follows.Create(ctx, followerID, targetID)
}

// Unfollow removes the edge if present; not-following is the symmetric no-op
// outcome.
func (c *SocialController) Unfollow(ctx context.Context, followerID, targetID int) error {
	target, err := c.users.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return models.ErrUserNotFound
	}
	removed, err := c.follows.Delete(ctx, followerID, targetID)
	if err != nil {
		return err
	}
	if !removed {
		return models.ErrNotFollowing
	}
	return nil
}

func (c *SocialController) IsFollowing(ctx context.Context, followerID, targetID int) (bool, error) {
	return c.follows.Exists(ctx, followerID, targetID)
}

// FollowedPosts assembles the home feed: posts by every author the user
// follows, self included via the bootstrap edge, newest first.
func (c *SocialController) FollowedPosts(ctx context.Context, userID, page, perPage int) ([]models.Post, error) {
	defer logging.LogDuration(ctx, "SocialController.FollowedPosts")()
	if page < 1 {
		page = 1
	}
	return c.posts.Followed(ctx, userID, perPage, (page-1)*perPage)
}
