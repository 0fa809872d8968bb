package controllers

import (
	"context"
	"microblog/microblog/sources/psql/models"
	"microblog/microblog/utils/types"
	"strings"
	"unicode/utf8"
)

type UserController struct {
	users   UserStore
	follows FollowStore
}

func NewUserController(users UserStore, follows FollowStore) *UserController {
	return &UserController{users: users, follows: follows}
}

// GetProfile returns a user's public profile with follower counts, both
// excluding the bootstrap self-edge.
func (c *UserController) GetProfile(ctx context.Context, id int) (*types.UserProfile, error) {
	user, err := c.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.ErrUserNotFound
	}
	followers, err := c.follows.CountFollowers(ctx, id)
	if err != nil {
		return nil, err
	}
	following, err := c.follows.CountFollowing(ctx, id)
	if err != nil {
		return nil, err
	}
	return types.NewUserProfile(user, followers, following), nil
}

// EditProfile updates nickname and about_me. An empty nickname keeps the
// current one. A taken nickname surfaces as models.ErrNicknameTaken for the
// caller to report; no silent suffixing on edits.
func (c *UserController) EditProfile(ctx context.Context, id int, nickname, aboutMe string) (*types.UserProfile, error) {
	user, err := c.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.ErrUserNotFound
	}
	if utf8.RuneCountInString(aboutMe) > models.AboutMeMaxLen {
		return nil, models.ErrAboutMeTooLong
	}

	nickname = strings.TrimSpace(nickname)
	if nickname != "" && nickname != user.Nickname {
		holder, err := c.users.GetByNickname(ctx, nickname)
		if err != nil {
			return nil, err
		}
		if holder != nil {
			return nil, models.ErrNicknameTaken
		}
		user.Nickname = nickname
	}
	user.AboutMe = aboutMe
	if err := c.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return c.GetProfile(ctx, id)
}
