package controllers

import (
	"context"
	"microblog/microblog/sources/psql/models"
)

// Storage boundaries of the social graph. The gorm DAOs in sources/psql/dao
// satisfy these; tests substitute in-memory implementations. Absent rows come
// back as (nil, nil), matching the DAO convention.
type UserStore interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByNickname(ctx context.Context, nickname string) (*models.User, error)
	// Create persists the user and its bootstrap self-follow edge atomically.
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	TouchLastSeen(ctx context.Context, id int) error
}

type FollowStore interface {
	Create(ctx context.Context, followerID, followedID int) error
	Delete(ctx context.Context, followerID, followedID int) (bool, error)
	Exists(ctx context.Context, followerID, followedID int) (bool, error)
	CountFollowers(ctx context.Context, userID int) (int64, error)
	CountFollowing(ctx context.Context, userID int) (int64, error)
}

type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	ByAuthor(ctx context.Context, authorID, limit, offset int) ([]models.Post, error)
	Followed(ctx context.Context, userID, limit, offset int) ([]models.Post, error)
	ByIDs(ctx context.Context, ids []int) ([]models.Post, error)
}

// PostIndex is the full-text collaborator. The graph core never reads it;
// only post creation writes to it and the search endpoint queries it.
type PostIndex interface {
	IndexPost(post *models.Post, authorNickname string) error
	Search(q string, limit, offset int) ([]int, error)
}
