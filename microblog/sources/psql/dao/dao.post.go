package dao

import (
	"context"
	"microblog/microblog/sources/psql/models"

	"gorm.io/gorm"
)

type PostDAO struct {
	DB *gorm.DB
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{DB: db}
}

func (dao *PostDAO) Create(ctx context.Context, post *models.Post) error {
	return dao.DB.WithContext(ctx).Create(post).Error
}

// ByAuthor returns one author's posts, newest first. The id tie-break keeps
// pagination deterministic when timestamps collide.
func (dao *PostDAO) ByAuthor(ctx context.Context, authorID, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := dao.DB.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("timestamp DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Followed assembles a user's home feed in a single join against the edge
// table: every post whose author the user follows, self included via the
// bootstrap edge. Skip/limit happens in the database, not in memory.
func (dao *PostDAO) Followed(ctx context.Context, userID, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := dao.DB.WithContext(ctx).
		Joins("JOIN follows ON follows.followed_id = posts.author_id").
		Where("follows.follower_id = ?", userID).
		Order("posts.timestamp DESC, posts.id DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ByIDs fetches posts for a set of ids in no particular order; callers that
// care about ranking (search) reorder the result themselves.
func (dao *PostDAO) ByIDs(ctx context.Context, ids []int) ([]models.Post, error) {
	if len(ids) == 0 {
		return []models.Post{}, nil
	}
	var posts []models.Post
	err := dao.DB.WithContext(ctx).Where("id IN ?", ids).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
