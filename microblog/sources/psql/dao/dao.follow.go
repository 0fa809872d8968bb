package dao

import (
	"context"
	"errors"
	"microblog/microblog/sources/psql/models"

	"gorm.io/gorm"
)

type FollowDAO struct {
	DB *gorm.DB
}

func NewFollowDAO(db *gorm.DB) *FollowDAO {
	return &FollowDAO{DB: db}
}

// Create inserts the (follower, followed) edge. A duplicate insert, racing or
// not, comes back as models.ErrAlreadyFollowing thanks to the composite unique
// index on the pair.
func (dao *FollowDAO) Create(ctx context.Context, followerID, followedID int) error {
	err := dao.DB.WithContext(ctx).Create(&models.Follow{
		FollowerID: followerID,
		FollowedID: followedID,
	}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.ErrAlreadyFollowing
	}
	return err
}

// Delete removes the edge and reports whether it existed.
func (dao *FollowDAO) Delete(ctx context.Context, followerID, followedID int) (bool, error) {
	res := dao.DB.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (dao *FollowDAO) Exists(ctx context.Context, followerID, followedID int) (bool, error) {
	var count int64
	err := dao.DB.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountFollowers excludes the bootstrap self-edge.
func (dao *FollowDAO) CountFollowers(ctx context.Context, userID int) (int64, error) {
	var count int64
	err := dao.DB.WithContext(ctx).
		Model(&models.Follow{}).
		Where("followed_id = ? AND follower_id <> followed_id", userID).
		Count(&count).Error
	return count, err
}

// CountFollowing excludes the bootstrap self-edge.
func (dao *FollowDAO) CountFollowing(ctx context.Context, userID int) (int64, error) {
	var count int64
	err := dao.DB.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id <> follower_id", userID).
		Count(&count).Error
	return count, err
}
