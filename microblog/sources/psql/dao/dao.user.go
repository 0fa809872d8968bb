package dao

import (
	"context"
	"errors"
	"microblog/microblog/sources/psql/models"
	"time"

	"gorm.io/gorm"
)

type UserDAO struct {
	DB *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{DB: db}
}

func (dao *UserDAO) GetByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) GetByNickname(ctx context.Context, nickname string) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).Where("nickname = ?", nickname).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create persists the user row and its bootstrap self-follow edge in one
// transaction, so no reader ever observes a user without its self-edge.
func (dao *UserDAO) Create(ctx context.Context, user *models.User) error {
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Follow{
			FollowerID: user.ID,
			FollowedID: user.ID,
		}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the race between the application-level uniqueness check and
		// the insert. The caller decides whether to retry with a new suffix.
		return models.ErrNicknameTaken
	}
	return err
}

func (dao *UserDAO) Update(ctx context.Context, user *models.User) error {
	err := dao.DB.WithContext(ctx).Save(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.ErrNicknameTaken
	}
	return err
}

// TouchLastSeen stamps the user's last_seen without rewriting the row.
func (dao *UserDAO) TouchLastSeen(ctx context.Context, id int) error {
	return dao.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("last_seen", time.Now().UTC()).Error
}

func (dao *UserDAO) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := dao.DB.WithContext(ctx).Order("nickname ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
