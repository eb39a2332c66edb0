package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"droscher.com/RecipeBox/pkg/model"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

type UserRepository interface {
	AddUser(ctx context.Context, user model.User) (*model.User, error)
	GetUserByID(ctx context.Context, userID uint) (*model.User, error)
	GetUserByName(ctx context.Context, username string) (*model.User, error)
	GetUserByUUID(ctx context.Context, uuid uuid.UUID) (*model.User, error)
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
	ListSubscribedAuthors(ctx context.Context, userID uint, limit int, offset int) ([]*model.User, int64, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]*model.User, int64, error)
	UpdateAvatar(ctx context.Context, userID uint, avatar string) error
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
}

func firstUser(query *gorm.DB) (*model.User, error) {
	var user model.User

	if result := query.First(&user); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, result.Error
	}

	return &user, nil
}

func (r *Repository) GetUserByID(ctx context.Context, userID uint) (*model.User, error) {
	return firstUser(r.DB.WithContext(ctx).Where("id = ?", userID))
}

func (r *Repository) GetUserByUUID(ctx context.Context, uuid uuid.UUID) (*model.User, error) {
	return firstUser(r.DB.WithContext(ctx).Where("uuid = ?", uuid))
}

func (r *Repository) GetUserByName(ctx context.Context, username string) (*model.User, error) {
	return firstUser(r.DB.WithContext(ctx).Where("username = ?", username))
}

func (r *Repository) GetUserFromEmail(ctx context.Context, email string) (*model.User, error) {
	return firstUser(r.DB.WithContext(ctx).Where("email = ?", email))
}

func (r *Repository) AddUser(ctx context.Context, user model.User) (*model.User, error) {
	if user.UUID == uuid.Nil {
		user.UUID = uuid.New()
	}

	if result := r.DB.WithContext(ctx).Create(&user); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s", ErrUserExists, user.Username)
		}

		return nil, result.Error
	}

	return &user, nil
}

func (r *Repository) ListUsers(ctx context.Context, limit int, offset int) ([]*model.User, int64, error) {
	var (
		users []*model.User
		total int64
	)

	if result := r.DB.WithContext(ctx).Model(&model.User{}).Count(&total); result.Error != nil {
		return nil, 0, result.Error
	}

	if result := paginate(r.DB.WithContext(ctx).Order("id"), limit, offset).Find(&users); result.Error != nil {
		return nil, 0, result.Error
	}

	return users, total, nil
}

// ListSubscribedAuthors returns the users that userID is subscribed to, oldest subscription first.
func (r *Repository) ListSubscribedAuthors(ctx context.Context, userID uint, limit int, offset int) ([]*model.User, int64, error) {
	var (
		users []*model.User
		total int64
	)

	if result := r.DB.WithContext(ctx).Model(&model.Subscription{}).Where("user_id = ?", userID).Count(&total); result.Error != nil {
		return nil, 0, result.Error
	}

	query := r.DB.WithContext(ctx).Table("users").
		Select("users.*").
		Joins("INNER JOIN subscriptions s on s.subscribed_to_id = users.id").
		Where("s.user_id = ?", userID).
		Order("s.id")

	if result := paginate(query, limit, offset).Find(&users); result.Error != nil {
		return nil, 0, result.Error
	}

	return users, total, nil
}

func (r *Repository) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	return r.updateUserColumn(ctx, userID, "password_hash", passwordHash)
}

func (r *Repository) UpdateAvatar(ctx context.Context, userID uint, avatar string) error {
	return r.updateUserColumn(ctx, userID, "avatar", avatar)
}

func (r *Repository) updateUserColumn(ctx context.Context, userID uint, column string, value string) error {
	result := r.DB.WithContext(ctx).Model(&model.User{ID: userID}).Update(column, value)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func paginate(query *gorm.DB, limit int, offset int) *gorm.DB {
	if limit > 0 {
		query = query.Limit(limit)
	}

	if offset > 0 {
		query = query.Offset(offset)
	}

	return query
}
