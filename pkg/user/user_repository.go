package user

import (
	"context"
	"spice-garden/entities"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		RegisterUser(ctx context.Context, user *entities.User) error
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		CheckUserByEmail(ctx context.Context, email string) (bool, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		UpdateRole(ctx context.Context, id string, role string) error
		GetUsers(ctx context.Context, page, limit int) ([]*UserSummary, int64, error)
	}

	// UserSummary is a user row with the counts shown in the back office.
	UserSummary struct {
		ID           uuid.UUID
		Name         string
		Email        string
		Phone        string
		Role         string
		CreatedAt    time.Time
		OrderCount   int64
		AddressCount int64
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) RegisterUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CheckUserByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) UpdateRole(ctx context.Context, id string, role string) error {
	res := r.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) GetUsers(ctx context.Context, page, limit int) ([]*UserSummary, int64, error) {
	var users []*UserSummary
	var count int64

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).Model(&entities.User{}).
		Select("users.id, users.name, users.email, users.phone, users.role, users.created_at, " +
			"(SELECT COUNT(*) FROM orders WHERE orders.user_id = users.id) AS order_count, " +
			"(SELECT COUNT(*) FROM addresses WHERE addresses.user_id = users.id) AS address_count").
		Order("users.created_at desc").
		Offset(offset).Limit(limit).
		Scan(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, count, nil
}
