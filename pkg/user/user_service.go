package user

import (
	"context"
	"errors"
	"spice-garden/domain"
	"spice-garden/entities"
	"spice-garden/internal/utils"
	"spice-garden/pkg/jwt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.UserResponse, error)
		ChangePassword(ctx context.Context, userID string, req domain.ChangePasswordRequest) error
		GetUsers(ctx context.Context, page, limit int) ([]domain.AdminUserResponse, int64, error)
		UpdateRole(ctx context.Context, userID string, req domain.UpdateRoleRequest) (domain.UserResponse, error)
		GetRole(ctx context.Context, userID string) (string, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Role:  user.Role,
	}
}

func (s *userService) getUser(ctx context.Context, userID string) (*entities.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	email := normalizeEmail(req.Email)

	exists, err := s.userRepository.CheckUserByEmail(ctx, email)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if exists {
		return domain.UserResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hashed,
		Phone:    req.Phone,
		Role:     domain.RoleUser,
	}

	if err := s.userRepository.RegisterUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.ErrEmailAlreadyExists
		}
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateTokenUser(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req domain.ChangePasswordRequest) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPassword(user.Password, req.CurrentPassword) {
		return domain.ErrWrongPassword
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashed

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) GetUsers(ctx context.Context, page, limit int) ([]domain.AdminUserResponse, int64, error) {
	users, count, err := s.userRepository.GetUsers(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.AdminUserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, domain.AdminUserResponse{
			ID:           u.ID.String(),
			Name:         u.Name,
			Email:        u.Email,
			Phone:        u.Phone,
			Role:         u.Role,
			OrderCount:   u.OrderCount,
			AddressCount: u.AddressCount,
			CreatedAt:    u.CreatedAt,
		})
	}
	return res, count, nil
}

func (s *userService) UpdateRole(ctx context.Context, userID string, req domain.UpdateRoleRequest) (domain.UserResponse, error) {
	if req.Role != domain.RoleUser && req.Role != domain.RoleAdmin {
		return domain.UserResponse{}, domain.ErrInvalidRole
	}
	if _, err := uuid.Parse(userID); err != nil {
		return domain.UserResponse{}, domain.ErrParseUUID
	}

	if err := s.userRepository.UpdateRole(ctx, userID, req.Role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return s.Me(ctx, userID)
}

// GetRole reads the role from the store, not from the token, so a demoted
// admin loses access immediately.
func (s *userService) GetRole(ctx context.Context, userID string) (string, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}
