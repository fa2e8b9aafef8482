package domain

import (
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetUser        = "user retrieved successfully"
	MessageSuccessUpdateProfile  = "profile updated successfully"
	MessageSuccessChangePassword = "password changed successfully"
	MessageSuccessGetUsers       = "users retrieved successfully"
	MessageSuccessUpdateRole     = "user role updated successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetUser        = "failed to get user"
	MessageFailedUpdateProfile  = "failed to update profile"
	MessageFailedChangePassword = "failed to change password"
	MessageFailedGetUsers       = "failed to get users"
	MessageFailedUpdateRole     = "failed to update user role"

	ErrUserNotFound       = NewError(KindNotFound, "user not found")
	ErrEmailAlreadyExists = NewError(KindConflict, "email already registered")
	ErrInvalidCredentials = NewError(KindUnauthorized, "invalid email or password")
	ErrWrongPassword      = NewError(KindValidation, "current password is incorrect")
	ErrInvalidRole        = NewError(KindValidation, "invalid role, must be user or admin")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		Phone    string `json:"phone" validate:"omitempty"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UpdateProfileRequest struct {
		Name  string `json:"name" validate:"omitempty"`
		Phone string `json:"phone" validate:"omitempty"`
	}

	ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=6"`
	}

	UpdateRoleRequest struct {
		Role string `json:"role" validate:"required"`
	}

	UserResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone,omitempty"`
		Role  string `json:"role"`
	}

	AdminUserResponse struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		Email        string    `json:"email"`
		Phone        string    `json:"phone,omitempty"`
		Role         string    `json:"role"`
		OrderCount   int64     `json:"order_count"`
		AddressCount int64     `json:"address_count"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
