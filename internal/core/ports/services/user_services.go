package services

import (
	"context"

	"github.com/fairsplit/fairsplit/internal/core/domain"
	"github.com/fairsplit/fairsplit/internal/dto"
)

// UserSvcFacade exposes user directory operations.
type UserSvcFacade interface {
	// GetUserByID resolves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers returns a page of users.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	// UpdateUser applies profile changes for the user themselves.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)

	// DeleteUser soft-deletes a user.
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error
}

// AuthSvcFacade exposes account creation and login.
type AuthSvcFacade interface {
	// Register creates an account and returns an access token for it.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)

	// Login verifies credentials and returns an access token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
}
