package services

import (
	"context"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
	"github.com/cardwise/cardwise_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// CreateUser registers a new local-credentials user. The user's default
	// settings record is created alongside the account.
	CreateUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error)

	// CreateOAuthUser finds or creates a user for a validated identity
	// provider profile.
	CreateOAuthUser(ctx context.Context, email, name string, provider domain.AuthProvider) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication.
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
