// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"helppro/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new client user.
type SignupInput struct {
	Email    string
	FullName string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
}

// AuthUsecase defines the interface for client authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// CurrentUser loads the user identified by a validated token subject.
	// Unknown subjects surface as invalid-token, disabled users as inactive.
	CurrentUser(ctx context.Context, email string) (*entity.User, error)
}
