// Package repository defines the persistence contracts the use case layer
// depends on, keeping it free of any concrete database driver.
package repository

import (
	"context"

	"helppro/internal/domain/entity"
	"helppro/internal/errors"
)

// ErrUserNotFound is returned when a user cannot be found in the store.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists end-client identities.
type UserRepository interface {
	// Create persists a new user. The entity's ID is populated on success.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
