package repository

import (
	"context"

	"helppro/internal/domain/entity"
	"helppro/internal/errors"
)

// ErrVendorAccountNotFound is returned when a vendor account cannot be found.
var ErrVendorAccountNotFound = errors.New("vendor account not found")

// VendorAccountRepository persists vendor authentication identities.
type VendorAccountRepository interface {
	// Create persists a new vendor account. The entity's ID is populated on success.
	Create(ctx context.Context, account *entity.VendorAccount) error

	// FindByID retrieves a vendor account by ID, or ErrVendorAccountNotFound.
	FindByID(ctx context.Context, id int64) (*entity.VendorAccount, error)

	// FindByEmail retrieves a vendor account by email, or ErrVendorAccountNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.VendorAccount, error)
}
