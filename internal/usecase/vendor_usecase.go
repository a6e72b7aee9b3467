package usecase

import (
	"context"

	"helppro/internal/domain/entity"
)

// RegisterVendorInput defines the data required to create a vendor profile
// for an existing account.
type RegisterVendorInput struct {
	AccountID   int64
	CompanyName string
	Category    string
	Country     string
	City        string
	Postcode    string
	Address     string
}

// BulkResult is the outcome of a bulk import. Errors carry one human-readable
// message per failed row, prefixed with the row's 1-based input position;
// rows that succeeded stay committed regardless of later failures.
type BulkResult struct {
	Created []int64
	Errors  []string
}

// Partial reports whether some rows failed.
func (r *BulkResult) Partial() bool {
	return len(r.Errors) > 0
}

// VendorUsecase defines the interface for vendor registration operations.
type VendorUsecase interface {
	// RegisterVendor geocodes the submitted address and persists the profile.
	// Any geocoding failure aborts the registration; nothing is written.
	RegisterVendor(ctx context.Context, input *RegisterVendorInput) (*entity.VendorProfile, error)

	// ImportAccounts creates vendor accounts from CSV rows (email, password).
	ImportAccounts(ctx context.Context, rows []map[string]string) (*BulkResult, error)

	// ImportProfiles creates vendor profiles from CSV rows
	// (account_id, company_name, category, country, city, postcode, address).
	ImportProfiles(ctx context.Context, rows []map[string]string) (*BulkResult, error)
}
