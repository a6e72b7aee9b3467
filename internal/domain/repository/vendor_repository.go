package repository

import (
	"context"

	"helppro/internal/domain/entity"
	"helppro/internal/errors"
)

// ErrVendorProfileNotFound is returned when a vendor profile cannot be found.
var ErrVendorProfileNotFound = errors.New("vendor profile not found")

// TextSearchFilter narrows a vendor search by free-text location fields.
// Empty fields are ignored; non-empty ones all have to match.
type TextSearchFilter struct {
	City     string
	Postcode string
	Address  string
}

// RadiusSearchFilter narrows a vendor search to a geodesic circle around a
// WGS-84 center point.
type RadiusSearchFilter struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// VendorRepository persists vendor business profiles and answers location
// queries over them.
type VendorRepository interface {
	// CreateProfile persists a new vendor profile. The entity's ID is
	// populated on success.
	CreateProfile(ctx context.Context, profile *entity.VendorProfile) error

	// FindProfileByAccountID retrieves the profile linked to an account,
	// or ErrVendorProfileNotFound.
	FindProfileByAccountID(ctx context.Context, accountID int64) (*entity.VendorProfile, error)

	// SearchByText returns profiles matching the given text filter.
	SearchByText(ctx context.Context, filter TextSearchFilter) ([]*entity.VendorProfile, error)

	// SearchByRadius returns profiles whose stored location lies within the
	// filter's geodesic circle. Profiles without a location never match.
	SearchByRadius(ctx context.Context, filter RadiusSearchFilter) ([]*entity.VendorProfile, error)
}
