package usecase

import (
	"context"

	"helppro/internal/domain/entity"
)

// SearchVendorsInput selects one of the two search modes. When Latitude and
// Longitude are both set the search is geodesic; otherwise the text fields
// apply. RadiusKm falls back to the configured default when nil.
type SearchVendorsInput struct {
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64

	City     string
	Postcode string
	Address  string
}

// SearchUsecase defines the interface for vendor search operations.
type SearchUsecase interface {
	SearchVendors(ctx context.Context, input *SearchVendorsInput) ([]*entity.VendorProfile, error)
}
