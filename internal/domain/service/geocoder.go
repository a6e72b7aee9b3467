package service

import (
	"context"

	"helppro/internal/domain/entity"
)

// Geocoder resolves a structured postal address to WGS-84 coordinates.
type Geocoder interface {
	// Resolve returns the best-match coordinates for the address, or
	// domain ErrAddressNotFound when the provider has no result for it.
	Resolve(ctx context.Context, country, city, postcode, address string) (*entity.GeoPoint, error)
}
