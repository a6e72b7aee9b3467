package impl

import (
	"context"
	"fmt"
	"log/slog"

	"helppro/config"
	deliverycontext "helppro/internal/delivery/context"
	"helppro/internal/domain/entity"
	domainerrors "helppro/internal/domain/errors"
	"helppro/internal/domain/repository"
	"helppro/internal/usecase"

	"go.uber.org/fx"
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	vendorRepo      repository.VendorRepository
	defaultRadiusKm float64
	maxRadiusKm     float64
	logger          *slog.Logger
}

// SearchServiceParams holds dependencies for searchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	VendorRepo repository.VendorRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		vendorRepo:      params.VendorRepo,
		defaultRadiusKm: params.Config.Search.DefaultRadiusKm,
		maxRadiusKm:     params.Config.Search.MaxRadiusKm,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchVendors dispatches to the radius or text search mode. Coordinates
// take precedence; supplying only one of lat/lon is a validation error.
func (srv *searchService) SearchVendors(ctx context.Context, input *usecase.SearchVendorsInput) ([]*entity.VendorProfile, error) {
	hasLat := input.Latitude != nil
	hasLon := input.Longitude != nil

	if hasLat != hasLon {
		return nil, domainerrors.ErrValidationFailed.WithDetails("lat and lon must be provided together")
	}

	if hasLat && hasLon {
		return srv.searchByRadius(ctx, input)
	}

	return srv.searchByText(ctx, input)
}

func (srv *searchService) searchByRadius(ctx context.Context, input *usecase.SearchVendorsInput) ([]*entity.VendorProfile, error) {
	radiusKm := srv.defaultRadiusKm
	if input.RadiusKm != nil {
		radiusKm = *input.RadiusKm
	}
	if radiusKm <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius_km must be greater than zero")
	}
	if srv.maxRadiusKm > 0 && radiusKm > srv.maxRadiusKm {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("radius_km must not exceed %g", srv.maxRadiusKm))
	}

	srv.log(ctx).Debug("Searching vendors by radius",
		slog.Float64("lat", *input.Latitude),
		slog.Float64("lon", *input.Longitude),
		slog.Float64("radiusKm", radiusKm))

	return srv.vendorRepo.SearchByRadius(ctx, repository.RadiusSearchFilter{
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
		RadiusKm:  radiusKm,
	})
}

func (srv *searchService) searchByText(ctx context.Context, input *usecase.SearchVendorsInput) ([]*entity.VendorProfile, error) {
	srv.log(ctx).Debug("Searching vendors by text",
		slog.String("city", input.City),
		slog.String("postcode", input.Postcode),
		slog.String("address", input.Address))

	return srv.vendorRepo.SearchByText(ctx, repository.TextSearchFilter{
		City:     input.City,
		Postcode: input.Postcode,
		Address:  input.Address,
	})
}
