package impl

import (
	"context"
	"testing"

	"helppro/config"
	"helppro/internal/domain/entity"
	domainerrors "helppro/internal/domain/errors"
	"helppro/internal/domain/repository"
	mockRepo "helppro/internal/mocks/repository"
	"helppro/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchService(t *testing.T, vendorRepo *mockRepo.MockVendorRepository) usecase.SearchUsecase {
	t.Helper()

	cfg := &config.Config{Search: &config.SearchConfig{DefaultRadiusKm: 5.0, MaxRadiusKm: 100.0}}

	return NewSearchService(SearchServiceParams{
		VendorRepo: vendorRepo,
		Config:     cfg,
		Logger:     testLogger(),
	})
}

func floatPtr(v float64) *float64 { return &v }

func TestSearchService_RadiusMode(t *testing.T) {
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	svc := newSearchService(t, vendorRepo)

	ctx := context.Background()
	expected := []*entity.VendorProfile{{ID: 1}}
	vendorRepo.EXPECT().
		SearchByRadius(ctx, repository.RadiusSearchFilter{Latitude: 45.46, Longitude: 9.19, RadiusKm: 12.5}).
		Return(expected, nil)

	profiles, err := svc.SearchVendors(ctx, &usecase.SearchVendorsInput{
		Latitude:  floatPtr(45.46),
		Longitude: floatPtr(9.19),
		RadiusKm:  floatPtr(12.5),
	})
	require.NoError(t, err)
	assert.Equal(t, expected, profiles)
}

func TestSearchService_RadiusMode_DefaultRadius(t *testing.T) {
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	svc := newSearchService(t, vendorRepo)

	ctx := context.Background()
	vendorRepo.EXPECT().
		SearchByRadius(ctx, repository.RadiusSearchFilter{Latitude: 45.46, Longitude: 9.19, RadiusKm: 5.0}).
		Return(nil, nil)

	_, err := svc.SearchVendors(ctx, &usecase.SearchVendorsInput{
		Latitude:  floatPtr(45.46),
		Longitude: floatPtr(9.19),
	})
	require.NoError(t, err)
}

func TestSearchService_RadiusMode_RejectsNonPositiveRadius(t *testing.T) {
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	svc := newSearchService(t, vendorRepo)

	for _, radius := range []float64{0, -3} {
		_, err := svc.SearchVendors(context.Background(), &usecase.SearchVendorsInput{
			Latitude:  floatPtr(45.46),
			Longitude: floatPtr(9.19),
			RadiusKm:  floatPtr(radius),
		})
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	}
}

func TestSearchService_RadiusMode_ConfiguredCapRejectsExcessiveRadius(t *testing.T) {
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	svc := newSearchService(t, vendorRepo)

	_, err := svc.SearchVendors(context.Background(), &usecase.SearchVendorsInput{
		Latitude:  floatPtr(45.46),
		Longitude: floatPtr(9.19),
		RadiusKm:  floatPtr(500),
	})
	require.Error(t, err)
}

func TestSearchService_RadiusMode_NoCapByDefault(t *testing.T) {
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	svc := NewSearchService(SearchServiceParams{
		VendorRepo: vendorRepo,
		Config:     &config.Config{Search: &config.SearchConfig{DefaultRadiusKm: 5.0}},
		Logger:     testLogger(),
	})

	ctx := context.Background()
	vendorRepo.EXPECT().
		SearchByRadius(ctx, repository.RadiusSearchFilter{Latitude: 45.46, Longitude: 9.19, RadiusKm: 500}).
		Return(nil, nil)

	// Without a configured cap any positive radius is served.
	_, err := svc.SearchVendors(ctx, &usecase.SearchVendorsInput{
		Latitude:  floatPtr(45.46),
		Longitude: floatPtr(9.19),
		RadiusKm:  floatPtr(500),
	})
	require.NoError(t, err)
}

func TestSearchService_RejectsLoneCoordinate(t *testing.T) {
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	svc := newSearchService(t, vendorRepo)

	_, err := svc.SearchVendors(context.Background(), &usecase.SearchVendorsInput{
		Latitude: floatPtr(45.46),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestSearchService_TextMode(t *testing.T) {
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	svc := newSearchService(t, vendorRepo)

	ctx := context.Background()
	expected := []*entity.VendorProfile{{ID: 2}}
	vendorRepo.EXPECT().
		SearchByText(ctx, repository.TextSearchFilter{City: "Milano", Postcode: "", Address: "Roma"}).
		Return(expected, nil)

	profiles, err := svc.SearchVendors(ctx, &usecase.SearchVendorsInput{
		City:    "Milano",
		Address: "Roma",
	})
	require.NoError(t, err)
	assert.Equal(t, expected, profiles)
}

func TestSearchService_TextMode_NoFilters(t *testing.T) {
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	svc := newSearchService(t, vendorRepo)

	ctx := context.Background()
	vendorRepo.EXPECT().
		SearchByText(ctx, repository.TextSearchFilter{}).
		Return([]*entity.VendorProfile{}, nil)

	profiles, err := svc.SearchVendors(ctx, &usecase.SearchVendorsInput{})
	require.NoError(t, err)
	assert.Empty(t, profiles)
}
