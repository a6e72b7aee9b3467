package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"helppro/internal/domain/entity"
	mocksusecase "helppro/internal/mocks/usecase"
	"helppro/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchHandler_Search_ParsesCoordinates(t *testing.T) {
	var captured *usecase.SearchVendorsInput
	uc := mocksusecase.NewMockSearchUsecase(t)
	uc.EXPECT().SearchVendors(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, input *usecase.SearchVendorsInput) ([]*entity.VendorProfile, error) {
			captured = input
			return []*entity.VendorProfile{
				{
					ID:        1,
					AccountID: 7,
					VendorFields: entity.VendorFields{
						CompanyName: "Salone Verdi",
						Category:    entity.CategoryHaircut,
						City:        "Milano",
					},
					Location: &entity.GeoPoint{Latitude: 45.4642, Longitude: 9.19},
				},
			}, nil
		})

	e := newTestEcho(t)
	e.GET("/vendors/search", NewSearchHandler(uc, testLogger()).Search)

	req := httptest.NewRequest(http.MethodGet, "/vendors/search?lat=45.46&lon=9.19&radius_km=10", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	require.NotNil(t, captured.Latitude)
	require.NotNil(t, captured.Longitude)
	require.NotNil(t, captured.RadiusKm)
	assert.InDelta(t, 45.46, *captured.Latitude, 1e-9)
	assert.InDelta(t, 9.19, *captured.Longitude, 1e-9)
	assert.InDelta(t, 10.0, *captured.RadiusKm, 1e-9)
	assert.Contains(t, rec.Body.String(), "Salone Verdi")
	assert.Contains(t, rec.Body.String(), `"latitude":45.4642`)
}

func TestSearchHandler_Search_TextFilters(t *testing.T) {
	var captured *usecase.SearchVendorsInput
	uc := mocksusecase.NewMockSearchUsecase(t)
	uc.EXPECT().SearchVendors(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, input *usecase.SearchVendorsInput) ([]*entity.VendorProfile, error) {
			captured = input
			return nil, nil
		})

	e := newTestEcho(t)
	e.GET("/vendors/search", NewSearchHandler(uc, testLogger()).Search)

	req := httptest.NewRequest(http.MethodGet, "/vendors/search?city=Milano&postcode=20121", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Nil(t, captured.Latitude)
	assert.Nil(t, captured.RadiusKm)
	assert.Equal(t, "Milano", captured.City)
	assert.Equal(t, "20121", captured.Postcode)
	// An empty result set never renders as null.
	assert.NotContains(t, rec.Body.String(), "null")
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestSearchHandler_Search_RejectsMalformedNumber(t *testing.T) {
	uc := mocksusecase.NewMockSearchUsecase(t)

	e := newTestEcho(t)
	e.GET("/vendors/search", NewSearchHandler(uc, testLogger()).Search)

	req := httptest.NewRequest(http.MethodGet, "/vendors/search?lat=north&lon=9.19", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "lat must be a number")
}
