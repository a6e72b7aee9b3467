package geocoding

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helppro/config"
	domainerrors "helppro/internal/domain/errors"
)

func newGeocoderConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Geocoding = &config.GeocodingConfig{
		BaseURL:   baseURL,
		UserAgent: "TestApp/1.0",
		Timeout:   2 * time.Second,
	}

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestNominatimGeocoder_Resolve(t *testing.T) {
	var gotQuery, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotUserAgent = r.Header.Get("User-Agent")
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat": "45.4642", "lon": "9.1900"}]`))
	}))
	defer server.Close()

	geocoder := NewNominatimGeocoder(newGeocoderConfig(server.URL), discardLogger())

	point, err := geocoder.Resolve(context.Background(), "Italy", "Milano", "20121", "Via Roma 1")
	require.NoError(t, err)

	assert.Equal(t, "Via Roma 1, 20121 Milano, Italy", gotQuery)
	assert.Equal(t, "TestApp/1.0", gotUserAgent)
	assert.InDelta(t, 45.4642, point.Latitude, 1e-9)
	assert.InDelta(t, 9.1900, point.Longitude, 1e-9)
}

func TestNominatimGeocoder_AddressNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	geocoder := NewNominatimGeocoder(newGeocoderConfig(server.URL), discardLogger())

	_, err := geocoder.Resolve(context.Background(), "Italy", "Nowhere", "00000", "Via Inesistente 99")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrAddressNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestNominatimGeocoder_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	geocoder := NewNominatimGeocoder(newGeocoderConfig(server.URL), discardLogger())

	_, err := geocoder.Resolve(context.Background(), "Italy", "Milano", "20121", "Via Roma 1")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrGeocodingUnavailable.ErrorCode(), appErr.ErrorCode())
}

func TestNominatimGeocoder_ProviderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	geocoder := NewNominatimGeocoder(newGeocoderConfig(server.URL), discardLogger())

	_, err := geocoder.Resolve(context.Background(), "Italy", "Milano", "20121", "Via Roma 1")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrGeocodingUnavailable.ErrorCode(), appErr.ErrorCode())
}
