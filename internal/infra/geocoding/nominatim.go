// Package geocoding implements the Geocoder domain service against a
// Nominatim-compatible search endpoint.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"helppro/config"
	"helppro/internal/domain/entity"
	domainerrors "helppro/internal/domain/errors"
	"helppro/internal/domain/service"
	"helppro/internal/errors"
)

// nominatimResult is the subset of a Nominatim search result we consume.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

type nominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
	logger    *slog.Logger
}

// NewNominatimGeocoder builds a Geocoder that queries a Nominatim-compatible
// provider. The provider's usage policy requires an identifying User-Agent.
func NewNominatimGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	return &nominatimGeocoder{
		baseURL:   cfg.Geocoding.BaseURL,
		userAgent: cfg.Geocoding.UserAgent,
		client:    &http.Client{Timeout: cfg.Geocoding.Timeout},
		logger:    logger,
	}
}

// Resolve geocodes a structured postal address. The query is assembled as
// "address, postcode city, country" and only the best match is requested.
func (g *nominatimGeocoder) Resolve(ctx context.Context, country, city, postcode, address string) (*entity.GeoPoint, error) {
	query := fmt.Sprintf("%s, %s %s, %s", address, postcode, city, country)

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build geocoding request")
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.WarnContext(ctx, "geocoding request failed", slog.Any("error", err))

		return nil, domainerrors.ErrGeocodingUnavailable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.WarnContext(ctx, "geocoding provider returned non-OK status",
			slog.Int("status", resp.StatusCode))

		return nil, domainerrors.ErrGeocodingUnavailable.WithDetails(
			fmt.Sprintf("provider returned status %d", resp.StatusCode))
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, domainerrors.ErrGeocodingUnavailable.WrapMessage("decode geocoding response")
	}

	if len(results) == 0 {
		return nil, domainerrors.ErrAddressNotFound.WithDetails(query)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, domainerrors.ErrGeocodingUnavailable.WrapMessage("parse latitude")
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, domainerrors.ErrGeocodingUnavailable.WrapMessage("parse longitude")
	}

	return &entity.GeoPoint{Latitude: lat, Longitude: lon}, nil
}
