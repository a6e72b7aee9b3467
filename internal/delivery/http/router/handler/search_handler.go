package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"helppro/internal/delivery/http/response"
	domainerrors "helppro/internal/domain/errors"
	"helppro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SearchHandler holds dependencies for the vendor search handlers.
type SearchHandler struct {
	uc     usecase.SearchUsecase
	logger *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(uc usecase.SearchUsecase, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		uc:     uc,
		logger: logger,
	}
}

// Search handles the vendor search request. Coordinates and radius arrive as
// query parameters; any text filters ride along the same way.
func (h *SearchHandler) Search(c echo.Context) error {
	lat, err := queryFloat(c, "lat")
	if err != nil {
		return errors.WithStack(err)
	}
	lon, err := queryFloat(c, "lon")
	if err != nil {
		return errors.WithStack(err)
	}
	radiusKm, err := queryFloat(c, "radius_km")
	if err != nil {
		return errors.WithStack(err)
	}

	profiles, err := h.uc.SearchVendors(c.Request().Context(), &usecase.SearchVendorsInput{
		Latitude:  lat,
		Longitude: lon,
		RadiusKm:  radiusKm,
		City:      c.QueryParam("city"),
		Postcode:  c.QueryParam("postcode"),
		Address:   c.QueryParam("address"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newVendorResponses(profiles), "Search completed successfully")
}

// queryFloat parses an optional numeric query parameter, returning nil when
// it is absent.
func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("%s must be a number", name))
	}

	return &value, nil
}
