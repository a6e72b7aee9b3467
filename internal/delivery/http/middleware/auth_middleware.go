package middleware

import (
	"strings"

	deliverycontext "helppro/internal/delivery/context"
	domainerrors "helppro/internal/domain/errors"
	"helppro/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores its subject email on the
// context. Failures surface as the invalid-token error; the error handler
// renders the 401 with its bearer challenge.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrInvalidToken.WithDetails("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrInvalidToken.WithDetails("authorization header must carry a bearer token")
		}

		email, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken.WrapMessage("token validation failed")
		}

		deliverycontext.SetUserEmail(c, email)

		return next(c)
	}
}
