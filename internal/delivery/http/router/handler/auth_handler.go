package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "helppro/internal/delivery/context"
	"helppro/internal/delivery/http/response"
	domainerrors "helppro/internal/domain/errors"
	"helppro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for client authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name"`
	Password string `json:"password" validate:"required"`
}

// tokenResponse is the token endpoint's payload. Unlike every other route it
// is emitted bare, without the response envelope, so password-grant clients
// can consume it directly.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Signup handles the client registration request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user), "User registered successfully")
}

// Token handles the password-grant login request. Credentials arrive as form
// fields named username and password.
func (h *AuthHandler) Token(c echo.Context) error {
	email := c.FormValue("username")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return domainerrors.ErrValidationFailed.WithDetails("username and password are required")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
	})
}

// Me handles the request for the authenticated user's own record.
func (h *AuthHandler) Me(c echo.Context) error {
	email := deliverycontext.GetUserEmail(c)
	if email == "" {
		return domainerrors.ErrInvalidToken.WithDetails("no authenticated subject on request")
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Profile retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
