package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "helppro/internal/delivery/context"
	appmiddleware "helppro/internal/delivery/http/middleware"
	"helppro/internal/delivery/http/validator"
	"helppro/internal/domain/entity"
	domainerrors "helppro/internal/domain/errors"
	mocksusecase "helppro/internal/mocks/usecase"
	"helppro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestEcho builds an echo instance with the same validator and error
// handler the real server installs, so handler errors render the way clients
// see them.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = appmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestAuthHandler_Signup_Created(t *testing.T) {
	uc := mocksusecase.NewMockAuthUsecase(t)
	uc.EXPECT().Signup(mock.Anything, &usecase.SignupInput{
		Email:    "mario@example.com",
		FullName: "Mario Rossi",
		Password: "hunter2",
	}).Return(&entity.User{
		ID:             42,
		Email:          "mario@example.com",
		FullName:       "Mario Rossi",
		HashedPassword: "$2a$10$secret",
		Role:           entity.RoleClient,
	}, nil)

	e := newTestEcho(t)
	e.POST("/auth/signup", NewAuthHandler(uc, testLogger()).Signup)

	body := `{"email":"mario@example.com","full_name":"Mario Rossi","password":"hunter2"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "mario@example.com")
	assert.NotContains(t, rec.Body.String(), "$2a$10$secret")
}

func TestAuthHandler_Signup_InvalidEmail(t *testing.T) {
	uc := mocksusecase.NewMockAuthUsecase(t)

	e := newTestEcho(t)
	e.POST("/auth/signup", NewAuthHandler(uc, testLogger()).Signup)

	body := `{"email":"not-an-email","password":"hunter2"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Token_ReturnsBareTokenPayload(t *testing.T) {
	uc := mocksusecase.NewMockAuthUsecase(t)
	uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{
		Email:    "mario@example.com",
		Password: "hunter2",
	}).Return(&usecase.LoginOutput{
		AccessToken: "signed.jwt.token",
		TokenType:   "bearer",
	}, nil)

	e := newTestEcho(t)
	e.POST("/auth/token", NewAuthHandler(uc, testLogger()).Token)

	form := "username=mario%40example.com&password=hunter2"
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// The token endpoint skips the response envelope entirely.
	assert.JSONEq(t, `{"access_token":"signed.jwt.token","token_type":"bearer"}`, rec.Body.String())
}

func TestAuthHandler_Token_InvalidCredentials(t *testing.T) {
	uc := mocksusecase.NewMockAuthUsecase(t)
	uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	e := newTestEcho(t)
	e.POST("/auth/token", NewAuthHandler(uc, testLogger()).Token)

	form := "username=mario%40example.com&password=wrong"
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func TestAuthHandler_Token_MissingCredentials(t *testing.T) {
	uc := mocksusecase.NewMockAuthUsecase(t)

	e := newTestEcho(t)
	e.POST("/auth/token", NewAuthHandler(uc, testLogger()).Token)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader("username=mario%40example.com"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Me_ReturnsCurrentUser(t *testing.T) {
	uc := mocksusecase.NewMockAuthUsecase(t)
	uc.EXPECT().CurrentUser(mock.Anything, "mario@example.com").Return(&entity.User{
		ID:    42,
		Email: "mario@example.com",
		Role:  entity.RoleClient,
	}, nil)

	e := newTestEcho(t)
	handler := NewAuthHandler(uc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/auth/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetUserEmail(c, "mario@example.com")

	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mario@example.com")
}
