package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"helppro/config"
	"helppro/internal/domain/service"
	"helppro/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string        // Secret key for signing access tokens.
	accessTTL time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: cfg.Auth.AccessTokenTTL,
	}, nil
}

// GenerateToken creates a signed access token whose subject is the user's email.
func (s *jwtService) GenerateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub": email,                              // Subject (who the token is for)
		"iat": time.Now().Unix(),                  // Issued At
		"exp": time.Now().Add(s.accessTTL).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the token's signature and expiry and returns the subject email.
func (s *jwtService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return "", errors.Wrap(err, "parse token")
	}
	if !token.Valid {
		return "", errors.New("token is not valid")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", errors.New("token has no subject")
	}

	return subject, nil
}
