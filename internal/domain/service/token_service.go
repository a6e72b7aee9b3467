package service

// TokenService issues and validates access tokens for authenticated clients.
type TokenService interface {
	// GenerateToken issues a signed access token whose subject is the
	// user's email.
	GenerateToken(email string) (string, error)

	// ValidateToken verifies a token's signature and expiry and returns
	// the subject email.
	ValidateToken(token string) (string, error)
}
