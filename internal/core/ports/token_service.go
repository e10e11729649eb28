package ports

// TokenClaims is the identity carried by a signed bearer token.
type TokenClaims struct {
	Username string
	UserID   string
}

// TokenService issues and verifies signed identity tokens.
type TokenService interface {
	// Issue produces a signed token encoding exactly {username, id}.
	Issue(username, userID string) (string, error)
	// Verify decodes a token and returns its claims. Returns
	// domain.ErrInvalidToken when the token is missing, malformed, expired
	// or carries a bad signature.
	Verify(token string) (*TokenClaims, error)
}
