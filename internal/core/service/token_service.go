package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bloglist/bloglist-api/internal/core/domain"
	"github.com/bloglist/bloglist-api/internal/core/ports"
)

// TokenService signs and verifies identity tokens (HS256). The signing secret
// is injected at construction, never read from a global.
type TokenService struct {
	secret string
	ttl    time.Duration
}

// NewTokenService creates a TokenService. A ttl of zero or less means issued
// tokens carry no expiry and are valid indefinitely.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue produces a signed token encoding {username, id}.
func (s *TokenService) Issue(username, userID string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"id":       userID,
	}
	if s.ttl > 0 {
		claims["exp"] = time.Now().Add(s.ttl).Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

// Verify decodes a token and extracts its claims. Signature, algorithm and,
// when present, expiry are all checked.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	if token == "" {
		return nil, domain.ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	username, _ := claims["username"].(string)
	userID, _ := claims["id"].(string)
	if username == "" || userID == "" {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{Username: username, UserID: userID}, nil
}
