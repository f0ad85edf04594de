package auth

import (
	"errors"
	"fmt"
	"time"

	"interviewdeck/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard registered claims plus the user's email for
// display purposes. The subject claim holds the user ID.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// LocalTokenService issues and verifies HS256 tokens signed with a shared
// secret. This is the default identity mode; JWKS mode delegates issuance to
// an external provider entirely.
type LocalTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewLocalTokenService creates a token service with the given secret and
// token lifetime.
func NewLocalTokenService(secret []byte, ttl time.Duration) (*LocalTokenService, error) {
	if len(secret) == 0 {
		return nil, errors.New("JWT secret cannot be empty")
	}
	return &LocalTokenService{secret: secret, ttl: ttl}, nil
}

// GenerateToken signs a token for the user.
func (s *LocalTokenService) GenerateToken(userID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Email: email,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken validates a locally issued token and returns its user ID.
func (s *LocalTokenService) VerifyToken(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return "", domain.ErrUnauthorized
	}

	if !token.Valid || claims.Subject == "" {
		return "", domain.ErrUnauthorized
	}

	return claims.Subject, nil
}

// Close implements TokenVerifier; the local verifier holds no resources.
func (s *LocalTokenService) Close() error {
	return nil
}
