package security

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrMissingEmail = errors.New("token carries no email claim")
)

// IdentityClaims is the verified identity extracted from a bearer token.
type IdentityClaims struct {
	Email  string
	Claims map[string]interface{}
}

// TokenVerifier resolves a bearer token to the caller's verified email.
// Implementations: Firebase ID tokens (production) and HS256 JWT (dev/test).
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*IdentityClaims, error)
}

// UserClaims defines the claims accepted by the JWT verifier
type UserClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type jwtVerifier struct {
	secret []byte
}

// NewJWTVerifier returns a TokenVerifier for HS256 tokens signed with secret.
func NewJWTVerifier(secret string) TokenVerifier {
	return &jwtVerifier{secret: []byte(secret)}
}

func (v *jwtVerifier) Verify(ctx context.Context, tokenString string) (*IdentityClaims, error) {
	claims := &UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Email == "" {
		return nil, ErrMissingEmail
	}
	return &IdentityClaims{
		Email:  claims.Email,
		Claims: map[string]interface{}{"sub": claims.Subject},
	}, nil
}

// IssueToken signs an HS256 token for email, valid for ttl. Used by tests
// and local development against the jwt auth mode.
func IssueToken(secret, email string, ttl time.Duration) (string, error) {
	claims := UserClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "apnrghor-backend",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
