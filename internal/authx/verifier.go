package authx

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUnauthorized covers every rejection: bad signature, expired token,
// malformed claims, identity without an email.
var ErrUnauthorized = errors.New("unauthorized")

// Identity is the verified account behind a request. Email is the only field
// the API relies on.
type Identity struct {
	Email string
}

// Gate converts request credentials into an identity or a rejection.
type Gate interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// TokenVerifier validates HMAC-signed bearer tokens issued by the identity
// provider and extracts the account email claim.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret []byte) *TokenVerifier {
	return &TokenVerifier{secret: secret}
}

func (v *TokenVerifier) Verify(_ context.Context, tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrUnauthorized
	}
	email, _ := claims["email"].(string)
	if email == "" {
		// An identity without an email cannot be attributed; treat it the
		// same as a failed verification.
		return Identity{}, ErrUnauthorized
	}
	return Identity{Email: email}, nil
}

var _ Gate = (*TokenVerifier)(nil)
