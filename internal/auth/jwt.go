// Package auth extracts the caller's identity from bearer tokens issued by
// the accounts service. Token issuance lives elsewhere; this side only needs
// the user id and role claims.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/prontomx/delivery-service/internal/entities"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Principal is the authenticated caller.
type Principal struct {
	UserID string
	Role   entities.Role
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
)

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// ParseToken validates an HS256 token and returns the principal it carries.
func ParseToken(tokenStr, secret string) (Principal, error) {
	if secret == "" {
		return Principal{}, errors.New("jwt secret is empty")
	}

	var c claims
	token, err := jwt.ParseWithClaims(tokenStr, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	role := entities.Role(c.Role)
	switch role {
	case entities.RoleMaster, entities.RoleStore, entities.RoleDelivery, entities.RoleClient:
	default:
		return Principal{}, ErrInvalidToken
	}
	if c.Subject == "" {
		return Principal{}, ErrInvalidToken
	}

	return Principal{UserID: c.Subject, Role: role}, nil
}
