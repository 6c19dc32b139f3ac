// Package auth verifies access tokens issued by the wallet-identity bridge.
// The bridge signs short-lived HS256 tokens with a secret shared with this
// service; the wallet authentication protocol itself happens upstream.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken indicates the bearer token failed verification.
var ErrInvalidToken = errors.New("invalid access token")

// Identity is the verified subject of a wallet session token.
type Identity struct {
	UserID        string
	WalletAddress string
}

// Verifier validates wallet session tokens.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier creates a verifier for tokens signed with the given shared
// secret. When issuer is non-empty the token's iss claim must match.
func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer}
}

// Verify parses and validates a token string, returning the identity it
// carries. Expired, unsigned, or foreign-issuer tokens are rejected.
func (v *Verifier) Verify(tokenString string) (Identity, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return Identity{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	wallet, _ := claims["wallet_address"].(string)

	return Identity{UserID: sub, WalletAddress: wallet}, nil
}
