package app

import (
	"errors"
	"time"

	"github.com/Tarsisbs/Backend-APP-TCC/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is how long an issued session token stays valid. There is no
// refresh or revocation; an expired token means a new login.
const tokenTTL = 8 * time.Hour

var (
	// ErrTokenExpired indicates that the token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid indicates a malformed token or a signature mismatch.
	ErrTokenInvalid = errors.New("invalid token")
)

type tokenClaims struct {
	jwt.RegisteredClaims
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

// TokenCodec issues and verifies signed session tokens. Tokens are
// self-contained: verification needs only the shared secret, never the store,
// so the embedded name reflects the value at issuance time.
type TokenCodec struct {
	secret []byte
}

// NewTokenCodec creates a codec signing with the given shared secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Issue signs a token carrying the claim, expiring tokenTTL from now.
func (c *TokenCodec) Issue(claim domain.Claim) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		ID:   claim.ID,
		Name: claim.Name,
	})
	return token.SignedString(c.secret)
}

// Verify checks signature and expiry and returns the embedded claim.
func (c *TokenCodec) Verify(tokenString string) (*domain.Claim, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return &domain.Claim{ID: claims.ID, Name: claims.Name}, nil
}
