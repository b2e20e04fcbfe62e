package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/varela/foro-api/internal/domain"
)

const tokenIssuer = "foro-api"

var (
	ErrMissingToken = errors.New("missing token")
	ErrVerification = errors.New("token verification failed")
	ErrInvalidToken = errors.New("invalid token")
	ErrSigning      = errors.New("token signing failed")
)

// Expiry timestamps are computed in a fixed UTC-5 offset.
var tokenZone = time.FixedZone("UTC-5", -5*60*60)

// TokenCodec issues and verifies signed HS256 tokens. It holds no state
// beyond the signing secret, which is read-only after construction.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue builds a signed token asserting the user's email as subject,
// with the user id as a custom claim.
func (c *TokenCodec) Issue(user *domain.User) (string, error) {
	now := time.Now().In(tokenZone)
	claims := jwt.MapClaims{
		"iss": tokenIssuer,
		"sub": user.Email,
		"id":  user.ID.String(),
		"exp": now.Add(c.ttl).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSigning, err)
	}
	return signed, nil
}

// VerifySubject checks the token's signature, issuer and expiry, and
// returns the subject. It never returns a subject from an unverified token.
func (c *TokenCodec) VerifySubject(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrMissingToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrVerification, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrVerification
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrInvalidToken
	}
	return subject, nil
}
