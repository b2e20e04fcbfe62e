package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varela/foro-api/internal/auth"
	"github.com/varela/foro-api/internal/domain"
)

const testSecret = "test-jwt-secret-key-for-testing-only"

func testUser() *domain.User {
	return &domain.User{
		ID:    uuid.New(),
		Name:  "ana",
		Email: "ana@x.com",
	}
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, 24*time.Hour)
	user := testUser()

	token, err := codec.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := codec.VerifySubject(token)
	require.NoError(t, err)
	assert.Equal(t, user.Email, subject)
}

func TestTokenCodec_VerifySubject_MissingToken(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, 24*time.Hour)

	_, err := codec.VerifySubject("")
	assert.ErrorIs(t, err, auth.ErrMissingToken)
}

func TestTokenCodec_VerifySubject_TamperedSignature(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, 24*time.Hour)

	token, err := codec.Issue(testUser())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = codec.VerifySubject(tampered)
	assert.ErrorIs(t, err, auth.ErrVerification)
}

func TestTokenCodec_VerifySubject_WrongSecret(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, 24*time.Hour)
	other := auth.NewTokenCodec("some-other-secret", 24*time.Hour)

	token, err := other.Issue(testUser())
	require.NoError(t, err)

	_, err = codec.VerifySubject(token)
	assert.ErrorIs(t, err, auth.ErrVerification)
}

func TestTokenCodec_VerifySubject_Expired(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, -time.Hour)

	token, err := codec.Issue(testUser())
	require.NoError(t, err)

	_, err = codec.VerifySubject(token)
	assert.ErrorIs(t, err, auth.ErrVerification)
}

func TestTokenCodec_VerifySubject_WrongIssuer(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, 24*time.Hour)

	claims := jwt.MapClaims{
		"iss": "someone-else",
		"sub": "ana@x.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = codec.VerifySubject(token)
	assert.ErrorIs(t, err, auth.ErrVerification)
}

func TestTokenCodec_VerifySubject_EmptySubject(t *testing.T) {
	codec := auth.NewTokenCodec(testSecret, 24*time.Hour)

	// Properly signed token with a blank subject claim
	claims := jwt.MapClaims{
		"iss": "foro-api",
		"sub": "",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = codec.VerifySubject(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
