package auth

import (
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueParseRoundTrip(t *testing.T) {
	codec := NewCodec("test-secret", false)

	token, err := codec.Issue("alice@example.com", "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)

	// expiry sits one hour out
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseExpiredToken(t *testing.T) {
	codec := NewCodec("test-secret", false)

	expired := Claims{
		Email: "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = codec.Parse(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseForgedToken(t *testing.T) {
	attacker := NewCodec("wrong-secret", false)
	codec := NewCodec("test-secret", false)

	token, err := attacker.Issue("alice@example.com", "Alice")
	require.NoError(t, err)

	_, err = codec.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsWrongSigningMethod(t *testing.T) {
	codec := NewCodec("test-secret", false)

	claims := Claims{
		Email: "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = codec.Parse(token)
	assert.Error(t, err)
}

func TestParseMalformedToken(t *testing.T) {
	codec := NewCodec("test-secret", false)

	_, err := codec.Parse("not-a-token")
	assert.Error(t, err)
}
