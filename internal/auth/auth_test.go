package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewTokens_RejectsShortSecret(t *testing.T) {
	_, err := NewTokens("short", time.Hour)
	assert.ErrorIs(t, err, ErrWeakSecret)
}

func TestTokens_RoundTrip(t *testing.T) {
	tokens, err := NewTokens(testSecret, time.Hour)
	require.NoError(t, err)

	signed, err := tokens.Issue(42, "a@example.com")
	require.NoError(t, err)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
}

func TestTokens_Expired(t *testing.T) {
	tokens, err := NewTokens(testSecret, time.Hour)
	require.NoError(t, err)

	issuedAt := time.Now().Add(-2 * time.Hour)
	tokens.now = func() time.Time { return issuedAt }
	signed, err := tokens.Issue(1, "a@example.com")
	require.NoError(t, err)

	tokens.now = time.Now
	_, err = tokens.Verify(signed)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestTokens_WrongSecretOrGarbage(t *testing.T) {
	tokens, err := NewTokens(testSecret, time.Hour)
	require.NoError(t, err)
	other, err := NewTokens(strings.Repeat("z", 32), time.Hour)
	require.NoError(t, err)

	signed, err := other.Issue(1, "a@example.com")
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokens_RejectsOtherAlgorithms(t *testing.T) {
	tokens, err := NewTokens(testSecret, time.Hour)
	require.NoError(t, err)

	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123", hash)

	assert.NoError(t, CheckPassword(hash, "Secret123"))
	assert.ErrorIs(t, CheckPassword(hash, "secret123"), ErrInvalidPassword)
}
