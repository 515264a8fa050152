package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_IssueAndValidate(t *testing.T) {
	svc := NewAuthService("test-secret")

	resp, err := svc.IssueUserToken("user-1", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.UserID)

	claims, err := svc.ValidateUserToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "authenticated", claims.Role)
}

func TestAuthService_RejectsWrongSecret(t *testing.T) {
	resp, err := NewAuthService("one").IssueUserToken("user-1", time.Hour)
	require.NoError(t, err)

	_, err = NewAuthService("two").ValidateUserToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_RejectsExpired(t *testing.T) {
	svc := NewAuthService("test-secret")
	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateUserToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_RequiresSubject(t *testing.T) {
	svc := NewAuthService("test-secret")
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateUserToken(token)
	assert.ErrorIs(t, err, ErrMissingUser)

	_, err = svc.IssueUserToken("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingUser)
}

func TestAuthService_RejectsGarbage(t *testing.T) {
	_, err := NewAuthService("test-secret").ValidateUserToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
