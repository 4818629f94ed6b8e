package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc, err := NewJWTService("s3cret", time.Hour)
	require.NoError(t, err)

	token, err := svc.Generate("user-1", "a@example.com", "Asha", "customer")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, "Asha", claims.Name)
}

func TestJWTService_Rejects(t *testing.T) {
	svc, _ := NewJWTService("s3cret", time.Hour)
	other, _ := NewJWTService("different", time.Hour)
	token, _ := svc.Generate("user-1", "", "", "customer")

	_, err := other.Verify(token)
	assert.Error(t, err, "wrong key")

	_, err = svc.Verify("garbage")
	assert.Error(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.Verify(token)
	assert.Error(t, err, "expired")
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	_, err := NewJWTService("", time.Hour)
	assert.Error(t, err)
}
