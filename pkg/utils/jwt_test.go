package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	token, err := GenerateJWTToken(42, "Dr. Pérez", "perez@derm.local",
		[]string{"PROFESIONAL"}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := ValidateJWTToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "perez@derm.local", claims.Email)
	assert.True(t, claims.HasRole("PROFESIONAL"))
	assert.False(t, claims.HasRole("GERENTE"))
}

func TestValidateExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	token, err := GenerateJWTToken(42, "Dr. Pérez", "perez@derm.local",
		[]string{"PROFESIONAL"}, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = ValidateJWTToken(token)
	assert.Error(t, err)
}

func TestMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := GenerateJWTToken(1, "x", "x@x", nil, time.Now().Add(time.Hour))
	assert.Error(t, err)
}
