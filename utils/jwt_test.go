package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgroHub-Uni-RV/Ypetec/models"
)

func TestTokenRoundTrip(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	user := models.User{ID: 42, Name: "Maria", Role: models.RoleStudent}
	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "Maria", claims.Name)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseTokenRejectsTampered(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	token, err := GenerateToken(models.User{ID: 1, Name: "x", Role: models.RoleAdmin})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	_, err = ParseToken(tampered)
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	InitJWT("secret-a", time.Hour)
	token, err := GenerateToken(models.User{ID: 1, Name: "x", Role: models.RoleAdmin})
	require.NoError(t, err)

	InitJWT("secret-b", time.Hour)
	_, err = ParseToken(token)
	assert.Error(t, err)
}
