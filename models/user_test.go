package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNormalizeCPF(t *testing.T) {
	assert.Equal(t, "12345678901", NormalizeCPF("123.456.789-01"))
	assert.Equal(t, "12345678901", NormalizeCPF("12345678901"))
	assert.Equal(t, "", NormalizeCPF("abc.def-ghi"))
}

func TestValidCPF(t *testing.T) {
	assert.True(t, ValidCPF("123.456.789-01"))
	assert.True(t, ValidCPF("12345678901"))
	assert.False(t, ValidCPF("1234567890"))
	assert.False(t, ValidCPF("123456789012"))
	assert.False(t, ValidCPF(""))
}

func TestUserCheckPassword(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	u := User{Password: string(hashed)}
	assert.True(t, u.CheckPassword("s3cret"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestSetPassword(t *testing.T) {
	u := User{ID: 8, Password: "old-hash"}
	require.NoError(t, u.SetPassword("new-secret-123"))

	assert.NotEqual(t, "new-secret-123", u.Password, "password must never be stored raw")
	assert.True(t, strings.HasPrefix(u.Password, "$2a$"))
	assert.True(t, u.CheckPassword("new-secret-123"))
	assert.False(t, u.CheckPassword("old-hash"))
}

func TestUserRoleHelpers(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleStudent}).IsAdmin())
	assert.True(t, (&User{Role: RoleStudent}).IsStudent())
	assert.False(t, (&User{Role: RoleMentor}).IsStudent())
}
