package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := hashPassword("sunny day 42")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("sunny day 42")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")))
}

func TestHashPasswordRejectsOverlongInput(t *testing.T) {
	// bcrypt caps input at 72 bytes; the error must surface, never an
	// empty hash
	hash, err := hashPassword(strings.Repeat("a", 100))
	assert.Error(t, err)
	assert.Empty(t, hash)
}

func TestIsPasswordStrong(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{"abc12345", true},
		{"longenough1", true},
		{"short1", false},
		{"lettersonly", false},
		{"12345678", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, isPasswordStrong(tt.password), tt.password)
	}
}

func TestIsEmailValid(t *testing.T) {
	assert.True(t, isEmailValid("user@example.com"))
	assert.True(t, isEmailValid("first.last+tag@sub.domain.io"))
	assert.False(t, isEmailValid("not-an-email"))
	assert.False(t, isEmailValid("missing@tld"))
	assert.False(t, isEmailValid("@example.com"))
}
