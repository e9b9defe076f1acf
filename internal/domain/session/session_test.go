package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestIssueAndParse(t *testing.T) {
	now := time.Now()
	issued, err := Issue(Session{UserID: 42, Email: "a@b.c", Role: RoleUser}, secret, now)
	require.NoError(t, err)

	parsed, err := Parse(issued, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), parsed.UserID)
	assert.Equal(t, "a@b.c", parsed.Email)
	assert.Equal(t, RoleUser, parsed.Role)
	assert.WithinDuration(t, now.Add(DefaultTTL), parsed.ValidUntil, time.Second)
}

func TestParse_WrongSecret(t *testing.T) {
	issued, err := Issue(Session{UserID: 1, Role: RoleUser}, secret, time.Now())
	require.NoError(t, err)

	_, err = Parse(issued, []byte("other-secret"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	_, err := Parse("not-a-token", secret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// Validity is a pure time comparison, safe to evaluate on every read.
func TestValid(t *testing.T) {
	now := time.Now()
	s := Session{UserID: 1, ValidUntil: now.Add(time.Hour)}

	assert.True(t, s.Valid(now))
	assert.False(t, s.Valid(now.Add(2*time.Hour)))
	assert.False(t, Session{ValidUntil: now.Add(time.Hour)}.Valid(now), "zero user id is never valid")
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, Session{Role: RoleAdmin}.IsAdmin())
	assert.False(t, Session{Role: RoleUser}.IsAdmin())
}
