package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		ok       bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusRevoked, false},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusRevoked, true},
		{StatusApproved, StatusPending, true},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusPending, true},
		{StatusRejected, StatusApproved, false},
		{StatusCancelled, StatusPending, true},
		{StatusRevoked, StatusPending, true},
		{StatusRevoked, StatusApproved, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestMarkApproved(t *testing.T) {
	r := &Request{Status: StatusPending}
	require.NoError(t, MarkApproved(r))
	assert.Equal(t, StatusApproved, r.Status)

	r = &Request{Status: StatusRejected}
	err := MarkApproved(r)
	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, StatusRejected, r.Status, "failed transition must not mutate state")
}

func TestMarkRejected(t *testing.T) {
	r := &Request{Status: StatusPending}
	require.NoError(t, MarkRejected(r, "blurry document"))
	assert.Equal(t, StatusRejected, r.Status)
	require.NotNil(t, r.RejectionReason)
	assert.Equal(t, "blurry document", *r.RejectionReason)

	r = &Request{Status: StatusPending}
	assert.ErrorIs(t, MarkRejected(r, ""), ErrReasonRequired)
	assert.Equal(t, StatusPending, r.Status)
}

func TestMarkRevoked(t *testing.T) {
	r := &Request{Status: StatusApproved}
	require.NoError(t, MarkRevoked(r, ""))
	assert.Equal(t, StatusRevoked, r.Status)
	assert.Nil(t, r.RejectionReason, "reason is optional for revoke")

	r = &Request{Status: StatusApproved}
	require.NoError(t, MarkRevoked(r, "brand guidelines violation"))
	require.NotNil(t, r.RejectionReason)

	r = &Request{Status: StatusPending}
	var te *TransitionError
	require.ErrorAs(t, MarkRevoked(r, "x"), &te)
}

func TestMarkResumed_ClearsReason(t *testing.T) {
	reason := "blurry document"
	for _, from := range []string{StatusApproved, StatusRejected, StatusCancelled, StatusRevoked} {
		r := &Request{Status: from, RejectionReason: &reason}
		require.NoError(t, MarkResumed(r), from)
		assert.Equal(t, StatusPending, r.Status)
		assert.Nil(t, r.RejectionReason)
	}

	r := &Request{Status: StatusPending}
	var te *TransitionError
	require.ErrorAs(t, MarkResumed(r), &te)
}

// reject then resume must land back at pending with no reason attached.
func TestRejectThenResume(t *testing.T) {
	r := &Request{Status: StatusPending}
	require.NoError(t, MarkRejected(r, "incomplete info"))
	require.NoError(t, MarkResumed(r))
	assert.Equal(t, StatusPending, r.Status)
	assert.Nil(t, r.RejectionReason)
}
