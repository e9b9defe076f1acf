package verification

import (
	"errors"
	"fmt"
)

// ErrDuplicatePending means the subject already has a request under review.
// At most one pending request per subject is allowed at any time.
var ErrDuplicatePending = errors.New("a pending verification request already exists")

// ErrNotFound means the referenced request does not exist (any more).
var ErrNotFound = errors.New("verification request not found")

// ErrReasonRequired is raised at the boundary when a rejection arrives
// without a reason. Cancel does not require one: revoking an approved
// verification is an administrative correction, not a judgment on the
// original evidence.
var ErrReasonRequired = errors.New("rejection reason is required")

// TransitionError reports an attempt to move a request along an edge the
// lifecycle does not have.
type TransitionError struct {
	From, To string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition verification request from %s to %s", e.From, e.To)
}

// transitions is the reviewable, reversible lifecycle. No state is truly
// terminal: every non-pending state can be resumed back to pending because
// human review decisions are reversible.
var transitions = map[string][]string{
	StatusPending:   {StatusApproved, StatusRejected},
	StatusApproved:  {StatusRevoked, StatusPending},
	StatusRejected:  {StatusPending},
	StatusCancelled: {StatusPending},
	StatusRevoked:   {StatusPending},
}

// CanTransition reports whether from→to is a legal lifecycle edge.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func transition(r *Request, to string) error {
	if !CanTransition(r.Status, to) {
		return &TransitionError{From: r.Status, To: to}
	}
	r.Status = to
	return nil
}

// MarkApproved moves pending → approved.
func MarkApproved(r *Request) error {
	if r.Status != StatusPending {
		return &TransitionError{From: r.Status, To: StatusApproved}
	}
	return transition(r, StatusApproved)
}

// MarkRejected moves pending → rejected and records the reason. An empty
// reason is invalid regardless of what the handler checked.
func MarkRejected(r *Request, reason string) error {
	if reason == "" {
		return ErrReasonRequired
	}
	if err := transition(r, StatusRejected); err != nil {
		return err
	}
	r.RejectionReason = &reason
	return nil
}

// MarkRevoked moves approved → revoked. The reason is optional.
func MarkRevoked(r *Request, reason string) error {
	if r.Status != StatusApproved {
		return &TransitionError{From: r.Status, To: StatusRevoked}
	}
	if err := transition(r, StatusRevoked); err != nil {
		return err
	}
	if reason != "" {
		r.RejectionReason = &reason
	}
	return nil
}

// MarkResumed moves any non-pending state back to pending and clears the
// rejection reason.
func MarkResumed(r *Request) error {
	if r.Status == StatusPending {
		return &TransitionError{From: r.Status, To: StatusPending}
	}
	if err := transition(r, StatusPending); err != nil {
		return err
	}
	r.RejectionReason = nil
	return nil
}
