// Package lifecycle holds the client-observable claim state machine. The
// remote service is authoritative for every transition; these guards only
// decide which actions the portal offers and how an optimistic update is
// applied or rolled back.
package lifecycle

import (
	"errors"

	"sevasetu/models"
)

// Canonical claim statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Legacy queue labels. Older records carry these in the status field; they
// map onto the canonical enum at the boundary and never drive transitions.
const (
	QueueGreen  = "green"
	QueueOrange = "orange"
	QueueRed    = "red"
)

// MaxRetries caps resubmission of a rejected claim.
const MaxRetries = 3

var (
	ErrNotPending   = errors.New("claim is not pending")
	ErrNotApproved  = errors.New("claim is not approved")
	ErrNotRetryable = errors.New("claim cannot be retried")
)

// NormalizeStatus maps legacy queue labels onto the canonical status enum.
// Unknown values pass through untouched so the server message stays visible.
func NormalizeStatus(raw string) string {
	switch raw {
	case QueueGreen:
		return StatusApproved
	case QueueOrange:
		return StatusPending
	case QueueRed:
		return StatusRejected
	default:
		return raw
	}
}

// CanApprove reports whether the approve action is offered for the claim.
func CanApprove(c *models.Claim) bool {
	return NormalizeStatus(c.Status) == StatusPending
}

// CanReject reports whether the reject action is offered for the claim.
func CanReject(c *models.Claim) bool {
	return NormalizeStatus(c.Status) == StatusPending
}

// CanUndoApprove reports whether undo-approve is offered for the claim.
func CanUndoApprove(c *models.Claim) bool {
	return NormalizeStatus(c.Status) == StatusApproved
}

// CanRetry reports whether the owner may resubmit. Offered only while the
// claim is rejected and under the retry cap.
func CanRetry(c *models.Claim) bool {
	return NormalizeStatus(c.Status) == StatusRejected && c.Retries < MaxRetries
}

// Approve applies the optimistic pending→approved transition.
func Approve(c *models.Claim) error {
	if !CanApprove(c) {
		return ErrNotPending
	}
	c.Status = StatusApproved
	return nil
}

// Reject applies the optimistic pending→rejected transition. Retries grow by
// exactly one per rejection and never decrease.
func Reject(c *models.Claim) error {
	if !CanReject(c) {
		return ErrNotPending
	}
	c.Status = StatusRejected
	c.Retries++
	return nil
}

// UndoApprove applies the approved→pending transition. Retries are untouched.
func UndoApprove(c *models.Claim) error {
	if !CanUndoApprove(c) {
		return ErrNotApproved
	}
	c.Status = StatusPending
	return nil
}

// Retry applies the rejected→pending resubmission transition. The retry
// counter carries over; it is not reset by a new cycle.
func Retry(c *models.Claim) error {
	if !CanRetry(c) {
		return ErrNotRetryable
	}
	c.Status = StatusPending
	return nil
}
