package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sevasetu/models"
)

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]string{
		QueueGreen:     StatusApproved,
		QueueOrange:    StatusPending,
		QueueRed:       StatusRejected,
		StatusPending:  StatusPending,
		StatusApproved: StatusApproved,
		StatusRejected: StatusRejected,
		"weird":        "weird",
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeStatus(raw), "raw=%s", raw)
	}
}

func TestApproveOnlyFromPending(t *testing.T) {
	claim := &models.Claim{ID: "c1", Status: StatusPending}

	require.NoError(t, Approve(claim))
	assert.Equal(t, StatusApproved, claim.Status)

	// Approving again is refused; the claim is untouched.
	err := Approve(claim)
	require.ErrorIs(t, err, ErrNotPending)
	assert.Equal(t, StatusApproved, claim.Status)
}

func TestRejectIncrementsRetriesByExactlyOne(t *testing.T) {
	claim := &models.Claim{ID: "c1", Status: StatusPending, Retries: 0}

	require.NoError(t, Reject(claim))
	assert.Equal(t, StatusRejected, claim.Status)
	assert.Equal(t, 1, claim.Retries)

	// Rejecting a non-pending claim neither transitions nor counts.
	require.ErrorIs(t, Reject(claim), ErrNotPending)
	assert.Equal(t, 1, claim.Retries)
}

func TestUndoApproveOnlyFromApproved(t *testing.T) {
	claim := &models.Claim{ID: "c1", Status: StatusApproved, Retries: 2}

	require.NoError(t, UndoApprove(claim))
	assert.Equal(t, StatusPending, claim.Status)
	assert.Equal(t, 2, claim.Retries, "undo never touches retries")

	require.ErrorIs(t, UndoApprove(claim), ErrNotApproved)
}

func TestRetryOfferedOnlyUnderCap(t *testing.T) {
	claim := &models.Claim{ID: "c1", Status: StatusRejected, Retries: 2}
	assert.True(t, CanRetry(claim))

	require.NoError(t, Retry(claim))
	assert.Equal(t, StatusPending, claim.Status)
	assert.Equal(t, 2, claim.Retries, "retry carries the counter into the new cycle")

	// Third rejection hits the cap.
	require.NoError(t, Reject(claim))
	assert.Equal(t, 3, claim.Retries)
	assert.False(t, CanRetry(claim))
	require.ErrorIs(t, Retry(claim), ErrNotRetryable)
}

func TestRetriesOnlyGrow(t *testing.T) {
	claim := &models.Claim{ID: "c1", Status: StatusPending}

	for i := 1; i <= MaxRetries; i++ {
		require.NoError(t, Reject(claim))
		assert.Equal(t, i, claim.Retries)
		if i < MaxRetries {
			require.NoError(t, Retry(claim))
			assert.Equal(t, i, claim.Retries)
		}
	}
	assert.False(t, CanRetry(claim))
}

func TestGuardsNormalizeLegacyLabels(t *testing.T) {
	assert.True(t, CanApprove(&models.Claim{Status: QueueOrange}))
	assert.True(t, CanUndoApprove(&models.Claim{Status: QueueGreen}))
	assert.True(t, CanRetry(&models.Claim{Status: QueueRed, Retries: 0}))
}
