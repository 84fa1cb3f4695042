package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fhsis/internal/domain"
)

func TestSubmissionStatusAt_OnTime(t *testing.T) {
	dueAt := time.Date(2025, 7, 5, 23, 59, 59, 0, time.UTC)
	now := time.Date(2025, 7, 3, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, domain.SubmissionSubmitted, domain.SubmissionStatusAt(dueAt, now))
}

func TestSubmissionStatusAt_PastDue(t *testing.T) {
	dueAt := time.Date(2025, 7, 5, 23, 59, 59, 0, time.UTC)
	now := time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, domain.SubmissionSubmittedLate, domain.SubmissionStatusAt(dueAt, now))
}

func TestSubmissionStatusAt_ExactlyAtDueDate(t *testing.T) {
	dueAt := time.Date(2025, 7, 5, 23, 59, 59, 0, time.UTC)

	// On the dot is still on time; only strictly after counts as late.
	assert.Equal(t, domain.SubmissionSubmitted, domain.SubmissionStatusAt(dueAt, dueAt))
}

func TestSubmissionStatus_Finalized(t *testing.T) {
	assert.False(t, domain.SubmissionPending.Finalized())
	assert.True(t, domain.SubmissionSubmitted.Finalized())
	assert.True(t, domain.SubmissionSubmittedLate.Finalized())
}
