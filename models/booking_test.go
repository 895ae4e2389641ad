package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusTransitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusAccepted))
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusAccepted.CanTransitionTo(StatusCompleted))
	assert.True(t, StatusAccepted.CanTransitionTo(StatusCancelled))

	assert.False(t, StatusPending.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusPending))

	// Self-transitions are permitted as no-ops.
	assert.True(t, StatusCompleted.CanTransitionTo(StatusCompleted))

	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusAccepted.Terminal())
}

func TestSessionStepTransitions(t *testing.T) {
	assert.True(t, StepNone.CanTransitionTo(StepConsultation))
	assert.True(t, StepConsultation.CanTransitionTo(StepConsultationPendingClient))
	assert.True(t, StepConsultationPendingClient.CanTransitionTo(StepConsultation))
	assert.True(t, StepBeforePhotos.CanTransitionTo(StepServiceInProgress))
	assert.True(t, StepAfterPhotos.CanTransitionTo(StepFinishReview))
	assert.True(t, StepAfterPhotos.CanTransitionTo(StepDone))

	assert.False(t, StepNone.CanTransitionTo(StepBeforePhotos))
	assert.False(t, StepServiceInProgress.CanTransitionTo(StepDone))
	assert.False(t, StepDone.CanTransitionTo(StepConsultation))

	assert.False(t, StepConsultation.RequiresApproval())
	assert.True(t, StepBeforePhotos.RequiresApproval())
	assert.True(t, StepDone.RequiresApproval())
}

func TestParseBoundaries(t *testing.T) {
	_, ok := ParseBookingStatus("ACCEPTED")
	assert.True(t, ok)
	_, ok = ParseBookingStatus("accepted")
	assert.False(t, ok)

	_, ok = ParseSessionStep("BEFORE_PHOTOS")
	assert.True(t, ok)
	_, ok = ParseSessionStep("SHAMPOO")
	assert.False(t, ok)

	_, ok = ParseLocationType("MOBILE")
	assert.True(t, ok)
	_, ok = ParseLocationType("HOME")
	assert.False(t, ok)
}

func TestBookingOverlaps(t *testing.T) {
	start := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	b := &Booking{ScheduledFor: start, TotalDurationMinutes: 60, BufferMinutes: 15}

	assert.Equal(t, start.Add(75*time.Minute), b.End())

	// Half-open: an interval ending exactly at the start does not overlap,
	// nor does one starting exactly at the buffered end.
	assert.False(t, b.Overlaps(start.Add(-time.Hour), start))
	assert.False(t, b.Overlaps(b.End(), b.End().Add(time.Hour)))
	assert.True(t, b.Overlaps(start.Add(-time.Minute), start.Add(time.Minute)))
	assert.True(t, b.Overlaps(b.End().Add(-time.Minute), b.End().Add(time.Hour)))
}
