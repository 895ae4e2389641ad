package models

import "time"

// BookingStatus is the overall lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusAccepted  BookingStatus = "ACCEPTED"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// statusTransitions is the closed transition table for BookingStatus.
// COMPLETED and CANCELLED are terminal.
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusAccepted, StatusCancelled},
	StatusAccepted:  {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ParseBookingStatus rejects unknown values at the boundary.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusAccepted, StatusCompleted, StatusCancelled:
		return BookingStatus(s), true
	}
	return "", false
}

func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether s -> next is a legal status transition.
// A self-transition is always permitted as a no-op.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// SessionStep tracks the in-person workflow of an active booking,
// independent of the overall BookingStatus.
type SessionStep string

const (
	StepNone                      SessionStep = "NONE"
	StepConsultation              SessionStep = "CONSULTATION"
	StepConsultationPendingClient SessionStep = "CONSULTATION_PENDING_CLIENT"
	StepBeforePhotos              SessionStep = "BEFORE_PHOTOS"
	StepServiceInProgress         SessionStep = "SERVICE_IN_PROGRESS"
	StepFinishReview              SessionStep = "FINISH_REVIEW"
	StepAfterPhotos               SessionStep = "AFTER_PHOTOS"
	StepDone                      SessionStep = "DONE"
)

var sessionStepTransitions = map[SessionStep][]SessionStep{
	StepNone:                      {StepConsultation},
	StepConsultation:              {StepConsultationPendingClient, StepBeforePhotos},
	StepConsultationPendingClient: {StepBeforePhotos, StepConsultation},
	StepBeforePhotos:              {StepServiceInProgress, StepConsultation},
	StepServiceInProgress:         {StepFinishReview},
	StepFinishReview:              {StepAfterPhotos},
	StepAfterPhotos:               {StepDone, StepFinishReview},
	StepDone:                      {},
}

// ParseSessionStep rejects unknown values at the boundary.
func ParseSessionStep(s string) (SessionStep, bool) {
	switch SessionStep(s) {
	case StepNone, StepConsultation, StepConsultationPendingClient, StepBeforePhotos,
		StepServiceInProgress, StepFinishReview, StepAfterPhotos, StepDone:
		return SessionStep(s), true
	}
	return "", false
}

func (s SessionStep) CanTransitionTo(next SessionStep) bool {
	for _, allowed := range sessionStepTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RequiresApproval reports whether entering this step requires the client's
// consultation approval to already be granted.
func (s SessionStep) RequiresApproval() bool {
	switch s {
	case StepBeforePhotos, StepServiceInProgress, StepFinishReview, StepAfterPhotos, StepDone:
		return true
	}
	return false
}

// Booking is the canonical appointment record. Rows are never deleted;
// cancellation is a status, not a row deletion.
type Booking struct {
	ID             string `bson:"id" json:"id"`
	ProfessionalID string `bson:"professional_id" json:"professionalId"`
	ClientID       string `bson:"client_id" json:"clientId"`
	ServiceID      string `bson:"service_id" json:"serviceId"`
	OfferingID     string `bson:"offering_id" json:"offeringId"`

	ScheduledFor         time.Time `bson:"scheduled_for" json:"scheduledFor"` // UTC instant
	TotalDurationMinutes int       `bson:"total_duration_minutes" json:"totalDurationMinutes"`
	BufferMinutes        int       `bson:"buffer_minutes" json:"bufferMinutes"`
	// LocationTimeZone is an IANA snapshot taken at creation. Immutable except
	// through a reschedule that moves the booking to another location.
	LocationTimeZone string `bson:"location_time_zone" json:"locationTimeZone"`

	// Location snapshot, captured at creation so later edits to the
	// professional's locations never retroactively change history.
	LocationID   string          `bson:"location_id" json:"locationId"`
	LocationType LocationType    `bson:"location_type" json:"locationType"`
	Address      AddressSnapshot `bson:"address" json:"address"`

	// Pricing snapshot: "as agreed" values, distinct from live catalogue prices.
	SubtotalSnapshot float64 `bson:"subtotal_snapshot" json:"subtotalSnapshot"`
	DiscountAmount   float64 `bson:"discount_amount" json:"discountAmount"`
	TotalAmount      float64 `bson:"total_amount" json:"totalAmount"`

	Status      BookingStatus `bson:"status" json:"status"`
	SessionStep SessionStep   `bson:"session_step" json:"sessionStep"`
	StartedAt   *time.Time    `bson:"started_at,omitempty" json:"startedAt,omitempty"`
	FinishedAt  *time.Time    `bson:"finished_at,omitempty" json:"finishedAt,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// End returns the exclusive end instant of the booked interval, buffer included.
func (b *Booking) End() time.Time {
	return b.ScheduledFor.Add(time.Duration(b.TotalDurationMinutes+b.BufferMinutes) * time.Minute)
}

// Overlaps applies strict half-open interval comparison against [start, end).
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.ScheduledFor.Before(end) && start.Before(b.End())
}
