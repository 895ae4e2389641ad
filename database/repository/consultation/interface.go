package consultationRepo

import (
	"context"
	"errors"

	"glowbook/models"
)

// ErrNotFound is returned when no approval record exists for a booking.
var ErrNotFound = errors.New("consultation approval not found")

// ConsultationRepository stores the one-per-booking approval record.
type ConsultationRepository interface {
	GetByBookingID(ctx context.Context, bookingID string) (*models.ConsultationApproval, error)
	// Upsert creates or replaces the approval record for its booking.
	Upsert(ctx context.Context, approval *models.ConsultationApproval) error
}
