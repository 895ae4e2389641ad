package bookingRepo

import (
	"context"
	"errors"
	"time"

	"glowbook/models"
)

// ErrSlotTaken is returned when the unique index on the realized
// (professional, scheduledFor) pair rejects a write. It is the final backstop
// against two concurrent creations racing past the application-level check.
var ErrSlotTaken = errors.New("slot already taken")

// ErrNotFound is returned when no booking matches.
var ErrNotFound = errors.New("booking not found")

// UnitOfWork marks a context as participating in an in-flight transaction.
// Any function that must join the transaction takes the UnitOfWork and uses
// its Context for every read and write, so "am I inside a transaction" is a
// type-level fact rather than a runtime guess.
type UnitOfWork interface {
	Context() context.Context
}

// BookingRepository defines data access for booking rows.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error

	// ListActiveForProfessional returns non-cancelled bookings whose
	// scheduled_for falls in [from, to).
	ListActiveForProfessional(ctx context.Context, professionalID string, from, to time.Time) ([]models.Booking, error)

	// RunTransaction executes fn inside one multi-document transaction.
	// Guard checks inside fn must re-read rows through uow.Context().
	RunTransaction(ctx context.Context, fn func(uow UnitOfWork) error) error
}
