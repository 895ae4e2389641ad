package holdRepo

import (
	"context"
	"errors"

	"glowbook/models"
)

// ErrNotFound is returned when a hold does not exist or has expired.
var ErrNotFound = errors.New("hold not found")

// HoldRepository stores short-lived slot holds. The store must expire records
// at Hold.ExpiresAt on its own; readers still verify expiry before trusting a
// record that came back.
type HoldRepository interface {
	Save(ctx context.Context, hold *models.Hold) error
	Get(ctx context.Context, holdID string) (*models.Hold, error)
	// Delete is idempotent: deleting an absent hold is not an error.
	Delete(ctx context.Context, holdID string) error
}
