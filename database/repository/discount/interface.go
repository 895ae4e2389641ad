package discountRepo

import (
	"context"
	"errors"

	"glowbook/models"
)

// ErrNotFound is returned when a professional has no last-minute settings.
var ErrNotFound = errors.New("last-minute settings not found")

// DiscountRepository stores per-professional last-minute discount settings.
type DiscountRepository interface {
	GetSettings(ctx context.Context, professionalID string) (*models.LastMinuteSettings, error)
	SaveSettings(ctx context.Context, settings *models.LastMinuteSettings) error
}
