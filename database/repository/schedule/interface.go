package scheduleRepo

import (
	"context"
	"errors"
	"time"

	"glowbook/models"
)

// ErrNotFound is returned when a location, schedule or professional is missing.
var ErrNotFound = errors.New("schedule record not found")

// ScheduleRepository reads the professional-owned scheduling data the booking
// engine depends on: locations, per-location working hours and manual blocks.
type ScheduleRepository interface {
	GetLocation(ctx context.Context, locationID, professionalID string) (*models.Location, error)
	// FindLocationByType returns the professional's active location of the
	// given type, if any.
	FindLocationByType(ctx context.Context, professionalID string, t models.LocationType) (*models.Location, error)

	GetSchedule(ctx context.Context, locationID string) (*models.LocationSchedule, error)

	// ListBlocks returns calendar blocks overlapping [from, to) for the
	// professional, including blocks not tied to a specific location.
	ListBlocks(ctx context.Context, professionalID string, from, to time.Time) ([]models.CalendarBlock, error)
	CreateBlock(ctx context.Context, block *models.CalendarBlock) error
	DeleteBlock(ctx context.Context, blockID, professionalID string) error

	GetProfessional(ctx context.Context, professionalID string) (*models.Professional, error)
}
