package catalogRepo

import (
	"context"
	"errors"

	"glowbook/models"
)

// ErrNotFound is returned when no offering matches.
var ErrNotFound = errors.New("offering not found")

// CatalogRepository reads the professional's service catalogue. Catalogue
// CRUD is owned by another service; the booking engine only needs lookups.
type CatalogRepository interface {
	GetOffering(ctx context.Context, offeringID string) (*models.Offering, error)
	// GetOfferingForService returns the professional's offering of a
	// catalogue service, if one exists.
	GetOfferingForService(ctx context.Context, professionalID, serviceID string) (*models.Offering, error)
}
