package mediaRepo

import (
	"context"

	"glowbook/models"
)

// MediaRepository stores references to session media and aftercare records.
// The actual upload/signing pipeline is external; only references land here.
type MediaRepository interface {
	CreateAsset(ctx context.Context, asset *models.MediaAsset) error
	CountAssets(ctx context.Context, bookingID string, kind models.MediaKind) (int64, error)

	CreateAftercareSummary(ctx context.Context, summary *models.AftercareSummary) error
	HasAftercareSummary(ctx context.Context, bookingID string) (bool, error)
}
