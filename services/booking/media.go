package booking

import (
	"context"

	bookingRepo "glowbook/database/repository/booking"
	"glowbook/models"

	"github.com/google/uuid"
)

// AttachMediaAsset records a reference to an already-uploaded before/after
// photo. Upload signing happens in the external media service.
func (s *DefaultBookingService) AttachMediaAsset(ctx context.Context, actor models.Actor, bookingID string, kind models.MediaKind, url string) (*models.MediaAsset, error) {
	if !actor.IsProfessional() {
		return nil, NewForbiddenError("only the professional can attach session media")
	}
	if kind != models.MediaBefore && kind != models.MediaAfter {
		return nil, NewValidationError("kind", "media kind must be before or after")
	}
	if url == "" {
		return nil, NewValidationError("url", "asset url is required")
	}

	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err == bookingRepo.ErrNotFound {
		return nil, NewNotFoundError("booking not found")
	}
	if err != nil {
		return nil, NewInternalError("failed to load booking", err)
	}
	if b.ProfessionalID != actor.ID {
		return nil, NewNotFoundError("booking not found")
	}
	if b.Status.Terminal() {
		return nil, NewConflictError("cannot attach media to a " + string(b.Status) + " booking")
	}

	asset := &models.MediaAsset{
		ID:         uuid.New().String(),
		BookingID:  bookingID,
		Kind:       kind,
		URL:        url,
		UploadedBy: actor.ID,
		CreatedAt:  s.now(),
	}
	if err := s.Media.CreateAsset(ctx, asset); err != nil {
		return nil, NewInternalError("failed to save media asset", err)
	}
	return asset, nil
}

// SaveAftercareSummary records the aftercare notes required before DONE.
func (s *DefaultBookingService) SaveAftercareSummary(ctx context.Context, actor models.Actor, bookingID, notes string, products []string) (*models.AftercareSummary, error) {
	if !actor.IsProfessional() {
		return nil, NewForbiddenError("only the professional can write aftercare notes")
	}
	if notes == "" {
		return nil, NewValidationError("notes", "aftercare notes are required")
	}

	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err == bookingRepo.ErrNotFound {
		return nil, NewNotFoundError("booking not found")
	}
	if err != nil {
		return nil, NewInternalError("failed to load booking", err)
	}
	if b.ProfessionalID != actor.ID {
		return nil, NewNotFoundError("booking not found")
	}

	summary := &models.AftercareSummary{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		Notes:     notes,
		Products:  products,
		CreatedAt: s.now(),
	}
	if err := s.Media.CreateAftercareSummary(ctx, summary); err != nil {
		return nil, NewInternalError("failed to save aftercare summary", err)
	}
	return summary, nil
}
