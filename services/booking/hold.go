package booking

import (
	"context"

	catalogRepo "glowbook/database/repository/catalog"
	holdRepo "glowbook/database/repository/hold"
	scheduleRepo "glowbook/database/repository/schedule"
	"glowbook/models"
	"glowbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateHold pins one (professional, location, start, duration) tuple for the
// client while checkout completes. Creating a hold never blocks on other
// clients' holds for the same slot; exclusivity is enforced at booking
// creation.
func (s *DefaultBookingService) CreateHold(ctx context.Context, actor models.Actor, req CreateHoldRequest) (*models.Hold, error) {
	if !actor.IsClient() {
		return nil, NewForbiddenError("only clients can create holds")
	}
	if req.OfferingID == "" {
		return nil, NewValidationError("offeringId", "offering id is required")
	}
	if req.ScheduledFor.IsZero() {
		return nil, NewValidationError("scheduledFor", "scheduled time is required")
	}
	now := s.now()
	if !req.ScheduledFor.After(now) {
		return nil, NewValidationError("scheduledFor", "scheduled time must be in the future")
	}
	if req.LocationID == "" {
		if _, ok := models.ParseLocationType(string(req.LocationType)); !ok {
			return nil, NewValidationError("locationType", "unknown location type")
		}
	}

	offering, err := s.Catalog.GetOffering(ctx, req.OfferingID)
	if err == catalogRepo.ErrNotFound {
		return nil, NewNotFoundError("offering not found")
	}
	if err != nil {
		return nil, NewInternalError("failed to load offering", err)
	}

	location, err := s.resolveLocation(ctx, offering.ProfessionalID, req.LocationType, req.LocationID)
	if err == scheduleRepo.ErrNotFound {
		return nil, NewNotFoundError("no bookable location for the requested type")
	}
	if err != nil {
		return nil, NewInternalError("failed to resolve location", err)
	}

	buffer := 0
	if sched, err := s.Schedules.GetSchedule(ctx, location.ID); err == nil {
		buffer = sched.BufferMinutes
	}

	// Single-active-hold-per-flow: the caller's previous hold is superseded.
	if req.PreviousHoldID != "" {
		if prev, err := s.Holds.Get(ctx, req.PreviousHoldID); err == nil && prev.ClientID == actor.ID {
			if err := s.Holds.Delete(ctx, req.PreviousHoldID); err != nil {
				utils.GetLogger().Warn("failed to delete superseded hold",
					zap.String("holdID", req.PreviousHoldID), zap.Error(err))
			}
		}
	}

	ttl := s.HoldTTL
	if ttl <= 0 {
		ttl = utils.DefaultHoldTTL
	}

	hold := &models.Hold{
		ID:               uuid.New().String(),
		ClientID:         actor.ID,
		ProfessionalID:   offering.ProfessionalID,
		ServiceID:        offering.ServiceID,
		OfferingID:       offering.ID,
		LocationID:       location.ID,
		LocationType:     location.Type,
		Address:          location.Address,
		LocationTimeZone: ResolveTimeZone([]string{location.TimeZone}, s.zoneForProfessional(ctx, offering.ProfessionalID, nil, DefaultTimeZone)),
		ScheduledFor:     req.ScheduledFor.UTC(),
		DurationMinutes:  offering.DurationForType(location.Type),
		BufferMinutes:    buffer,
		ExpiresAt:        now.Add(ttl),
		CreatedAt:        now,
	}

	if err := s.Holds.Save(ctx, hold); err != nil {
		return nil, NewInternalError("failed to save hold", err)
	}
	return hold, nil
}

// GetHold returns the client's hold. Ownership fails closed: a foreign hold
// reads as not found, never as forbidden, to avoid existence leaks. Expired
// holds are purged on touch.
func (s *DefaultBookingService) GetHold(ctx context.Context, actor models.Actor, holdID string) (*models.Hold, error) {
	hold, err := s.loadOwnedHold(ctx, actor, holdID)
	if err != nil {
		return nil, err
	}
	return hold, nil
}

// ReleaseHold deletes the client's hold. Deleting an already-gone hold
// succeeds, so retries are safe.
func (s *DefaultBookingService) ReleaseHold(ctx context.Context, actor models.Actor, holdID string) error {
	hold, err := s.Holds.Get(ctx, holdID)
	if err == holdRepo.ErrNotFound {
		return nil
	}
	if err != nil {
		return NewInternalError("failed to load hold", err)
	}
	if hold.ClientID != actor.ID {
		return NewNotFoundError("hold not found")
	}
	if err := s.Holds.Delete(ctx, holdID); err != nil {
		return NewInternalError("failed to delete hold", err)
	}
	return nil
}

// loadOwnedHold fetches a hold enforcing ownership and lazy expiry.
func (s *DefaultBookingService) loadOwnedHold(ctx context.Context, actor models.Actor, holdID string) (*models.Hold, error) {
	hold, err := s.Holds.Get(ctx, holdID)
	if err == holdRepo.ErrNotFound {
		return nil, NewNotFoundError("hold not found")
	}
	if err != nil {
		return nil, NewInternalError("failed to load hold", err)
	}
	if hold.ClientID != actor.ID {
		return nil, NewNotFoundError("hold not found")
	}
	if hold.Expired(s.now()) {
		if err := s.Holds.Delete(ctx, holdID); err != nil {
			utils.GetLogger().Warn("failed to purge expired hold",
				zap.String("holdID", holdID), zap.Error(err))
		}
		return nil, NewNotFoundError("hold not found")
	}
	return hold, nil
}
