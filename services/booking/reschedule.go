package booking

import (
	"context"

	bookingRepo "glowbook/database/repository/booking"
	"glowbook/models"
	"glowbook/services/notification"
	"glowbook/utils"

	"go.uber.org/zap"
)

// RescheduleBooking atomically moves a booking onto a new hold's slot. Every
// validation re-runs inside the transaction; the hold is consumed only on a
// fully successful commit, never speculatively.
func (s *DefaultBookingService) RescheduleBooking(ctx context.Context, actor models.Actor, req RescheduleRequest) (*BookingResult, error) {
	if !actor.IsClient() {
		return nil, NewForbiddenError("only the client can reschedule a booking")
	}
	if req.BookingID == "" {
		return nil, NewValidationError("bookingId", "booking id is required")
	}
	if req.HoldID == "" {
		return nil, NewValidationError("holdId", "hold id is required")
	}
	if req.ScheduledFor.IsZero() {
		return nil, NewValidationError("scheduledFor", "scheduled time is required")
	}

	var booking *models.Booking
	var holdID string
	err := s.Bookings.RunTransaction(ctx, func(uow bookingRepo.UnitOfWork) error {
		txCtx := uow.Context()

		b, err := s.loadBookingTx(txCtx, actor, req.BookingID)
		if err != nil {
			return err
		}
		if b.Status.Terminal() {
			return NewConflictError("a " + string(b.Status) + " booking cannot be rescheduled")
		}
		if b.StartedAt != nil || b.FinishedAt != nil {
			return NewConflictError("a session already underway cannot be moved")
		}

		hold, err := s.loadOwnedHold(txCtx, actor, req.HoldID)
		if err != nil {
			return err
		}
		if hold.ProfessionalID != b.ProfessionalID {
			return NewConflictError("hold belongs to a different professional")
		}
		if hold.LocationType != req.LocationType {
			return NewConflictError("hold location type does not match the request")
		}
		if !hold.ScheduledFor.Equal(req.ScheduledFor.UTC()) {
			return NewConflictError("hold slot does not match the requested time")
		}
		if b.OfferingID != "" && hold.OfferingID != b.OfferingID {
			return NewConflictError("hold was taken for a different offering")
		}

		// Recompute duration for the possibly new offering/location pairing.
		offering, err := s.Catalog.GetOffering(txCtx, hold.OfferingID)
		if err != nil {
			return NewInternalError("failed to load offering", err)
		}
		duration := offering.DurationForType(hold.LocationType)

		conflict, err := s.slotConflicts(txCtx, b.ProfessionalID, hold.ScheduledFor, duration, hold.BufferMinutes, b.ID)
		if err != nil {
			return NewInternalError("conflict check failed", err)
		}
		if conflict {
			return NewConflictError("new slot overlaps an existing booking")
		}

		b.OfferingID = hold.OfferingID
		b.ServiceID = hold.ServiceID
		b.ScheduledFor = hold.ScheduledFor
		b.TotalDurationMinutes = duration
		b.BufferMinutes = hold.BufferMinutes
		b.LocationID = hold.LocationID
		b.LocationType = hold.LocationType
		b.Address = hold.Address
		b.LocationTimeZone = hold.LocationTimeZone
		if err := s.Bookings.Update(txCtx, b); err != nil {
			if err == bookingRepo.ErrSlotTaken {
				return NewConflictError("new slot is no longer available")
			}
			return NewInternalError("failed to update booking", err)
		}

		booking = b
		holdID = hold.ID
		return nil
	})
	if err != nil {
		return nil, asEngineErr(err)
	}

	if err := s.Holds.Delete(ctx, holdID); err != nil {
		utils.GetLogger().Warn("failed to delete consumed hold",
			zap.String("holdID", holdID), zap.Error(err))
	}

	warnings := s.notifyBoth(ctx, booking, notification.TemplateBookingRescheduled)
	warnings = append(warnings, s.scheduleReminder(booking)...)
	return &BookingResult{Booking: booking, Warnings: warnings}, nil
}
