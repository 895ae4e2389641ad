package booking

import (
	"context"

	bookingRepo "glowbook/database/repository/booking"
	discountRepo "glowbook/database/repository/discount"
	"glowbook/models"
	"glowbook/services/notification"
	"glowbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking realizes a client's hold into a booking. The conflict check
// plus the unique index on the realized slot are the actual exclusivity
// guarantee; the hold itself was only advisory.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, actor models.Actor, req CreateBookingRequest) (*BookingResult, error) {
	if !actor.IsClient() {
		return nil, NewForbiddenError("only clients can create bookings")
	}
	if req.HoldID == "" {
		return nil, NewValidationError("holdId", "hold id is required")
	}

	hold, err := s.loadOwnedHold(ctx, actor, req.HoldID)
	if err != nil {
		return nil, err
	}
	if req.OfferingID != "" && req.OfferingID != hold.OfferingID {
		return nil, NewConflictError("hold was taken for a different offering")
	}

	now := s.now()
	if !hold.ScheduledFor.After(now) {
		return nil, NewConflictError("held slot is already in the past")
	}

	// Pricing snapshot. Discount math requires the hold's zone snapshot and
	// never guesses.
	offering, err := s.Catalog.GetOffering(ctx, hold.OfferingID)
	if err != nil {
		return nil, NewInternalError("failed to load offering", err)
	}
	loc, err := ResolveTimeZoneStrict([]string{hold.LocationTimeZone})
	if err != nil {
		return nil, err
	}
	settings, err := s.Discounts.GetSettings(ctx, hold.ProfessionalID)
	if err == discountRepo.ErrNotFound {
		settings = nil
	} else if err != nil {
		return nil, NewInternalError("failed to load last-minute settings", err)
	}
	quote := ComputeLastMinuteDiscount(settings, hold.ServiceID, hold.ScheduledFor, now, offering.Price, loc)

	booking := &models.Booking{
		ID:                   uuid.New().String(),
		ProfessionalID:       hold.ProfessionalID,
		ClientID:             actor.ID,
		ServiceID:            hold.ServiceID,
		OfferingID:           hold.OfferingID,
		ScheduledFor:         hold.ScheduledFor,
		TotalDurationMinutes: hold.DurationMinutes,
		BufferMinutes:        hold.BufferMinutes,
		LocationTimeZone:     hold.LocationTimeZone,
		LocationID:           hold.LocationID,
		LocationType:         hold.LocationType,
		Address:              hold.Address,
		SubtotalSnapshot:     offering.Price,
		DiscountAmount:       quote.DiscountAmount,
		TotalAmount:          round2(offering.Price - quote.DiscountAmount),
		Status:               models.StatusPending,
		SessionStep:          models.StepNone,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	err = s.Bookings.RunTransaction(ctx, func(uow bookingRepo.UnitOfWork) error {
		txCtx := uow.Context()
		conflict, err := s.slotConflicts(txCtx, hold.ProfessionalID, hold.ScheduledFor, hold.DurationMinutes, hold.BufferMinutes, "")
		if err != nil {
			return NewInternalError("conflict check failed", err)
		}
		if conflict {
			return NewConflictError("slot is no longer available")
		}
		if err := s.Bookings.Create(txCtx, booking); err != nil {
			if err == bookingRepo.ErrSlotTaken {
				return NewConflictError("slot is no longer available")
			}
			return NewInternalError("failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		if _, ok := AsBookingError(err); ok {
			return nil, err
		}
		return nil, NewInternalError("booking transaction failed", err)
	}

	// The hold is consumed only after a fully successful commit.
	if err := s.Holds.Delete(ctx, hold.ID); err != nil {
		utils.GetLogger().Warn("failed to delete consumed hold",
			zap.String("holdID", hold.ID), zap.Error(err))
	}

	warnings := s.notifyBoth(ctx, booking, notification.TemplateBookingCreated)
	return &BookingResult{Booking: booking, Warnings: warnings}, nil
}
