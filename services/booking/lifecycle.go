package booking

import (
	"context"

	bookingRepo "glowbook/database/repository/booking"
	consultationRepo "glowbook/database/repository/consultation"
	"glowbook/models"
	"glowbook/services/notification"
)

// loadBookingTx fetches a booking inside an in-flight transaction, failing
// closed on ownership for the given actor.
func (s *DefaultBookingService) loadBookingTx(ctx context.Context, actor models.Actor, bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err == bookingRepo.ErrNotFound {
		return nil, NewNotFoundError("booking not found")
	}
	if err != nil {
		return nil, NewInternalError("failed to load booking", err)
	}
	switch actor.Role {
	case models.RoleClient:
		if b.ClientID != actor.ID {
			return nil, NewNotFoundError("booking not found")
		}
	case models.RoleProfessional:
		if b.ProfessionalID != actor.ID {
			return nil, NewNotFoundError("booking not found")
		}
	default:
		return nil, NewNotFoundError("booking not found")
	}
	return b, nil
}

// SetBookingStatus is the professional's generic status setter. It only
// permits PENDING -> ACCEPTED; completion and cancellation have dedicated
// operations with their own side effects.
func (s *DefaultBookingService) SetBookingStatus(ctx context.Context, actor models.Actor, bookingID string, next models.BookingStatus) (*BookingResult, error) {
	if !actor.IsProfessional() {
		return nil, NewForbiddenError("only the professional can change booking status")
	}

	var booking *models.Booking
	err := s.Bookings.RunTransaction(ctx, func(uow bookingRepo.UnitOfWork) error {
		txCtx := uow.Context()
		b, err := s.loadBookingTx(txCtx, actor, bookingID)
		if err != nil {
			return err
		}
		if b.Status == next {
			// Self-transition is a no-op.
			booking = b
			return nil
		}
		if next != models.StatusAccepted || b.Status != models.StatusPending {
			return NewConflictError("status setter only permits PENDING to ACCEPTED")
		}
		b.Status = models.StatusAccepted
		if err := s.Bookings.Update(txCtx, b); err != nil {
			return NewInternalError("failed to update booking", err)
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, asEngineErr(err)
	}

	warnings := s.notifyBoth(ctx, booking, notification.TemplateBookingAccepted)
	warnings = append(warnings, s.scheduleReminder(booking)...)
	return &BookingResult{Booking: booking, Warnings: warnings}, nil
}

// CompleteBooking finishes an accepted appointment. FinishedAt is stamped
// and StartedAt is backfilled when the session never recorded it.
func (s *DefaultBookingService) CompleteBooking(ctx context.Context, actor models.Actor, bookingID string) (*BookingResult, error) {
	if !actor.IsProfessional() {
		return nil, NewForbiddenError("only the professional can complete a booking")
	}

	var booking *models.Booking
	err := s.Bookings.RunTransaction(ctx, func(uow bookingRepo.UnitOfWork) error {
		txCtx := uow.Context()
		b, err := s.loadBookingTx(txCtx, actor, bookingID)
		if err != nil {
			return err
		}
		if b.Status == models.StatusCompleted {
			booking = b
			return nil
		}
		if !b.Status.CanTransitionTo(models.StatusCompleted) {
			return NewConflictError("booking cannot be completed from status " + string(b.Status))
		}
		now := s.now()
		b.Status = models.StatusCompleted
		b.FinishedAt = &now
		if b.StartedAt == nil {
			b.StartedAt = &now
		}
		if err := s.Bookings.Update(txCtx, b); err != nil {
			return NewInternalError("failed to update booking", err)
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, asEngineErr(err)
	}
	return &BookingResult{Booking: booking}, nil
}

// CancelBooking cancels from either side. A cancelled booking is never
// "finished", so FinishedAt is cleared.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, actor models.Actor, bookingID string) (*BookingResult, error) {
	var booking *models.Booking
	err := s.Bookings.RunTransaction(ctx, func(uow bookingRepo.UnitOfWork) error {
		txCtx := uow.Context()
		b, err := s.loadBookingTx(txCtx, actor, bookingID)
		if err != nil {
			return err
		}
		if b.Status == models.StatusCancelled {
			booking = b
			return nil
		}
		if !b.Status.CanTransitionTo(models.StatusCancelled) {
			return NewConflictError("booking cannot be cancelled from status " + string(b.Status))
		}
		b.Status = models.StatusCancelled
		b.FinishedAt = nil
		if err := s.Bookings.Update(txCtx, b); err != nil {
			return NewInternalError("failed to update booking", err)
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, asEngineErr(err)
	}

	warnings := s.notifyBoth(ctx, booking, notification.TemplateBookingCancelled)
	return &BookingResult{Booking: booking, Warnings: warnings}, nil
}

// SetSessionStep advances the in-person workflow. Guards are re-verified
// against freshly read rows inside the transaction, and guard violations
// recover the booking into a known-good step rather than erroring into an
// inconsistent state.
func (s *DefaultBookingService) SetSessionStep(ctx context.Context, actor models.Actor, bookingID string, next models.SessionStep) (*models.Booking, error) {
	if !actor.IsProfessional() {
		return nil, NewForbiddenError("only the professional can advance the session")
	}

	var booking *models.Booking
	// Guard conflicts that force-reset the step must still COMMIT (the reset
	// is a real write), so they travel through guardErr instead of the
	// transaction's error return.
	var guardErr *BookingError
	err := s.Bookings.RunTransaction(ctx, func(uow bookingRepo.UnitOfWork) error {
		txCtx := uow.Context()
		b, err := s.loadBookingTx(txCtx, actor, bookingID)
		if err != nil {
			return err
		}
		if b.Status.Terminal() {
			return NewConflictError("session cannot advance on a " + string(b.Status) + " booking")
		}
		// While the booking is still PENDING, consultation is the only legal
		// step. Anything else is rejected and the step is force-reset
		// server-side so the record self-heals, even when the stored step
		// already matches the request.
		if b.Status == models.StatusPending && next != models.StepConsultation {
			guardErr = NewConflictError("only consultation is allowed while the booking is pending").
				WithForcedStep(models.StepConsultation)
			return s.persistStep(txCtx, b, models.StepConsultation)
		}

		if b.SessionStep == next {
			booking = b
			return nil
		}

		if !b.SessionStep.CanTransitionTo(next) {
			return NewConflictError("illegal session step transition from " + string(b.SessionStep) + " to " + string(next)).
				WithForcedStep(b.SessionStep)
		}

		if next.RequiresApproval() {
			approval, err := s.Consultations.GetByBookingID(txCtx, b.ID)
			if err != nil && err != consultationRepo.ErrNotFound {
				return NewInternalError("failed to load consultation approval", err)
			}
			if approval == nil || approval.Status != models.ApprovalApproved {
				guardErr = NewConflictError("client has not approved the consultation").
					WithForcedStep(models.StepConsultation)
				return s.persistStep(txCtx, b, models.StepConsultation)
			}
		}

		switch next {
		case models.StepServiceInProgress:
			count, err := s.Media.CountAssets(txCtx, b.ID, models.MediaBefore)
			if err != nil {
				return NewInternalError("failed to count before assets", err)
			}
			if count == 0 {
				return NewConflictError("service cannot start without before photos").
					WithForcedStep(b.SessionStep).
					WithMissing("before photos")
			}
			if b.StartedAt == nil {
				now := s.now()
				b.StartedAt = &now
			}
		case models.StepDone:
			missing, err := s.doneRequirements(txCtx, b.ID)
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				return NewConflictError("session cannot finish with items missing").
					WithForcedStep(models.StepAfterPhotos).
					WithMissing(missing...)
			}
		}

		b.SessionStep = next
		if err := s.Bookings.Update(txCtx, b); err != nil {
			return NewInternalError("failed to update booking", err)
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, asEngineErr(err)
	}
	if guardErr != nil {
		return nil, guardErr
	}
	return booking, nil
}

// persistStep writes the recovery step so the record self-heals even though
// the operation itself reports a conflict.
func (s *DefaultBookingService) persistStep(ctx context.Context, b *models.Booking, step models.SessionStep) error {
	if b.SessionStep == step {
		return nil
	}
	b.SessionStep = step
	if err := s.Bookings.Update(ctx, b); err != nil {
		return NewInternalError("failed to reset session step", err)
	}
	return nil
}

// doneRequirements itemizes what is still missing before a session can
// reach DONE.
func (s *DefaultBookingService) doneRequirements(ctx context.Context, bookingID string) ([]string, error) {
	var missing []string
	before, err := s.Media.CountAssets(ctx, bookingID, models.MediaBefore)
	if err != nil {
		return nil, NewInternalError("failed to count before assets", err)
	}
	if before == 0 {
		missing = append(missing, "before photos")
	}
	after, err := s.Media.CountAssets(ctx, bookingID, models.MediaAfter)
	if err != nil {
		return nil, NewInternalError("failed to count after assets", err)
	}
	if after == 0 {
		missing = append(missing, "after photos")
	}
	hasAftercare, err := s.Media.HasAftercareSummary(ctx, bookingID)
	if err != nil {
		return nil, NewInternalError("failed to check aftercare summary", err)
	}
	if !hasAftercare {
		missing = append(missing, "aftercare summary")
	}
	return missing, nil
}

// asEngineErr keeps typed errors intact and wraps anything unexpected.
func asEngineErr(err error) error {
	if _, ok := AsBookingError(err); ok {
		return err
	}
	return NewInternalError("booking operation failed", err)
}
