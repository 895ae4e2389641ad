package booking

import (
	"context"
	"fmt"

	bookingRepo "glowbook/database/repository/booking"
	consultationRepo "glowbook/database/repository/consultation"
	"glowbook/models"
	"glowbook/services/notification"
	"glowbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProposeConsultation records the professional's in-consultation services and
// price offer. A new proposal resets any earlier approval state: the gate is
// re-derived from consultation re-entry.
func (s *DefaultBookingService) ProposeConsultation(ctx context.Context, actor models.Actor, bookingID string, req ProposalRequest) (*models.ConsultationApproval, error) {
	if !actor.IsProfessional() {
		return nil, NewForbiddenError("only the professional can propose services")
	}
	if req.Total <= 0 {
		return nil, NewValidationError("total", "proposed total must be positive")
	}

	var approval *models.ConsultationApproval
	var booking *models.Booking
	err := s.Bookings.RunTransaction(ctx, func(uow bookingRepo.UnitOfWork) error {
		txCtx := uow.Context()
		b, err := s.loadBookingTx(txCtx, actor, bookingID)
		if err != nil {
			return err
		}
		booking = b
		if b.Status.Terminal() {
			return NewConflictError("cannot propose on a " + string(b.Status) + " booking")
		}
		if b.SessionStep != models.StepConsultation && b.SessionStep != models.StepConsultationPendingClient {
			return NewConflictError("proposal is only allowed during consultation").
				WithForcedStep(b.SessionStep)
		}

		existing, err := s.Consultations.GetByBookingID(txCtx, bookingID)
		if err != nil && err != consultationRepo.ErrNotFound {
			return NewInternalError("failed to load consultation approval", err)
		}

		now := s.now()
		if existing != nil {
			approval = existing
		} else {
			approval = &models.ConsultationApproval{
				ID:        uuid.New().String(),
				BookingID: bookingID,
				CreatedAt: now,
			}
		}
		approval.Status = models.ApprovalPending
		approval.ProposedServices = req.Services
		approval.ProposedTotal = req.Total
		approval.ApprovedAt = nil
		approval.RejectedAt = nil

		if err := s.Consultations.Upsert(txCtx, approval); err != nil {
			return NewInternalError("failed to save proposal", err)
		}
		return nil
	})
	if err != nil {
		return nil, asEngineErr(err)
	}

	// The client reviews and approves from their own device, so they get a
	// nudge as soon as the proposal lands. Delivery failure never unwinds
	// the saved proposal.
	if s.Notifier != nil {
		data := map[string]string{
			"bookingId":     bookingID,
			"proposedTotal": fmt.Sprintf("%.2f", approval.ProposedTotal),
		}
		if err := s.Notifier.SendClientMessage(ctx, booking.ClientID, notification.TemplateConsultationReady, data); err != nil {
			utils.GetLogger().Warn("consultation: client notification failed",
				zap.String("bookingID", bookingID), zap.Error(err))
		}
	}
	return approval, nil
}

// ApproveConsultation is the client's binding acceptance. It is the single
// point where proposed pricing becomes contracted pricing: the agreed total
// lands on the booking's price snapshot in the same transaction that
// advances the session.
func (s *DefaultBookingService) ApproveConsultation(ctx context.Context, actor models.Actor, bookingID string) (*ConsultationResult, error) {
	if !actor.IsClient() {
		return nil, NewForbiddenError("only the client can approve a consultation")
	}

	result := &ConsultationResult{}
	err := s.Bookings.RunTransaction(ctx, func(uow bookingRepo.UnitOfWork) error {
		txCtx := uow.Context()
		b, err := s.loadBookingTx(txCtx, actor, bookingID)
		if err != nil {
			return err
		}
		if b.Status.Terminal() {
			return NewConflictError("cannot approve on a " + string(b.Status) + " booking")
		}
		if b.SessionStep != models.StepConsultation && b.SessionStep != models.StepConsultationPendingClient {
			return NewConflictError("approval is only allowed during consultation").
				WithForcedStep(b.SessionStep)
		}

		approval, err := s.Consultations.GetByBookingID(txCtx, bookingID)
		if err == consultationRepo.ErrNotFound {
			return NewConflictError("no proposal to approve")
		}
		if err != nil {
			return NewInternalError("failed to load consultation approval", err)
		}
		if approval.Status != models.ApprovalPending {
			return NewConflictError("proposal is not pending")
		}
		if approval.ProposedTotal <= 0 {
			return NewConflictError("proposal has no positive total")
		}

		now := s.now()
		approval.Status = models.ApprovalApproved
		approval.ApprovedAt = &now
		approval.RejectedAt = nil
		if err := s.Consultations.Upsert(txCtx, approval); err != nil {
			return NewInternalError("failed to save approval", err)
		}

		// Proposed becomes contracted.
		b.SubtotalSnapshot = approval.ProposedTotal
		b.TotalAmount = round2(approval.ProposedTotal - b.DiscountAmount)
		if b.TotalAmount < 0 {
			b.TotalAmount = 0
		}
		b.SessionStep = models.StepBeforePhotos
		if b.Status == models.StatusPending {
			b.Status = models.StatusAccepted
		}
		if err := s.Bookings.Update(txCtx, b); err != nil {
			return NewInternalError("failed to update booking", err)
		}

		result.Approval = approval
		result.Booking = b
		return nil
	})
	if err != nil {
		return nil, asEngineErr(err)
	}
	return result, nil
}

// RejectConsultation restarts negotiation. It resets the session to
// CONSULTATION but never cancels the appointment itself.
func (s *DefaultBookingService) RejectConsultation(ctx context.Context, actor models.Actor, bookingID string) (*ConsultationResult, error) {
	if !actor.IsClient() {
		return nil, NewForbiddenError("only the client can reject a consultation")
	}

	result := &ConsultationResult{}
	err := s.Bookings.RunTransaction(ctx, func(uow bookingRepo.UnitOfWork) error {
		txCtx := uow.Context()
		b, err := s.loadBookingTx(txCtx, actor, bookingID)
		if err != nil {
			return err
		}
		if b.Status.Terminal() {
			return NewConflictError("cannot reject on a " + string(b.Status) + " booking")
		}

		approval, err := s.Consultations.GetByBookingID(txCtx, bookingID)
		if err == consultationRepo.ErrNotFound {
			return NewConflictError("no proposal to reject")
		}
		if err != nil {
			return NewInternalError("failed to load consultation approval", err)
		}
		if approval.Status != models.ApprovalPending {
			return NewConflictError("proposal is not pending")
		}

		now := s.now()
		approval.Status = models.ApprovalRejected
		approval.RejectedAt = &now
		approval.ApprovedAt = nil
		if err := s.Consultations.Upsert(txCtx, approval); err != nil {
			return NewInternalError("failed to save rejection", err)
		}

		b.SessionStep = models.StepConsultation
		if err := s.Bookings.Update(txCtx, b); err != nil {
			return NewInternalError("failed to update booking", err)
		}

		result.Approval = approval
		result.Booking = b
		return nil
	})
	if err != nil {
		return nil, asEngineErr(err)
	}
	return result, nil
}
