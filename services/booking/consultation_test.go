package booking

import (
	"context"
	"testing"

	"glowbook/models"
	"glowbook/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposeConsultation(t *testing.T) {
	proposal := ProposalRequest{
		Services: []models.ProposedService{{ServiceID: "svc-1", Name: "Balayage", Price: 150}},
		Total:    150,
	}

	t.Run("records a pending proposal", func(t *testing.T) {
		svc, bookings, _, _, consultations, _, _, _ := newTestService()
		storedBooking(bookings, activeBooking(models.StatusAccepted, models.StepConsultation))

		approval, err := svc.ProposeConsultation(context.Background(), testPro, "b-1", proposal)
		require.NoError(t, err)
		assert.Equal(t, models.ApprovalPending, approval.Status)
		assert.Equal(t, 150.0, approval.ProposedTotal)
		assert.Nil(t, approval.ApprovedAt)
		assert.Nil(t, approval.RejectedAt)

		stored, err := consultations.GetByBookingID(context.Background(), "b-1")
		require.NoError(t, err)
		assert.Equal(t, approval.ID, stored.ID)
	})

	t.Run("nudges the client once the proposal is saved", func(t *testing.T) {
		svc, bookings, _, _, _, _, _, _ := newTestService()
		storedBooking(bookings, activeBooking(models.StatusAccepted, models.StepConsultation))
		notifier := svc.Notifier.(*mockNotifier)

		_, err := svc.ProposeConsultation(context.Background(), testPro, "b-1", proposal)
		require.NoError(t, err)
		require.Len(t, notifier.Calls, 1)
		assert.Equal(t, "client", notifier.Calls[0].Recipient)
		assert.Equal(t, "client-1", notifier.Calls[0].TargetID)
		assert.Equal(t, notification.TemplateConsultationReady, notifier.Calls[0].Template)
	})

	t.Run("delivery failure does not unwind the proposal", func(t *testing.T) {
		svc, bookings, _, _, consultations, _, _, _ := newTestService()
		storedBooking(bookings, activeBooking(models.StatusAccepted, models.StepConsultation))
		svc.Notifier.(*mockNotifier).FailClient = true

		approval, err := svc.ProposeConsultation(context.Background(), testPro, "b-1", proposal)
		require.NoError(t, err)
		assert.Equal(t, models.ApprovalPending, approval.Status)

		stored, err := consultations.GetByBookingID(context.Background(), "b-1")
		require.NoError(t, err)
		assert.Equal(t, approval.ID, stored.ID)
	})

	t.Run("re-proposing resets an earlier decision", func(t *testing.T) {
		svc, bookings, _, _, consultations, _, _, _ := newTestService()
		storedBooking(bookings, activeBooking(models.StatusAccepted, models.StepConsultation))
		rejected := testNow
		consultations.approvals["b-1"] = &models.ConsultationApproval{
			ID:         "a-1",
			BookingID:  "b-1",
			Status:     models.ApprovalRejected,
			RejectedAt: &rejected,
		}

		approval, err := svc.ProposeConsultation(context.Background(), testPro, "b-1", proposal)
		require.NoError(t, err)
		assert.Equal(t, "a-1", approval.ID)
		assert.Equal(t, models.ApprovalPending, approval.Status)
		assert.Nil(t, approval.RejectedAt)
	})

	t.Run("rejects a non-positive total", func(t *testing.T) {
		svc, _, _, _, _, _, _, _ := newTestService()
		_, err := svc.ProposeConsultation(context.Background(), testPro, "b-1", ProposalRequest{Total: 0})
		be, ok := AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, CodeValidation, be.Code)
	})

	t.Run("proposal is only allowed during consultation", func(t *testing.T) {
		svc, bookings, _, _, _, _, _, _ := newTestService()
		storedBooking(bookings, activeBooking(models.StatusAccepted, models.StepServiceInProgress))

		_, err := svc.ProposeConsultation(context.Background(), testPro, "b-1", proposal)
		be, ok := AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, CodeConflict, be.Code)
		assert.Equal(t, models.StepServiceInProgress, be.ForcedStep)
	})
}

func TestApproveConsultation(t *testing.T) {
	pendingProposal := func(consultations *mockConsultationRepo, total float64) {
		consultations.approvals["b-1"] = &models.ConsultationApproval{
			ID:            "a-1",
			BookingID:     "b-1",
			Status:        models.ApprovalPending,
			ProposedTotal: total,
		}
	}

	t.Run("contracts the proposed price and unlocks the session", func(t *testing.T) {
		svc, bookings, _, _, consultations, _, _, _ := newTestService()
		b := activeBooking(models.StatusPending, models.StepConsultationPendingClient)
		b.DiscountAmount = 10
		storedBooking(bookings, b)
		pendingProposal(consultations, 150)

		result, err := svc.ApproveConsultation(context.Background(), testClient, "b-1")
		require.NoError(t, err)

		assert.Equal(t, models.ApprovalApproved, result.Approval.Status)
		require.NotNil(t, result.Approval.ApprovedAt)
		assert.Nil(t, result.Approval.RejectedAt)

		assert.Equal(t, 150.0, result.Booking.SubtotalSnapshot)
		assert.Equal(t, 140.0, result.Booking.TotalAmount)
		assert.Equal(t, models.StepBeforePhotos, result.Booking.SessionStep)
		assert.Equal(t, models.StatusAccepted, result.Booking.Status)
	})

	t.Run("professionals cannot approve", func(t *testing.T) {
		svc, _, _, _, _, _, _, _ := newTestService()
		_, err := svc.ApproveConsultation(context.Background(), testPro, "b-1")
		be, ok := AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, CodeForbidden, be.Code)
	})

	t.Run("nothing to approve is a conflict", func(t *testing.T) {
		svc, bookings, _, _, _, _, _, _ := newTestService()
		storedBooking(bookings, activeBooking(models.StatusAccepted, models.StepConsultation))

		_, err := svc.ApproveConsultation(context.Background(), testClient, "b-1")
		be, ok := AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, CodeConflict, be.Code)
	})

	t.Run("an already-decided proposal cannot be approved again", func(t *testing.T) {
		svc, bookings, _, _, consultations, _, _, _ := newTestService()
		storedBooking(bookings, activeBooking(models.StatusAccepted, models.StepConsultation))
		consultations.approvals["b-1"] = &models.ConsultationApproval{
			ID: "a-1", BookingID: "b-1", Status: models.ApprovalApproved, ProposedTotal: 150,
		}

		_, err := svc.ApproveConsultation(context.Background(), testClient, "b-1")
		be, ok := AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, CodeConflict, be.Code)
	})

	t.Run("approval outside consultation is a conflict", func(t *testing.T) {
		svc, bookings, _, _, consultations, _, _, _ := newTestService()
		storedBooking(bookings, activeBooking(models.StatusAccepted, models.StepBeforePhotos))
		pendingProposal(consultations, 150)

		_, err := svc.ApproveConsultation(context.Background(), testClient, "b-1")
		be, ok := AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, CodeConflict, be.Code)
	})
}

func TestRejectConsultation(t *testing.T) {
	t.Run("returns the session to consultation without cancelling", func(t *testing.T) {
		svc, bookings, _, _, consultations, _, _, _ := newTestService()
		storedBooking(bookings, activeBooking(models.StatusAccepted, models.StepConsultationPendingClient))
		consultations.approvals["b-1"] = &models.ConsultationApproval{
			ID: "a-1", BookingID: "b-1", Status: models.ApprovalPending, ProposedTotal: 150,
		}

		result, err := svc.RejectConsultation(context.Background(), testClient, "b-1")
		require.NoError(t, err)

		assert.Equal(t, models.ApprovalRejected, result.Approval.Status)
		require.NotNil(t, result.Approval.RejectedAt)
		assert.Nil(t, result.Approval.ApprovedAt)
		assert.Equal(t, models.StepConsultation, result.Booking.SessionStep)
		assert.Equal(t, models.StatusAccepted, result.Booking.Status)
	})

	t.Run("nothing to reject is a conflict", func(t *testing.T) {
		svc, bookings, _, _, _, _, _, _ := newTestService()
		storedBooking(bookings, activeBooking(models.StatusAccepted, models.StepConsultation))

		_, err := svc.RejectConsultation(context.Background(), testClient, "b-1")
		be, ok := AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, CodeConflict, be.Code)
	})
}
