package notification

import "context"

// NotificationService is the interface-only collaborator for message
// delivery. Templated SMS/push delivery lives in another system; the booking
// engine only hands off payloads and treats failures as warnings.
type NotificationService interface {
	SendClientMessage(ctx context.Context, clientID, template string, data map[string]string) error
	SendProfessionalMessage(ctx context.Context, professionalID, template string, data map[string]string) error
}

// Templates used by the booking engine.
const (
	TemplateBookingCreated     = "booking_created"
	TemplateBookingAccepted    = "booking_accepted"
	TemplateBookingRescheduled = "booking_rescheduled"
	TemplateBookingCancelled   = "booking_cancelled"
	TemplateConsultationReady  = "consultation_ready"
	TemplateAppointmentSoon    = "appointment_soon"
)
