package booking

import (
	"context"
	"time"

	bookingRepo "glowbook/database/repository/booking"
	catalogRepo "glowbook/database/repository/catalog"
	consultationRepo "glowbook/database/repository/consultation"
	discountRepo "glowbook/database/repository/discount"
	holdRepo "glowbook/database/repository/hold"
	mediaRepo "glowbook/database/repository/media"
	scheduleRepo "glowbook/database/repository/schedule"
	"glowbook/models"
	"glowbook/services/notification"

	"github.com/hibiken/asynq"
)

// AvailabilityRequest asks for the bookable start times of one professional,
// location and local calendar day.
type AvailabilityRequest struct {
	ProfessionalID string
	ServiceID      string
	LocationType   models.LocationType
	LocationID     string // optional; resolved by type when empty
	Date           string // local calendar day, "2006-01-02"
	// Caller overrides, applied only within clamped bounds.
	StepMinutes     int
	LeadTimeMinutes int
}

// CreateHoldRequest pins a slot while the client completes checkout.
type CreateHoldRequest struct {
	OfferingID     string
	ScheduledFor   time.Time
	LocationType   models.LocationType
	LocationID     string // optional
	PreviousHoldID string // superseded hold, deleted first
}

// CreateBookingRequest realizes a hold into a booking.
type CreateBookingRequest struct {
	HoldID     string
	OfferingID string
}

// RescheduleRequest moves an existing booking onto a new hold's slot.
type RescheduleRequest struct {
	BookingID    string
	HoldID       string
	ScheduledFor time.Time
	LocationType models.LocationType
}

// ProposalRequest is the professional's in-consultation services/price offer.
type ProposalRequest struct {
	Services []models.ProposedService
	Total    float64
}

// DiscountQuote is the computed last-minute discount for a booking.
type DiscountQuote struct {
	BasePrice      float64               `json:"basePrice"`
	DiscountPct    float64               `json:"discountPct"`
	DiscountAmount float64               `json:"discountAmount"`
	Window         models.DiscountWindow `json:"window"`
}

// ConsultationResult pairs the approval record with the updated booking.
type ConsultationResult struct {
	Approval *models.ConsultationApproval `json:"approval"`
	Booking  *models.Booking              `json:"booking"`
}

// BookingResult pairs a booking with non-critical side-effect warnings.
// Warnings never imply the primary operation failed.
type BookingResult struct {
	Booking  *models.Booking `json:"booking"`
	Warnings []string        `json:"warnings,omitempty"`
}

// BookingService is the reservation and session lifecycle engine.
type BookingService interface {
	DayAvailability(ctx context.Context, req AvailabilityRequest) (*models.DayAvailability, error)

	CreateHold(ctx context.Context, actor models.Actor, req CreateHoldRequest) (*models.Hold, error)
	GetHold(ctx context.Context, actor models.Actor, holdID string) (*models.Hold, error)
	ReleaseHold(ctx context.Context, actor models.Actor, holdID string) error

	CreateBooking(ctx context.Context, actor models.Actor, req CreateBookingRequest) (*BookingResult, error)
	RescheduleBooking(ctx context.Context, actor models.Actor, req RescheduleRequest) (*BookingResult, error)

	// SetBookingStatus only permits PENDING -> ACCEPTED; completion and
	// cancellation go through the dedicated operations below.
	SetBookingStatus(ctx context.Context, actor models.Actor, bookingID string, next models.BookingStatus) (*BookingResult, error)
	CompleteBooking(ctx context.Context, actor models.Actor, bookingID string) (*BookingResult, error)
	CancelBooking(ctx context.Context, actor models.Actor, bookingID string) (*BookingResult, error)

	SetSessionStep(ctx context.Context, actor models.Actor, bookingID string, next models.SessionStep) (*models.Booking, error)

	ProposeConsultation(ctx context.Context, actor models.Actor, bookingID string, req ProposalRequest) (*models.ConsultationApproval, error)
	ApproveConsultation(ctx context.Context, actor models.Actor, bookingID string) (*ConsultationResult, error)
	RejectConsultation(ctx context.Context, actor models.Actor, bookingID string) (*ConsultationResult, error)

	QuoteLastMinuteDiscount(ctx context.Context, actor models.Actor, bookingID string) (*DiscountQuote, error)

	AttachMediaAsset(ctx context.Context, actor models.Actor, bookingID string, kind models.MediaKind, url string) (*models.MediaAsset, error)
	SaveAftercareSummary(ctx context.Context, actor models.Actor, bookingID, notes string, products []string) (*models.AftercareSummary, error)
}

// ReminderQueue is the slice of asynq.Client the engine needs; kept as an
// interface so tests can fake it.
type ReminderQueue interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings      bookingRepo.BookingRepository
	Holds         holdRepo.HoldRepository
	Schedules     scheduleRepo.ScheduleRepository
	Consultations consultationRepo.ConsultationRepository
	Discounts     discountRepo.DiscountRepository
	Media         mediaRepo.MediaRepository
	Catalog       catalogRepo.CatalogRepository

	Notifier  notification.NotificationService
	Reminders ReminderQueue

	HoldTTL             time.Duration
	ReminderLeadMinutes int

	// Now overrides the clock in tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
