package handlers

import (
	discountRepoPkg "glowbook/database/repository/discount"
	scheduleRepoPkg "glowbook/database/repository/schedule"
	"glowbook/services/booking"
)

// HandlerBundle groups all endpoint handlers and their collaborators.
type HandlerBundle struct {
	BookingService booking.BookingService
	ScheduleRepo   scheduleRepoPkg.ScheduleRepository
	DiscountRepo   discountRepoPkg.DiscountRepository
}
