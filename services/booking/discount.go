package booking

import (
	"context"
	"math"
	"time"

	bookingRepo "glowbook/database/repository/booking"
	discountRepo "glowbook/database/repository/discount"
	"glowbook/models"
)

const maxDiscountPercent = 50

// round2 rounds to currency-minor-unit precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > maxDiscountPercent {
		return maxDiscountPercent
	}
	return p
}

// sameLocalDay reports whether two instants fall on the same calendar day in
// loc. This is the professional's wall-calendar day, not the server's UTC day.
func sameLocalDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// ComputeLastMinuteDiscount evaluates the professional's last-minute rules
// for a slot, entirely in the professional's local time. The SAME_DAY window
// takes precedence over the rolling WITHIN_24H window; price floors clamp the
// amount down rather than rejecting the booking.
func ComputeLastMinuteDiscount(settings *models.LastMinuteSettings, serviceID string, scheduledFor, now time.Time, basePrice float64, loc *time.Location) DiscountQuote {
	quote := DiscountQuote{BasePrice: basePrice, Window: models.WindowNone}
	if settings == nil || !settings.Enabled || basePrice <= 0 {
		return quote
	}
	if !scheduledFor.After(now) {
		return quote
	}
	if settings.DisabledWeekdays[models.WeekdayKey(scheduledFor.In(loc).Weekday())] {
		return quote
	}
	for _, block := range settings.Blocks {
		if !scheduledFor.Before(block.StartAt) && scheduledFor.Before(block.EndAt) {
			return quote
		}
	}

	switch {
	case sameLocalDay(now, scheduledFor, loc):
		quote.Window = models.WindowSameDay
	case scheduledFor.Sub(now) <= 24*time.Hour:
		quote.Window = models.WindowWithin24
	default:
		return quote
	}

	pct := clampPercent(settings.PercentFor(quote.Window))
	if pct == 0 {
		quote.Window = models.WindowNone
		return quote
	}

	amount := round2(basePrice * pct / 100)

	// The discounted price never falls below the floor; clamp the amount
	// down instead of rejecting.
	if floor := settings.FloorFor(serviceID); floor > 0 && basePrice-amount < floor {
		amount = round2(basePrice - floor)
		if amount < 0 {
			amount = 0
		}
	}

	quote.DiscountPct = pct
	quote.DiscountAmount = amount
	return quote
}

// QuoteLastMinuteDiscount computes the discount for an existing booking. The
// zone resolution is strict: discount math must never guess a zone.
func (s *DefaultBookingService) QuoteLastMinuteDiscount(ctx context.Context, actor models.Actor, bookingID string) (*DiscountQuote, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err == bookingRepo.ErrNotFound {
		return nil, NewNotFoundError("booking not found")
	}
	if err != nil {
		return nil, NewInternalError("failed to load booking", err)
	}
	if booking.ClientID != actor.ID && booking.ProfessionalID != actor.ID {
		return nil, NewNotFoundError("booking not found")
	}

	loc, err := ResolveTimeZoneStrict([]string{booking.LocationTimeZone})
	if err != nil {
		return nil, err
	}

	settings, err := s.Discounts.GetSettings(ctx, booking.ProfessionalID)
	if err == discountRepo.ErrNotFound {
		settings = nil
	} else if err != nil {
		return nil, NewInternalError("failed to load last-minute settings", err)
	}

	quote := ComputeLastMinuteDiscount(settings, booking.ServiceID, booking.ScheduledFor, s.now(), booking.SubtotalSnapshot, loc)
	return &quote, nil
}
