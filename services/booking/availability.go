package booking

import (
	"context"
	"time"

	catalogRepo "glowbook/database/repository/catalog"
	scheduleRepo "glowbook/database/repository/schedule"
	"glowbook/models"
)

// Server-side safety bounds for caller-supplied overrides. A client override
// can tighten granularity or lead time but never disable the minimums.
const (
	minStepMinutes = 5
	maxStepMinutes = 60
	minLeadMinutes = 0
	maxLeadMinutes = 240
)

func clampStep(requested, configured int) int {
	step := configured
	if requested > 0 {
		step = requested
	}
	if step < minStepMinutes {
		return minStepMinutes
	}
	if step > maxStepMinutes {
		return maxStepMinutes
	}
	return step
}

func clampLead(requested, configured int) int {
	lead := requested
	if lead < minLeadMinutes {
		lead = minLeadMinutes
	}
	if lead > maxLeadMinutes {
		lead = maxLeadMinutes
	}
	// A caller may extend the lead time but never shrink the professional's
	// advance-notice rule.
	if lead < configured {
		lead = configured
	}
	return lead
}

// DayAvailability computes the bookable start times for one professional,
// location and local calendar day. The day window is local midnight to
// midnight in the location's zone, matching the professional's wall calendar.
func (s *DefaultBookingService) DayAvailability(ctx context.Context, req AvailabilityRequest) (*models.DayAvailability, error) {
	if req.ProfessionalID == "" {
		return nil, NewValidationError("professionalId", "professional id is required")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, NewValidationError("date", "date must be formatted YYYY-MM-DD")
	}

	location, err := s.resolveLocation(ctx, req.ProfessionalID, req.LocationType, req.LocationID)
	if err == scheduleRepo.ErrNotFound {
		// Zero bookable locations yields an empty slot list, not an error.
		zone := s.zoneForProfessional(ctx, req.ProfessionalID, nil, DefaultTimeZone)
		return &models.DayAvailability{TimeZone: zone, Date: req.Date}, nil
	}
	if err != nil {
		return nil, NewInternalError("failed to resolve location", err)
	}

	sched, err := s.Schedules.GetSchedule(ctx, location.ID)
	if err == scheduleRepo.ErrNotFound {
		zone := s.zoneForProfessional(ctx, req.ProfessionalID, location, DefaultTimeZone)
		return &models.DayAvailability{TimeZone: zone, LocationID: location.ID, Date: req.Date}, nil
	}
	if err != nil {
		return nil, NewInternalError("failed to load schedule", err)
	}

	offering, err := s.Catalog.GetOfferingForService(ctx, req.ProfessionalID, req.ServiceID)
	if err == catalogRepo.ErrNotFound {
		return nil, NewNotFoundError("professional does not offer this service")
	}
	if err != nil {
		return nil, NewInternalError("failed to load offering", err)
	}

	zoneName := ResolveTimeZone([]string{sched.TimeZone, location.TimeZone}, s.zoneForProfessional(ctx, req.ProfessionalID, nil, DefaultTimeZone))
	loc, err := time.LoadLocation(zoneName)
	if err != nil {
		return nil, NewInternalError("failed to load resolved zone", err)
	}

	step := clampStep(req.StepMinutes, sched.StepMinutes)
	lead := clampLead(req.LeadTimeMinutes, sched.AdvanceNoticeMinutes)
	duration := offering.DurationForType(location.Type)
	buffer := sched.BufferMinutes

	result := &models.DayAvailability{
		TimeZone:             zoneName,
		LocationID:           location.ID,
		Date:                 req.Date,
		EffectiveStepMinutes: step,
		EffectiveLeadMinutes: lead,
		DurationMinutes:      duration,
		BufferMinutes:        buffer,
	}

	day, _ := time.ParseInLocation("2006-01-02", req.Date, loc)
	now := s.now()

	// Respect the professional's booking horizon.
	if sched.MaxDaysAhead > 0 && day.After(now.In(loc).AddDate(0, 0, sched.MaxDaysAhead)) {
		return result, nil
	}

	hours, ok := sched.Hours[models.WeekdayKey(day.Weekday())]
	if !ok || hours.Closed || hours.EndMinute <= hours.StartMinute {
		return result, nil
	}

	dayEnd := day.AddDate(0, 0, 1)

	// Gather busy intervals across a widened window so appointments spilling
	// over a day boundary are still seen.
	existing, err := s.Bookings.ListActiveForProfessional(ctx, req.ProfessionalID, day.Add(-24*time.Hour), dayEnd.Add(24*time.Hour))
	if err != nil {
		return nil, NewInternalError("failed to list existing bookings", err)
	}
	blocks, err := s.Schedules.ListBlocks(ctx, req.ProfessionalID, day, dayEnd)
	if err != nil {
		return nil, NewInternalError("failed to list calendar blocks", err)
	}

	earliest := now.Add(time.Duration(lead) * time.Minute)
	slotSpan := time.Duration(duration+buffer) * time.Minute

	for m := hours.StartMinute; m+duration+buffer <= hours.EndMinute; m += step {
		candidate := day.Add(time.Duration(m) * time.Minute)
		candidateEnd := candidate.Add(slotSpan)

		if candidate.Before(earliest) {
			continue
		}

		conflict := false
		for i := range existing {
			if existing[i].Overlaps(candidate, candidateEnd) {
				conflict = true
				break
			}
		}
		if !conflict {
			for i := range blocks {
				if blocks[i].Overlaps(candidate, candidateEnd) {
					conflict = true
					break
				}
			}
		}
		if conflict {
			continue
		}

		result.Slots = append(result.Slots, candidate.UTC())
	}

	return result, nil
}

// resolveLocation picks the concrete bookable location: the explicit one when
// given, otherwise the professional's active location of the requested type.
func (s *DefaultBookingService) resolveLocation(ctx context.Context, professionalID string, t models.LocationType, locationID string) (*models.Location, error) {
	if locationID != "" {
		return s.Schedules.GetLocation(ctx, locationID, professionalID)
	}
	return s.Schedules.FindLocationByType(ctx, professionalID, t)
}
