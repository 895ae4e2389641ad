package booking

import (
	"context"
	"time"

	"glowbook/models"
)

// DefaultTimeZone is the last-resort process default.
const DefaultTimeZone = "UTC"

// validZone reports whether name is a loadable IANA zone. Empty strings and
// anything the zone database rejects are skipped, never trusted.
func validZone(name string) bool {
	if name == "" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

// ResolveTimeZone walks candidates in priority order and returns the first
// valid IANA zone, falling back to fallback and finally to UTC. Every
// temporal decision in the engine goes through this resolution so it uses the
// appointment's zone, never the server's.
func ResolveTimeZone(candidates []string, fallback string) string {
	for _, c := range candidates {
		if validZone(c) {
			return c
		}
	}
	if validZone(fallback) {
		return fallback
	}
	return DefaultTimeZone
}

// ResolveTimeZoneStrict is the no-guessing variant for contexts where a wrong
// zone would corrupt financial or temporal data. It fails instead of falling
// back.
func ResolveTimeZoneStrict(candidates []string) (*time.Location, error) {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		loc, err := time.LoadLocation(c)
		if err == nil {
			return loc, nil
		}
	}
	return nil, NewValidationError("timeZone", "no valid IANA time zone among candidates")
}

// zoneForProfessional resolves the zone chain below the booking/hold level:
// explicit location record, then location lookup, then the professional's
// profile zone, then the caller-supplied fallback.
func (s *DefaultBookingService) zoneForProfessional(ctx context.Context, professionalID string, loc *models.Location, fallback string) string {
	var candidates []string
	if loc != nil {
		candidates = append(candidates, loc.TimeZone)
	}
	// Lookup failures degrade to the next candidate; resolution itself never
	// errors in non-strict mode.
	if pro, err := s.Schedules.GetProfessional(ctx, professionalID); err == nil {
		candidates = append(candidates, pro.TimeZone)
	}
	return ResolveTimeZone(candidates, fallback)
}
