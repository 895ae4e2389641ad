package models

import "time"

// DayHours are a location's working hours for one weekday, in minutes from
// local midnight (e.g. 540 for 9:00 AM).
type DayHours struct {
	StartMinute int  `bson:"start_minute" json:"startMinute"`
	EndMinute   int  `bson:"end_minute" json:"endMinute"`
	Closed      bool `bson:"closed" json:"closed"`
}

// LocationSchedule is the professional-owned scheduling configuration for one
// location. Mutated only by the owning professional, read by availability.
type LocationSchedule struct {
	LocationID     string `bson:"location_id" json:"locationId"`
	ProfessionalID string `bson:"professional_id" json:"professionalId"`
	TimeZone       string `bson:"time_zone" json:"timeZone"` // IANA name

	// Hours is keyed by lowercase weekday name ("monday" .. "sunday").
	Hours map[string]DayHours `bson:"hours" json:"hours"`

	StepMinutes          int `bson:"step_minutes" json:"stepMinutes"`                     // slot granularity
	BufferMinutes        int `bson:"buffer_minutes" json:"bufferMinutes"`                 // gap after each appointment
	AdvanceNoticeMinutes int `bson:"advance_notice_minutes" json:"advanceNoticeMinutes"`  // minimum lead time
	MaxDaysAhead         int `bson:"max_days_ahead" json:"maxDaysAhead"`                  // booking horizon
}

// WeekdayKey converts a time.Weekday to the map key used by Hours.
func WeekdayKey(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}

// CalendarBlock is an explicit manual block on a professional's calendar.
// Blocked ranges are excluded from availability generation.
type CalendarBlock struct {
	ID             string    `bson:"id" json:"id"`
	ProfessionalID string    `bson:"professional_id" json:"professionalId"`
	LocationID     string    `bson:"location_id,omitempty" json:"locationId,omitempty"`
	StartAt        time.Time `bson:"start_at" json:"startAt"` // UTC instant
	EndAt          time.Time `bson:"end_at" json:"endAt"`     // exclusive
	Reason         string    `bson:"reason,omitempty" json:"reason,omitempty"`
}

// Overlaps applies strict half-open interval comparison against [start, end).
func (cb *CalendarBlock) Overlaps(start, end time.Time) bool {
	return cb.StartAt.Before(end) && start.Before(cb.EndAt)
}
