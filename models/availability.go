package models

import "time"

// DayAvailability is the bookable start-times for one professional, location
// and local calendar day. EffectiveStepMinutes and EffectiveLeadMinutes echo
// the parameters actually applied after server-side clamping, so callers
// cannot silently assume different safety margins.
type DayAvailability struct {
	TimeZone             string      `json:"timeZone"`
	LocationID           string      `json:"locationId"`
	Date                 string      `json:"date"` // local calendar day, "2006-01-02"
	EffectiveStepMinutes int         `json:"effectiveStepMinutes"`
	EffectiveLeadMinutes int         `json:"effectiveLeadMinutes"`
	DurationMinutes      int         `json:"durationMinutes"`
	BufferMinutes        int         `json:"bufferMinutes"`
	Slots                []time.Time `json:"slots"` // UTC instants, RFC 3339 on the wire
}
