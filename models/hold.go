package models

import "time"

// Hold is a client's short-lived claim on a slot while checkout completes.
// Holds are advisory: the exclusivity guarantee lives in the booking-creation
// conflict check plus the unique index on the realized slot.
type Hold struct {
	ID             string `json:"id"`
	ClientID       string `json:"clientId"`
	ProfessionalID string `json:"professionalId"`
	ServiceID      string `json:"serviceId"`
	OfferingID     string `json:"offeringId"`

	LocationID       string          `json:"locationId"`
	LocationType     LocationType    `json:"locationType"`
	Address          AddressSnapshot `json:"address"`
	LocationTimeZone string          `json:"locationTimeZone"`

	ScheduledFor    time.Time `json:"scheduledFor"` // UTC instant
	DurationMinutes int       `json:"durationMinutes"`
	BufferMinutes   int       `json:"bufferMinutes"`

	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expired reports whether the hold is past its TTL. Expired holds are treated
// as absent by all readers.
func (h *Hold) Expired(now time.Time) bool {
	return !now.Before(h.ExpiresAt)
}
