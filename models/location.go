package models

// LocationType distinguishes a fixed salon location from a mobile service area.
type LocationType string

const (
	LocationSalon  LocationType = "SALON"
	LocationMobile LocationType = "MOBILE"
)

// ParseLocationType rejects unknown values at the boundary.
func ParseLocationType(s string) (LocationType, bool) {
	switch LocationType(s) {
	case LocationSalon, LocationMobile:
		return LocationType(s), true
	}
	return "", false
}

// GeoPoint is a simple lat/lng pair.
type GeoPoint struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// AddressSnapshot is the address as it was when a booking or hold was made.
type AddressSnapshot struct {
	Line1      string   `bson:"line1" json:"line1"`
	Line2      string   `bson:"line2,omitempty" json:"line2,omitempty"`
	City       string   `bson:"city" json:"city"`
	Region     string   `bson:"region,omitempty" json:"region,omitempty"`
	PostalCode string   `bson:"postal_code,omitempty" json:"postalCode,omitempty"`
	Country    string   `bson:"country" json:"country"`
	Geo        GeoPoint `bson:"geo" json:"geo"`
}

// Location is a bookable place owned by a professional.
type Location struct {
	ID             string          `bson:"id" json:"id"`
	ProfessionalID string          `bson:"professional_id" json:"professionalId"`
	Type           LocationType    `bson:"type" json:"type"`
	Address        AddressSnapshot `bson:"address" json:"address"`
	TimeZone       string          `bson:"time_zone" json:"timeZone"` // IANA name
	Active         bool            `bson:"active" json:"active"`
}
