package models

// Offering is a professional's bookable version of a catalogue service.
// Catalogue CRUD lives elsewhere; this service only reads offerings to
// compute durations and base prices.
type Offering struct {
	ID             string  `bson:"id" json:"id"`
	ProfessionalID string  `bson:"professional_id" json:"professionalId"`
	ServiceID      string  `bson:"service_id" json:"serviceId"`
	Name           string  `bson:"name" json:"name"`
	Price          float64 `bson:"price" json:"price"`

	DurationMinutes int `bson:"duration_minutes" json:"durationMinutes"`
	// MobileExtraMinutes is added travel/setup time for mobile appointments.
	MobileExtraMinutes int `bson:"mobile_extra_minutes,omitempty" json:"mobileExtraMinutes,omitempty"`
}

// DurationForType returns the total duration for the given location mode.
func (o *Offering) DurationForType(t LocationType) int {
	if t == LocationMobile {
		return o.DurationMinutes + o.MobileExtraMinutes
	}
	return o.DurationMinutes
}
