package models

import "time"

// DiscountWindow names which last-minute pricing window applied.
type DiscountWindow string

const (
	WindowNone     DiscountWindow = "NONE"
	WindowSameDay  DiscountWindow = "SAME_DAY"
	WindowWithin24 DiscountWindow = "WITHIN_24H"
)

// LastMinuteRule configures the discount percentage for one window.
type LastMinuteRule struct {
	Window  DiscountWindow `bson:"window" json:"window"`
	Percent float64        `bson:"percent" json:"percent"` // clamped to 0-50 at evaluation
}

// LastMinuteBlock is a time range explicitly excluded from discounting.
type LastMinuteBlock struct {
	StartAt time.Time `bson:"start_at" json:"startAt"` // UTC instant
	EndAt   time.Time `bson:"end_at" json:"endAt"`     // exclusive
}

// LastMinuteSettings is the professional-owned configuration for last-minute
// opening discounts. All windows are evaluated in the professional's local
// day, never the server's.
type LastMinuteSettings struct {
	ProfessionalID string `bson:"professional_id" json:"professionalId"`
	Enabled        bool   `bson:"enabled" json:"enabled"`

	Rules  []LastMinuteRule  `bson:"rules" json:"rules"`
	Blocks []LastMinuteBlock `bson:"blocks,omitempty" json:"blocks,omitempty"`

	// DisabledWeekdays is keyed by lowercase weekday name; true disables
	// discounting for slots falling on that local weekday.
	DisabledWeekdays map[string]bool `bson:"disabled_weekdays,omitempty" json:"disabledWeekdays,omitempty"`

	// MinPrice is the global floor a discounted price may never fall below.
	// ServiceFloors override it per service.
	MinPrice      float64            `bson:"min_price" json:"minPrice"`
	ServiceFloors map[string]float64 `bson:"service_floors,omitempty" json:"serviceFloors,omitempty"`

	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// PercentFor returns the configured percentage for a window, or 0.
func (s *LastMinuteSettings) PercentFor(w DiscountWindow) float64 {
	for _, r := range s.Rules {
		if r.Window == w {
			return r.Percent
		}
	}
	return 0
}

// FloorFor returns the effective minimum price for a service.
func (s *LastMinuteSettings) FloorFor(serviceID string) float64 {
	if f, ok := s.ServiceFloors[serviceID]; ok && f > s.MinPrice {
		return f
	}
	return s.MinPrice
}
