package models

// Professional is the minimal profile view this service needs. Full profile
// CRUD is owned by another service.
type Professional struct {
	ID          string `bson:"id" json:"id"`
	DisplayName string `bson:"display_name" json:"displayName"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`
	TimeZone    string `bson:"time_zone,omitempty" json:"timeZone,omitempty"` // profile-level IANA fallback
}
