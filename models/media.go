package models

import "time"

// MediaKind distinguishes the professional's before and after shots.
type MediaKind string

const (
	MediaBefore MediaKind = "before"
	MediaAfter  MediaKind = "after"
)

// MediaAsset is a reference to an already-uploaded media object. Upload
// signing and storage live outside this service; only the reference is kept.
type MediaAsset struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"booking_id" json:"bookingId"`
	Kind       MediaKind `bson:"kind" json:"kind"`
	URL        string    `bson:"url" json:"url"`
	UploadedBy string    `bson:"uploaded_by" json:"uploadedBy"` // professional ID
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// AftercareSummary is the professional's written aftercare record for a
// completed session. Required before a session can reach DONE.
type AftercareSummary struct {
	ID        string    `bson:"id" json:"id"`
	BookingID string    `bson:"booking_id" json:"bookingId"`
	Notes     string    `bson:"notes" json:"notes"`
	Products  []string  `bson:"products,omitempty" json:"products,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
