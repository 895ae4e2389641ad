package models

import "time"

// ApprovalStatus is the state of a consultation proposal.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// ProposedService is one line item of a professional's in-consultation proposal.
type ProposedService struct {
	ServiceID string  `bson:"service_id" json:"serviceId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
}

// ConsultationApproval is the one-per-booking record of the client's binding
// acceptance of the professional's proposed services and price. Approval is
// the single point where proposed pricing becomes contracted pricing.
type ConsultationApproval struct {
	ID        string `bson:"id" json:"id"`
	BookingID string `bson:"booking_id" json:"bookingId"`

	Status           ApprovalStatus    `bson:"status" json:"status"`
	ProposedServices []ProposedService `bson:"proposed_services" json:"proposedServices"`
	ProposedTotal    float64           `bson:"proposed_total" json:"proposedTotal"`

	// ApprovedAt and RejectedAt are mutually exclusive.
	ApprovedAt *time.Time `bson:"approved_at,omitempty" json:"approvedAt,omitempty"`
	RejectedAt *time.Time `bson:"rejected_at,omitempty" json:"rejectedAt,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
