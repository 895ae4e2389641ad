package models

// Role identifies which side of the marketplace an actor belongs to.
type Role string

const (
	RoleClient       Role = "client"
	RoleProfessional Role = "professional"
)

// Actor is the authenticated caller, resolved once at the HTTP boundary.
// Core operations receive it explicitly and never look identity up themselves.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

func (a Actor) IsClient() bool       { return a.Role == RoleClient }
func (a Actor) IsProfessional() bool { return a.Role == RoleProfessional }
