package models

import "errors"

// Role enumerates the three roles the application recognizes.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleVeterinarian Role = "veterinarian"
	RoleWorker       Role = "worker"
)

// ValidateRole reports whether the role belongs to the fixed set of three.
func ValidateRole(role Role) error {
	switch role {
	case RoleAdmin, RoleVeterinarian, RoleWorker:
		return nil
	default:
		return errors.New("role must be admin, veterinarian or worker")
	}
}

// User represents a dashboard account; the role governs which mutations it may request.
type User struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Email     string `json:"email" bson:"email"`
	Name      string `json:"name" bson:"name"`
	Role      Role   `json:"role" bson:"role"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
}

// Actor is the resolved identity attached to every authenticated request.
// Auth itself is external; the actor is only the users-collection lookup
// keyed by the authenticated id.
type Actor struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
