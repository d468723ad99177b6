package models

import "time"

// Roles recognized by the access gate. viewer is read-only; nurse and
// above may submit entries; admin and above may lock them.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleNurse      = "nurse"
	RoleViewer     = "viewer"
)

// UserProfile is one row of user_profiles.
type UserProfile struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Password    string     `json:"-"`
	FullName    string     `json:"full_name"`
	Role        string     `json:"role"`
	Departments []string   `json:"departments"`
	CreatedAt   time.Time  `json:"created_at"`
	LastActive  *time.Time `json:"last_active,omitempty"`
}
