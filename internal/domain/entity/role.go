package entity

// Role represents the authorization level of a system user.
type Role string

const (
	// RoleAdmin grants access to user management in addition to everything
	// an employee can do.
	RoleAdmin Role = "admin"
	// RoleEmployee grants access to the day-to-day rental desk operations.
	RoleEmployee Role = "employee"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEmployee:
		return true
	default:
		return false
	}
}
