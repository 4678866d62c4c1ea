// Package entity contains the core business objects of the project.
package entity

// Role represents the authorization role a diver can have in the system.
type Role string

const (
	// RoleUser indicates a regular diver account. Assigned at registration.
	RoleUser Role = "USER"
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a raw claim or column value to a Role,
// reporting whether the value names a known role.
func RoleFromString(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
