package rbac

// Role is the closed set of roles known to the system. Roles are assigned at
// registration (always RoleEmployee) or out of band by an administrator and
// never change afterwards.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// ParseRole decodes a role arriving from a boundary (token claim, database
// column). Unknown strings are rejected rather than defaulted so a bad claim
// never gains capabilities.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleHR, RoleEmployee:
		return Role(s), true
	default:
		return "", false
	}
}
