// Package rbac maps roles to capabilities through a static, compile-time
// table. There is no per-user policy storage: a user's role fully determines
// what they can do, and adding a role means adding a table entry here.
package rbac

// rolePermissions is the authoritative role -> capability table.
// hr is admin minus manage_attendance and manage_roles; employee is view-only.
var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermViewDashboard,
		PermViewEmployees,
		PermManageEmployees,
		PermViewLeaves,
		PermManageLeaves,
		PermViewAttendance,
		PermManageAttendance,
		PermViewKPI,
		PermManageKPI,
		PermViewDocuments,
		PermManageDocuments,
		PermViewRecruitment,
		PermManageRecruitment,
		PermViewAnalytics,
		PermManageRoles,
	},
	RoleHR: {
		PermViewDashboard,
		PermViewEmployees,
		PermManageEmployees,
		PermViewLeaves,
		PermManageLeaves,
		PermViewAttendance,
		PermViewKPI,
		PermManageKPI,
		PermViewDocuments,
		PermManageDocuments,
		PermViewRecruitment,
		PermManageRecruitment,
		PermViewAnalytics,
	},
	RoleEmployee: {
		PermViewDashboard,
		PermViewEmployees,
		PermViewLeaves,
		PermViewAttendance,
		PermViewKPI,
		PermViewDocuments,
	},
}

// Resolve returns the capability set granted to role. Unknown roles resolve
// to an empty set: the check fails closed.
func Resolve(role Role) []Permission {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}

	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reports whether role is granted perm.
func HasPermission(role Role, perm Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// HasAny reports whether role holds at least one of perms.
func HasAny(role Role, perms ...Permission) bool {
	for _, p := range perms {
		if HasPermission(role, p) {
			return true
		}
	}
	return false
}

// HasAll reports whether role holds every one of perms.
func HasAll(role Role, perms ...Permission) bool {
	for _, p := range perms {
		if !HasPermission(role, p) {
			return false
		}
	}
	return true
}
