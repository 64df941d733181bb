package rbac

// Permission is a named capability gating an API surface.
type Permission string

const (
	PermViewDashboard     Permission = "view_dashboard"
	PermViewEmployees     Permission = "view_employees"
	PermManageEmployees   Permission = "manage_employees"
	PermViewLeaves        Permission = "view_leaves"
	PermManageLeaves      Permission = "manage_leaves"
	PermViewAttendance    Permission = "view_attendance"
	PermManageAttendance  Permission = "manage_attendance"
	PermViewKPI           Permission = "view_kpi"
	PermManageKPI         Permission = "manage_kpi"
	PermViewDocuments     Permission = "view_documents"
	PermManageDocuments   Permission = "manage_documents"
	PermViewRecruitment   Permission = "view_recruitment"
	PermManageRecruitment Permission = "manage_recruitment"
	PermViewAnalytics     Permission = "view_analytics"
	PermManageRoles       Permission = "manage_roles"
)

// AllPermissions is the universal capability set, in declaration order.
var AllPermissions = []Permission{
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
}
