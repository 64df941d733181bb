package rbac_test

import (
	"testing"

	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Run("admin holds every capability", func(t *testing.T) {
		perms := rbac.Resolve(rbac.RoleAdmin)
		assert.ElementsMatch(t, rbac.AllPermissions, perms)
		assert.Len(t, perms, 15)
	})

	t.Run("hr is admin minus manage_attendance and manage_roles", func(t *testing.T) {
		hr := rbac.Resolve(rbac.RoleHR)
		assert.NotContains(t, hr, rbac.PermManageAttendance)
		assert.NotContains(t, hr, rbac.PermManageRoles)
		assert.Len(t, hr, 13)

		for _, p := range hr {
			assert.True(t, rbac.HasPermission(rbac.RoleAdmin, p), "admin missing %s", p)
		}
	})

	t.Run("employee is view-only and a subset of hr", func(t *testing.T) {
		emp := rbac.Resolve(rbac.RoleEmployee)
		assert.ElementsMatch(t, []rbac.Permission{
			rbac.PermViewDashboard,
			rbac.PermViewEmployees,
			rbac.PermViewLeaves,
			rbac.PermViewAttendance,
			rbac.PermViewKPI,
			rbac.PermViewDocuments,
		}, emp)

		for _, p := range emp {
			assert.True(t, rbac.HasPermission(rbac.RoleHR, p), "hr missing %s", p)
		}
	})

	t.Run("unknown role resolves to empty set", func(t *testing.T) {
		assert.Empty(t, rbac.Resolve(rbac.Role("superuser")))
		assert.False(t, rbac.HasPermission(rbac.Role("superuser"), rbac.PermViewDashboard))
	})

	t.Run("resolve is deterministic and a subset of the universal set", func(t *testing.T) {
		for _, role := range []rbac.Role{rbac.RoleAdmin, rbac.RoleHR, rbac.RoleEmployee} {
			first := rbac.Resolve(role)
			second := rbac.Resolve(role)
			assert.Equal(t, first, second)
			for _, p := range first {
				assert.Contains(t, rbac.AllPermissions, p)
			}
		}
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		perms := rbac.Resolve(rbac.RoleEmployee)
		perms[0] = rbac.PermManageRoles
		assert.False(t, rbac.HasPermission(rbac.RoleEmployee, rbac.PermManageRoles))
	})
}

func TestHasAnyHasAll(t *testing.T) {
	assert.True(t, rbac.HasAny(rbac.RoleEmployee, rbac.PermManageLeaves, rbac.PermViewLeaves))
	assert.False(t, rbac.HasAny(rbac.RoleEmployee, rbac.PermManageLeaves, rbac.PermManageRoles))

	assert.True(t, rbac.HasAll(rbac.RoleHR, rbac.PermViewLeaves, rbac.PermManageLeaves))
	assert.False(t, rbac.HasAll(rbac.RoleHR, rbac.PermViewLeaves, rbac.PermManageRoles))

	// vacuous truth on empty input
	assert.True(t, rbac.HasAll(rbac.RoleEmployee))
	assert.False(t, rbac.HasAny(rbac.RoleEmployee))
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"admin", "hr", "employee"} {
		role, ok := rbac.ParseRole(s)
		assert.True(t, ok)
		assert.Equal(t, rbac.Role(s), role)
	}

	_, ok := rbac.ParseRole("Admin")
	assert.False(t, ok)
	_, ok = rbac.ParseRole("")
	assert.False(t, ok)
}
