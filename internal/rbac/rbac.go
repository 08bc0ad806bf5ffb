package rbac

import "admin/internal/models"

// Role hierarchy: Admin > Manager > Support.
var roleLevels = map[models.Role]int{
	models.RoleSupport: 1,
	models.RoleManager: 2,
	models.RoleAdmin:   3,
}

// HasRole reports whether have grants at least the privileges of want.
func HasRole(have, want models.Role) bool {
	haveLevel, ok := roleLevels[have]
	if !ok {
		return false
	}
	wantLevel, ok := roleLevels[want]
	if !ok {
		return false
	}
	return haveLevel >= wantLevel
}
