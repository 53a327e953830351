package auth

import "servit/models"

// CanAccess decides whether admin may use routes gated by capability.
// Super admins pass unconditionally; sub admins need the capability in their
// access list; any other role is denied.
func CanAccess(admin *models.Admin, capability string) bool {
	if admin == nil {
		return false
	}
	switch admin.Role {
	case models.RoleSuperAdmin:
		return true
	case models.RoleSubAdmin:
		for _, c := range admin.Access {
			if c == capability {
				return true
			}
		}
	}
	return false
}
