// Package authz is the single gate in front of every sensitive
// operation. Services call it before touching the repositories, never
// after, and never re-implement the check inline.
package authz

import (
	"errors"

	"atelier/internal/domain/models"
)

var ErrUnauthorized = errors.New("unauthorized")

// Allowed-role sets per operation, mirroring the access policy:
// seeding and all user management are super-admin only; deleting a
// service is super-admin or admin; creating/updating content needs any
// authenticated role.
var (
	SeedRoles          = []models.Role{models.RoleSuperAdmin}
	UserManageRoles    = []models.Role{models.RoleSuperAdmin}
	ServiceDeleteRoles = []models.Role{models.RoleSuperAdmin, models.RoleAdmin}
	ProjectDeleteRoles = []models.Role{models.RoleSuperAdmin, models.RoleAdmin}
	BlogDeleteRoles    = []models.Role{models.RoleSuperAdmin, models.RoleAdmin}
)

// RequireAnyRole fails when the caller carries no role at all.
func RequireAnyRole(role models.Role) (models.Role, error) {
	if !role.Authenticated() {
		return models.RoleNone, ErrUnauthorized
	}
	return role, nil
}

// RequireRole fails when the caller's role is absent or not a member
// of the allowed set.
func RequireRole(role models.Role, allowed ...models.Role) (models.Role, error) {
	if !role.Authenticated() {
		return models.RoleNone, ErrUnauthorized
	}
	for _, a := range allowed {
		if role == a {
			return role, nil
		}
	}
	return models.RoleNone, ErrUnauthorized
}
