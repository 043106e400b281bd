package models

// Role is the access-level tag carried per session. It gates every
// mutating and sensitive-read operation.
type Role string

const (
	RoleSuperAdmin Role = "super-admin"
	RoleAdmin      Role = "admin"
	RoleAgent      Role = "agent"

	// RoleNone marks an unauthenticated caller.
	RoleNone Role = ""
)

// ParseRole maps a raw string onto a known role. Unknown values
// come back as RoleNone so a tampered token never grants access.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleAgent:
		return Role(s)
	}
	return RoleNone
}

func (r Role) Authenticated() bool {
	return r == RoleSuperAdmin || r == RoleAdmin || r == RoleAgent
}

func (r Role) String() string {
	return string(r)
}
