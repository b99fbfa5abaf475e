package models

import "fmt"

// Role is a permission level, used both for a user's global role and for a
// membership's role within one organization.
type Role string

const (
	RoleRegular       Role = "regular"
	RoleAdministrator Role = "administrator"
)

// NewRole parses a role from its storage representation.
func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleRegular, RoleAdministrator:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// IsAdministrator reports whether the role grants administrative rights.
func (r Role) IsAdministrator() bool {
	return r == RoleAdministrator
}

// String returns the storage representation.
func (r Role) String() string {
	return string(r)
}
