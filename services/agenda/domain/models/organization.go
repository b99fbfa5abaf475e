package models

import "github.com/google/uuid"

// Organization owns events; memberships are scoped to one organization.
type Organization struct {
	ID          uuid.UUID
	Name        string
	CountryCode string
}

// Membership is the role a user holds within a specific organization,
// distinct from the user's global role.
type Membership struct {
	OrganizationID uuid.UUID
	UserID         uuid.UUID
	Role           Role
}
