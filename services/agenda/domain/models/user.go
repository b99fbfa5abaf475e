package models

import "github.com/google/uuid"

// User is the acting identity resolved from the caller's session.
// Immutable for the duration of one request.
type User struct {
	ID   uuid.UUID
	Name string
	Role Role // global role, independent of any organization membership
}
