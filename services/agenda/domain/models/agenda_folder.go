package models

import "github.com/google/uuid"

// AgendaFolder is a container under an event. Only folders with
// IsAgendaItemFolder set may directly hold agenda items.
type AgendaFolder struct {
	ID                 uuid.UUID
	EventID            uuid.UUID
	Name               string
	IsAgendaItemFolder bool
}
