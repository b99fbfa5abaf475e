package models

import (
	"time"

	"github.com/google/uuid"
)

// AgendaItem is the core aggregate for this bounded context. Created by
// exactly one insert; never mutated by the creation pipeline afterwards.
type AgendaItem struct {
	ID        uuid.UUID
	FolderID  uuid.UUID // owning agenda folder; always filter by this in queries
	CreatorID uuid.UUID
	Name      ItemName
	Type      ItemType
	CreatedAt time.Time
}

// NewAgendaItem constructs a valid AgendaItem aggregate with generated ID and
// current timestamp.
func NewAgendaItem(folderID, creatorID uuid.UUID, name ItemName, itemType ItemType) (*AgendaItem, error) {
	return &AgendaItem{
		ID:        uuid.New(),
		FolderID:  folderID,
		CreatorID: creatorID,
		Name:      name,
		Type:      itemType,
		CreatedAt: time.Now().UTC(),
	}, nil
}
