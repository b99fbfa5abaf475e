package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicAgendaItemCreated is the Watermill topic published when an agenda item
// is created.
const TopicAgendaItemCreated = "agenda_item.created"

// AgendaItemCreatedEvent is published after a new AgendaItem is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicAgendaItemCreated).
type AgendaItemCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     uuid.UUID `json:"item_id"`
	FolderID   uuid.UUID `json:"folder_id"`
	CreatorID  uuid.UUID `json:"creator_id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
}
