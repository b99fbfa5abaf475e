package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// AgendaItemCacheTTL is the time-to-live for cached agenda items.
	AgendaItemCacheTTL = 24 * time.Hour

	agendaItemCacheKeyPrefix = "agenda_item"
)

// CachedAgendaItem is the denormalized read model stored in Redis.
// Fields are stored as a Redis hash. Additional fields from other aggregates
// can be added here for read optimization without touching the domain model.
type CachedAgendaItem struct {
	ID        uuid.UUID `json:"id"`
	FolderID  uuid.UUID `json:"folder_id"`
	CreatorID uuid.UUID `json:"creator_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// AgendaItemCache provides structured read/write operations for agenda item
// cache entries. Keys are scoped by folderID so entries from one folder can
// never be served for another.
// Key format: "agenda_item:{folderID}:{itemID}"
type AgendaItemCache struct {
	client *RedisClient
}

// NewAgendaItemCache creates a new AgendaItemCache backed by the given RedisClient.
func NewAgendaItemCache(r *RedisClient) *AgendaItemCache {
	return &AgendaItemCache{client: r}
}

// Get retrieves a cached agenda item by folder + item ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *AgendaItemCache) Get(ctx context.Context, folderID, itemID uuid.UUID) (*CachedAgendaItem, error) {
	key := c.key(folderID, itemID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	fid, err := uuid.Parse(vals["folder_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse folder_id: %w", err)
	}
	cid, err := uuid.Parse(vals["creator_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse creator_id: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}

	return &CachedAgendaItem{
		ID:        id,
		FolderID:  fid,
		CreatorID: cid,
		Name:      vals["name"],
		Type:      vals["type"],
		CreatedAt: createdAt,
	}, nil
}

// Set writes a cached agenda item as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *AgendaItemCache) Set(ctx context.Context, item *CachedAgendaItem) error {
	key := c.key(item.FolderID, item.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", item.ID.String(),
		"folder_id", item.FolderID.String(),
		"creator_id", item.CreatorID.String(),
		"name", item.Name,
		"type", item.Type,
		"created_at", item.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, AgendaItemCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached agenda item. Missing keys are not an error.
func (c *AgendaItemCache) Delete(ctx context.Context, folderID, itemID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(folderID, itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *AgendaItemCache) key(folderID, itemID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", agendaItemCacheKeyPrefix, folderID, itemID)
}
