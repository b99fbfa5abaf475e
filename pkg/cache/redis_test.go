package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/convene/pkg/config"
)

func newTestConfig(url string) *config.Config {
	return &config.Config{
		RedisURL: url,
	}
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(newTestConfig("not-a-valid-url"))
	if err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	_, err := NewRedisClient(newTestConfig("redis://localhost:19999"))
	if err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

func TestAgendaItemCache_KeyScopedByFolder(t *testing.T) {
	c := &AgendaItemCache{}
	folderID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	itemID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	key := c.key(folderID, itemID)
	want := "agenda_item:123e4567-e89b-12d3-a456-426614174000:550e8400-e29b-41d4-a716-446655440000"
	if key != want {
		t.Fatalf("expected key %q, got %q", want, key)
	}

	otherFolder := c.key(uuid.New(), itemID)
	if otherFolder == key {
		t.Fatal("keys for different folders must differ")
	}
}

// Integration tests — skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	t.Run("Ping_Success", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		if err := rc.Ping(context.Background()); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("AgendaItemCache_RoundTrip", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		c := NewAgendaItemCache(rc)
		ctx := context.Background()
		item := &CachedAgendaItem{
			ID:        uuid.New(),
			FolderID:  uuid.New(),
			CreatorID: uuid.New(),
			Name:      "Opening remarks",
			Type:      "general",
			CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		}

		if err := c.Set(ctx, item); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := c.Get(ctx, item.FolderID, item.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.ID != item.ID || got.Name != item.Name || got.Type != item.Type {
			t.Fatalf("round trip mismatch: got %+v, want %+v", got, item)
		}
		if !got.CreatedAt.Equal(item.CreatedAt) {
			t.Fatalf("CreatedAt mismatch: got %v, want %v", got.CreatedAt, item.CreatedAt)
		}

		if err := c.Delete(ctx, item.FolderID, item.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := c.Get(ctx, item.FolderID, item.ID); err == nil {
			t.Fatal("expected miss after delete")
		}
	})

	t.Run("Close_Idempotent", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := rc.Close(); err != nil {
			t.Fatalf("first Close failed: %v", err)
		}
	})
}
