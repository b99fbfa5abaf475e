package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewAgendaItem(t *testing.T) {
	folderID := uuid.New()
	creatorID := uuid.New()
	name := ItemName("Opening remarks")

	t.Run("returns item with non-zero ID", func(t *testing.T) {
		item, err := NewAgendaItem(folderID, creatorID, name, ItemTypeGeneral)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID == (uuid.UUID{}) {
			t.Fatal("expected non-zero UUID for ID")
		}
	})

	t.Run("sets FolderID and CreatorID correctly", func(t *testing.T) {
		item, err := NewAgendaItem(folderID, creatorID, name, ItemTypeSong)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.FolderID != folderID {
			t.Fatalf("expected FolderID %v, got %v", folderID, item.FolderID)
		}
		if item.CreatorID != creatorID {
			t.Fatalf("expected CreatorID %v, got %v", creatorID, item.CreatorID)
		}
	})

	t.Run("sets Name and Type correctly", func(t *testing.T) {
		item, err := NewAgendaItem(folderID, creatorID, name, ItemTypeScripture)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Name != name {
			t.Fatalf("expected Name %v, got %v", name, item.Name)
		}
		if item.Type != ItemTypeScripture {
			t.Fatalf("expected Type scripture, got %v", item.Type)
		}
	})

	t.Run("sets CreatedAt to approximately now UTC", func(t *testing.T) {
		before := time.Now().UTC()
		item, err := NewAgendaItem(folderID, creatorID, name, ItemTypeNote)
		after := time.Now().UTC()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.CreatedAt.IsZero() {
			t.Fatal("expected non-zero CreatedAt")
		}
		if item.CreatedAt.Before(before) || item.CreatedAt.After(after) {
			t.Fatalf("CreatedAt %v not between %v and %v", item.CreatedAt, before, after)
		}
	})

	t.Run("generates unique IDs on each call", func(t *testing.T) {
		item1, _ := NewAgendaItem(folderID, creatorID, name, ItemTypeGeneral)
		item2, _ := NewAgendaItem(folderID, creatorID, name, ItemTypeGeneral)
		if item1.ID == item2.ID {
			t.Fatal("expected unique IDs, got identical")
		}
	})
}

func TestRole(t *testing.T) {
	t.Run("parses known roles", func(t *testing.T) {
		for _, s := range []string{"regular", "administrator"} {
			r, err := NewRole(s)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", s, err)
			}
			if r.String() != s {
				t.Fatalf("expected %q, got %q", s, r.String())
			}
		}
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		if _, err := NewRole("owner"); err == nil {
			t.Fatal("expected error for unknown role")
		}
	})

	t.Run("only administrator is administrator", func(t *testing.T) {
		if RoleRegular.IsAdministrator() {
			t.Fatal("regular must not be administrator")
		}
		if !RoleAdministrator.IsAdministrator() {
			t.Fatal("administrator must be administrator")
		}
	})
}
