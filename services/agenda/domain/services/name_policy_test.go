package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/convene/services/agenda/domain/models"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   models.ItemName
		wantErr bool
	}{
		{"valid name", "Opening remarks", false},
		{"valid name with special chars", "Psalm-23_reading!", false},
		{"valid single space between words", "closing prayer", false},
		{"leading whitespace", " Name", true},
		{"trailing whitespace", "Name ", true},
		{"leading and trailing whitespace", " Name ", true},
		{"only whitespace", "   ", true},
		{"tab character (control)", "Name\tName", true},
		{"newline character (control)", "Name\nName", true},
		{"null byte (control)", "Name\x00", true},
		{"DEL character", "Name\x7F", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateName(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateItemForCreation(t *testing.T) {
	valid := func() *models.AgendaItem {
		item, err := models.NewAgendaItem(uuid.New(), uuid.New(), models.ItemName("Opening remarks"), models.ItemTypeGeneral)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return item
	}

	t.Run("nil item returns error", func(t *testing.T) {
		if err := ValidateItemForCreation(nil); err == nil {
			t.Fatal("expected error for nil item")
		}
	})

	t.Run("valid item returns nil", func(t *testing.T) {
		if err := ValidateItemForCreation(valid()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("name violating policy returns error", func(t *testing.T) {
		item := valid()
		item.Name = models.ItemName(" padded")
		if err := ValidateItemForCreation(item); err == nil {
			t.Fatal("expected error for padded name")
		}
	})

	t.Run("unknown type returns error", func(t *testing.T) {
		item := valid()
		item.Type = models.ItemType("sermon")
		if err := ValidateItemForCreation(item); err == nil {
			t.Fatal("expected error for unknown type")
		}
	})

	t.Run("zero folder id returns error", func(t *testing.T) {
		item := valid()
		item.FolderID = uuid.Nil
		if err := ValidateItemForCreation(item); err == nil {
			t.Fatal("expected error for zero folder id")
		}
	})

	t.Run("zero creator id returns error", func(t *testing.T) {
		item := valid()
		item.CreatorID = uuid.Nil
		if err := ValidateItemForCreation(item); err == nil {
			t.Fatal("expected error for zero creator id")
		}
	})
}
