// Package services contains stateless domain services for the agenda bounded
// context. Domain services enforce business rules that operate purely on
// domain types and have zero external dependencies beyond stdlib and the
// domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ghuser/convene/services/agenda/domain/models"
)

// ValidateName enforces business rules for agenda item names beyond the
// structural constraints enforced by the ItemName constructor (length 1–256).
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - Must not be only whitespace characters
func ValidateName(name models.ItemName) error {
	s := name.String()

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("agenda item name must not be only whitespace")
	}

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("agenda item name must not have leading or trailing whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("agenda item name must not contain control characters")
		}
	}

	return nil
}

// ValidateItemForCreation performs cross-field validation on a
// fully-constructed AgendaItem aggregate before it is persisted. It assumes
// the item was built via models.NewAgendaItem (so structural constraints are
// already satisfied) and adds business-level checks that span multiple fields.
func ValidateItemForCreation(item *models.AgendaItem) error {
	if item == nil {
		return fmt.Errorf("agenda item cannot be nil")
	}

	if err := ValidateName(item.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if _, err := models.NewItemType(item.Type.String()); err != nil {
		return fmt.Errorf("invalid type: %w", err)
	}

	if item.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	if item.FolderID == uuid.Nil {
		return fmt.Errorf("folder_id must be set")
	}

	if item.CreatorID == uuid.Nil {
		return fmt.Errorf("creator_id must be set")
	}

	return nil
}
