package models

import "fmt"

// ItemType classifies an agenda item.
type ItemType string

const (
	ItemTypeGeneral   ItemType = "general"
	ItemTypeNote      ItemType = "note"
	ItemTypeScripture ItemType = "scripture"
	ItemTypeSong      ItemType = "song"
)

// NewItemType parses an item type, rejecting values outside the enumeration.
func NewItemType(s string) (ItemType, error) {
	switch ItemType(s) {
	case ItemTypeGeneral, ItemTypeNote, ItemTypeScripture, ItemTypeSong:
		return ItemType(s), nil
	default:
		return "", fmt.Errorf("unknown agenda item type %q", s)
	}
}

// String returns the storage representation.
func (t ItemType) String() string {
	return string(t)
}
