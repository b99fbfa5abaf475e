package models

import "testing"

func TestNewItemType(t *testing.T) {
	t.Run("accepts every enumerated type", func(t *testing.T) {
		for _, s := range []string{"general", "note", "scripture", "song"} {
			typ, err := NewItemType(s)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", s, err)
			}
			if typ.String() != s {
				t.Fatalf("expected %q, got %q", s, typ.String())
			}
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		for _, s := range []string{"", "sermon", "General", "NOTE", "song "} {
			if _, err := NewItemType(s); err == nil {
				t.Fatalf("expected error for %q", s)
			}
		}
	})
}
