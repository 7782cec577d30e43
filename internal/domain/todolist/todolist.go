// Package todolist defines the to-do list aggregate: a named list that owns an
// ordered sequence of checkable items, and the read-only summary projection
// used by listing views.
package todolist

import (
	"strings"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
)

// List is a named, ordered collection of items. Items keep insertion order
// and never share an ID.
type List struct {
	ID    string
	Name  string
	Items []Item
}

// Item is a single entry of a List. Its ID is unique within the parent list
// and never changes after creation.
type Item struct {
	ID      string
	Label   string
	Checked bool
}

// Summary is a read-only projection of a List for listing views. ItemCount
// is computed by the store at query time and is never persisted.
type Summary struct {
	ID        string
	Name      string
	ItemCount int
}

// Item returns the item with the given ID and whether it was found.
func (l *List) Item(id string) (Item, bool) {
	for _, it := range l.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Summary derives the listing projection of l.
func (l *List) Summary() Summary {
	return Summary{ID: l.ID, Name: l.Name, ItemCount: len(l.Items)}
}

// ValidateName checks that a list name is non-empty.
// Returns a *domain.ValidationError keyed by "name" on failure.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}
	}
	return nil
}

// ValidateLabel checks that an item label is non-empty.
// Returns a *domain.ValidationError keyed by "label" on failure.
func ValidateLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return &domain.ValidationError{Fields: map[string]string{"label": domain.MsgRequired}}
	}
	return nil
}
