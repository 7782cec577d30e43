package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todolist"
)

// ListService defines the service port for to-do list operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Error semantics match ListStore.
type ListService interface {
	// ListSummaries returns a summary of every stored list. Returns an
	// empty, non-nil slice when no list exists.
	ListSummaries(ctx context.Context) ([]todolist.Summary, error)

	// CreateList creates an empty list and returns it with its assigned ID.
	CreateList(ctx context.Context, name string) (*todolist.List, error)

	// GetList returns a single list with its items.
	GetList(ctx context.Context, id string) (*todolist.List, error)

	// RenameList changes a list's name.
	RenameList(ctx context.Context, id, name string) (*todolist.List, error)

	// DeleteList deletes a list and reports whether it existed.
	DeleteList(ctx context.Context, id string) (bool, error)

	// AddItem appends a new unchecked item to a list.
	AddItem(ctx context.Context, listID, label string) (*todolist.List, error)

	// ToggleItem flips an item's checked flag.
	ToggleItem(ctx context.Context, listID, itemID string) (*todolist.List, error)

	// EditItem changes an item's label.
	EditItem(ctx context.Context, listID, itemID, label string) (*todolist.List, error)

	// RemoveItem deletes an item from a list.
	RemoveItem(ctx context.Context, listID, itemID string) (*todolist.List, error)
}
