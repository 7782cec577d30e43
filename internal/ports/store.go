package ports

import (
	"context"
	"iter"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todolist"
)

// ListStore defines the data access port for to-do lists. It is the only
// path to the document store: no caller reads or writes list documents
// directly. Every mutation is issued as a single-document atomic command.
//
// List IDs are store-assigned; a malformed ID yields a *domain.InvalidIDError.
type ListStore interface {
	// ListSummaries returns a lazy, finite sequence of summaries, one per
	// stored list, in storage iteration order. The sequence can be ranged
	// over once; the underlying cursor is released when iteration ends.
	// The query runs before the sequence is returned, so a caller that gets
	// a nil error must range over it, even only to break, or the server
	// cursor stays open until it times out.
	// The returned error covers issuing the query; errors while iterating
	// are yielded alongside a zero Summary and end the sequence.
	ListSummaries(ctx context.Context) (iter.Seq2[todolist.Summary, error], error)

	// CreateList persists a new list with no items and returns its ID.
	// Returns domain.ErrValidation if name is empty.
	CreateList(ctx context.Context, name string) (string, error)

	// GetList returns the full list.
	// Returns domain.ErrNotFound if no list has that ID.
	GetList(ctx context.Context, id string) (*todolist.List, error)

	// RenameList sets a new name and returns the updated list.
	// Returns domain.ErrValidation or domain.ErrNotFound.
	RenameList(ctx context.Context, id, name string) (*todolist.List, error)

	// DeleteList removes the list and all its items. It reports whether a
	// list existed; deleting an absent list is not an error.
	DeleteList(ctx context.Context, id string) (bool, error)

	// CreateItem appends an unchecked item with a generated ID and returns
	// the updated list.
	// Returns domain.ErrNotFound if the list is absent, domain.ErrValidation
	// if label is empty.
	CreateItem(ctx context.Context, listID, label string) (*todolist.List, error)

	// ToggleItem flips the checked flag of an item and returns the updated list.
	// Returns domain.ErrNotFound if the list or the item is absent.
	ToggleItem(ctx context.Context, listID, itemID string) (*todolist.List, error)

	// EditItem replaces the label of an item and returns the updated list.
	// Returns domain.ErrNotFound or domain.ErrValidation.
	EditItem(ctx context.Context, listID, itemID, label string) (*todolist.List, error)

	// DeleteItem removes an item and returns the updated list. An absent
	// item leaves the list unchanged and is not an error.
	// Returns domain.ErrNotFound if the list is absent.
	DeleteItem(ctx context.Context, listID, itemID string) (*todolist.List, error)
}
