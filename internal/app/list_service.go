// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todolist"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

// Compile-time check that ListService implements ports.ListService.
var _ ports.ListService = (*ListService)(nil)

// ListService implements ports.ListService on top of the ListStore port.
// It logs each use case and materializes summary sequences. Input rules live
// behind the store, which checks ids before names and labels so a request
// with both wrong answers for the id.
type ListService struct {
	store  ports.ListStore
	logger *slog.Logger
}

// NewListService creates a ListService. The logger is used when a request
// context carries none; a nil logger discards output.
func NewListService(store ports.ListStore, logger *slog.Logger) *ListService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ListService{
		store:  store,
		logger: logger,
	}
}

// ListSummaries drains the store's summary sequence into a slice.
func (s *ListService) ListSummaries(ctx context.Context) ([]todolist.Summary, error) {
	s.log(ctx).InfoContext(ctx, "listing lists")

	seq, err := s.store.ListSummaries(ctx)
	if err != nil {
		s.logFailure(ctx, "ListSummaries", err)
		return nil, err
	}

	summaries := make([]todolist.Summary, 0)
	for summary, err := range seq {
		if err != nil {
			s.logFailure(ctx, "ListSummaries", err)
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// CreateList creates an empty list and returns it with its assigned ID.
func (s *ListService) CreateList(ctx context.Context, name string) (*todolist.List, error) {
	s.log(ctx).InfoContext(ctx, "creating list", slog.String("name", name))

	id, err := s.store.CreateList(ctx, name)
	if err != nil {
		s.logFailure(ctx, "CreateList", err)
		return nil, err
	}

	return &todolist.List{ID: id, Name: name, Items: []todolist.Item{}}, nil
}

// GetList returns one list with its items in insertion order.
func (s *ListService) GetList(ctx context.Context, id string) (*todolist.List, error) {
	s.log(ctx).InfoContext(ctx, "fetching list", slog.String("id", id))

	list, err := s.store.GetList(ctx, id)
	if err != nil {
		s.logFailure(ctx, "GetList", err, slog.String("id", id))
		return nil, err
	}
	return list, nil
}

// RenameList replaces a list name and returns the updated list.
func (s *ListService) RenameList(ctx context.Context, id, name string) (*todolist.List, error) {
	s.log(ctx).InfoContext(ctx, "renaming list", slog.String("id", id))

	list, err := s.store.RenameList(ctx, id, name)
	if err != nil {
		s.logFailure(ctx, "RenameList", err, slog.String("id", id))
		return nil, err
	}
	return list, nil
}

// DeleteList deletes a list and reports whether it existed.
func (s *ListService) DeleteList(ctx context.Context, id string) (bool, error) {
	s.log(ctx).InfoContext(ctx, "deleting list", slog.String("id", id))

	deleted, err := s.store.DeleteList(ctx, id)
	if err != nil {
		s.logFailure(ctx, "DeleteList", err, slog.String("id", id))
		return false, err
	}
	return deleted, nil
}

// AddItem appends an unchecked item and returns the updated list.
func (s *ListService) AddItem(ctx context.Context, listID, label string) (*todolist.List, error) {
	s.log(ctx).InfoContext(ctx, "adding item", slog.String("list_id", listID))

	list, err := s.store.CreateItem(ctx, listID, label)
	if err != nil {
		s.logFailure(ctx, "AddItem", err, slog.String("list_id", listID))
		return nil, err
	}
	return list, nil
}

// ToggleItem flips the checked flag of one item.
func (s *ListService) ToggleItem(ctx context.Context, listID, itemID string) (*todolist.List, error) {
	s.log(ctx).InfoContext(ctx, "toggling item",
		slog.String("list_id", listID),
		slog.String("item_id", itemID),
	)

	list, err := s.store.ToggleItem(ctx, listID, itemID)
	if err != nil {
		s.logFailure(ctx, "ToggleItem", err,
			slog.String("list_id", listID),
			slog.String("item_id", itemID),
		)
		return nil, err
	}
	return list, nil
}

// EditItem replaces the label of one item.
func (s *ListService) EditItem(ctx context.Context, listID, itemID, label string) (*todolist.List, error) {
	s.log(ctx).InfoContext(ctx, "editing item",
		slog.String("list_id", listID),
		slog.String("item_id", itemID),
	)

	list, err := s.store.EditItem(ctx, listID, itemID, label)
	if err != nil {
		s.logFailure(ctx, "EditItem", err,
			slog.String("list_id", listID),
			slog.String("item_id", itemID),
		)
		return nil, err
	}
	return list, nil
}

// RemoveItem deletes an item. Removing an item that is already gone returns
// the list unchanged.
func (s *ListService) RemoveItem(ctx context.Context, listID, itemID string) (*todolist.List, error) {
	s.log(ctx).InfoContext(ctx, "removing item",
		slog.String("list_id", listID),
		slog.String("item_id", itemID),
	)

	list, err := s.store.DeleteItem(ctx, listID, itemID)
	if err != nil {
		s.logFailure(ctx, "RemoveItem", err,
			slog.String("list_id", listID),
			slog.String("item_id", itemID),
		)
		return nil, err
	}
	return list, nil
}

// logFailure logs caller mistakes at warn and everything else at error.
func (s *ListService) logFailure(ctx context.Context, op string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrInvalidID) {
		level = slog.LevelWarn
	}

	attrs = append(attrs,
		slog.String("operation", op),
		slog.Any("error", err),
	)
	s.log(ctx).LogAttrs(ctx, level, "list operation failed", attrs...)
}

// log prefers the request-scoped logger so lines carry request_id and
// correlation_id.
func (s *ListService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}
