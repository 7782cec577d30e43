// Package mongodb implements the list data access layer on a MongoDB
// collection. Each list is one document with its items embedded; every
// mutation is a single findOneAndUpdate/deleteOne command so concurrent
// requests on the same list rely on the server's per-document atomicity
// rather than a read-modify-write cycle.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todolist"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

// Compile-time check that Store implements ports.ListStore.
var _ ports.ListStore = (*Store)(nil)

// maxItemIDAttempts bounds how often CreateItem regenerates an item id after
// the conditional push found the id already taken.
const maxItemIDAttempts = 3

const (
	resourceList = "list"
	resourceItem = "item"
)

// Store is the MongoDB-backed implementation of [ports.ListStore].
type Store struct {
	coll      *mongo.Collection
	newItemID func() string
	logger    *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithItemIDGenerator overrides the item id generator (UUID v4 by default).
func WithItemIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newItemID = fn
	}
}

// WithLogger sets the logger used for cursor cleanup failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a Store over the given collection.
func NewStore(coll *mongo.Collection, opts ...Option) *Store {
	s := &Store{
		coll:      coll,
		newItemID: uuid.NewString,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListSummaries runs one projected find and returns a sequence that pulls
// documents from the cursor as the caller ranges over it. The sequence is
// single-use: a second range yields nothing. The find is issued eagerly so
// its failure is returned here, which leaves closing the cursor to the
// range; ending it early closes the cursor too.
func (s *Store) ListSummaries(ctx context.Context) (iter.Seq2[todolist.Summary, error], error) {
	cur, err := s.coll.Find(ctx, bson.D{}, options.Find().SetProjection(summaryProjection()))
	if err != nil {
		return nil, storeError("finding lists", err)
	}

	var consumed atomic.Bool
	return func(yield func(todolist.Summary, error) bool) {
		if !consumed.CompareAndSwap(false, true) {
			return
		}
		defer s.closeCursor(ctx, cur)

		for cur.Next(ctx) {
			var doc summaryDocument
			if err := cur.Decode(&doc); err != nil {
				yield(todolist.Summary{}, fmt.Errorf("decoding list summary: %w", err))
				return
			}
			if !yield(doc.toDomain(), nil) {
				return
			}
		}
		if err := cur.Err(); err != nil {
			yield(todolist.Summary{}, storeError("iterating lists", err))
		}
	}, nil
}

// CreateList inserts an empty list and returns its id as a hex string.
func (s *Store) CreateList(ctx context.Context, name string) (string, error) {
	if err := todolist.ValidateName(name); err != nil {
		return "", err
	}

	doc := newListDocument(name)
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return "", storeError("inserting list", err)
	}
	return doc.ID.Hex(), nil
}

// GetList fetches one list by id.
func (s *Store) GetList(ctx context.Context, id string) (*todolist.List, error) {
	oid, err := parseListID(id)
	if err != nil {
		return nil, err
	}

	var doc listDocument
	if err := s.coll.FindOne(ctx, byList(oid)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &domain.NotFoundError{Resource: resourceList, ID: id}
		}
		return nil, storeError("finding list", err)
	}
	return doc.toDomain(), nil
}

// RenameList sets the list name in place.
func (s *Store) RenameList(ctx context.Context, id, name string) (*todolist.List, error) {
	oid, err := parseListID(id)
	if err != nil {
		return nil, err
	}
	if err := todolist.ValidateName(name); err != nil {
		return nil, err
	}

	doc, err := s.findAndUpdate(ctx, byList(oid), renameUpdate(name))
	if err != nil {
		return nil, storeError("renaming list", err)
	}
	if doc == nil {
		return nil, &domain.NotFoundError{Resource: resourceList, ID: id}
	}
	return doc.toDomain(), nil
}

// DeleteList removes the list document, which drops its embedded items with it.
func (s *Store) DeleteList(ctx context.Context, id string) (bool, error) {
	oid, err := parseListID(id)
	if err != nil {
		return false, err
	}

	res, err := s.coll.DeleteOne(ctx, byList(oid))
	if err != nil {
		return false, storeError("deleting list", err)
	}
	return res.DeletedCount > 0, nil
}

// CreateItem pushes a new unchecked item onto the list. The push is
// conditional on no existing item sharing the generated id; when the
// condition fails on an existing list a fresh id is drawn.
func (s *Store) CreateItem(ctx context.Context, listID, label string) (*todolist.List, error) {
	oid, err := parseListID(listID)
	if err != nil {
		return nil, err
	}
	if err := todolist.ValidateLabel(label); err != nil {
		return nil, err
	}

	for range maxItemIDAttempts {
		item := itemDocument{ID: s.newItemID(), Label: label, Checked: false}

		doc, err := s.findAndUpdate(ctx, byListWithoutItem(oid, item.ID), pushItemUpdate(item))
		if err != nil {
			return nil, storeError("adding item", err)
		}
		if doc != nil {
			return doc.toDomain(), nil
		}

		exists, err := s.listExists(ctx, oid)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, &domain.NotFoundError{Resource: resourceList, ID: listID}
		}
	}

	return nil, fmt.Errorf("adding item: no unused item id after %d attempts", maxItemIDAttempts)
}

// ToggleItem negates the checked flag of one item with a pipeline update.
func (s *Store) ToggleItem(ctx context.Context, listID, itemID string) (*todolist.List, error) {
	oid, err := parseListID(listID)
	if err != nil {
		return nil, err
	}

	doc, err := s.findAndUpdate(ctx, byListItem(oid, itemID), toggleItemPipeline(itemID))
	if err != nil {
		return nil, storeError("toggling item", err)
	}
	if doc == nil {
		return nil, s.missingListOrItem(ctx, oid, listID, itemID)
	}
	return doc.toDomain(), nil
}

// EditItem replaces the label of one item through the positional operator.
func (s *Store) EditItem(ctx context.Context, listID, itemID, label string) (*todolist.List, error) {
	oid, err := parseListID(listID)
	if err != nil {
		return nil, err
	}
	if err := todolist.ValidateLabel(label); err != nil {
		return nil, err
	}

	doc, err := s.findAndUpdate(ctx, byListItem(oid, itemID), editLabelUpdate(label))
	if err != nil {
		return nil, storeError("editing item", err)
	}
	if doc == nil {
		return nil, s.missingListOrItem(ctx, oid, listID, itemID)
	}
	return doc.toDomain(), nil
}

// DeleteItem pulls the item from the list. Pulling an id that is not present
// still matches the list and returns it unchanged.
func (s *Store) DeleteItem(ctx context.Context, listID, itemID string) (*todolist.List, error) {
	oid, err := parseListID(listID)
	if err != nil {
		return nil, err
	}

	doc, err := s.findAndUpdate(ctx, byList(oid), pullItemUpdate(itemID))
	if err != nil {
		return nil, storeError("removing item", err)
	}
	if doc == nil {
		return nil, &domain.NotFoundError{Resource: resourceList, ID: listID}
	}
	return doc.toDomain(), nil
}

// findAndUpdate applies update to the single document matching filter and
// returns the post-update document. A nil document with a nil error means
// the filter matched nothing.
func (s *Store) findAndUpdate(ctx context.Context, filter, update any) (*listDocument, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc listDocument
	if err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

// listExists reports whether a list document with oid is stored. It is
// only consulted after a conditional update matched nothing, to tell the
// caller which referenced entity was missing.
func (s *Store) listExists(ctx context.Context, oid primitive.ObjectID) (bool, error) {
	n, err := s.coll.CountDocuments(ctx, byList(oid), options.Count().SetLimit(1))
	if err != nil {
		return false, storeError("checking list", err)
	}
	return n > 0, nil
}

func (s *Store) missingListOrItem(ctx context.Context, oid primitive.ObjectID, listID, itemID string) error {
	exists, err := s.listExists(ctx, oid)
	if err != nil {
		return err
	}
	if !exists {
		return &domain.NotFoundError{Resource: resourceList, ID: listID}
	}
	return &domain.NotFoundError{Resource: resourceItem, ID: itemID}
}

func (s *Store) closeCursor(ctx context.Context, cur *mongo.Cursor) {
	if err := cur.Close(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to close cursor",
			slog.String("operation", "ListSummaries"),
			slog.Any("error", err),
		)
	}
}

// parseListID converts a hex list id into an ObjectID.
func parseListID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &domain.InvalidIDError{Field: "id", Value: id}
	}
	return oid, nil
}

// storeError wraps a driver error with the failed step. Network failures and
// timeouts additionally wrap domain.ErrUnavailable.
func storeError(step string, err error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, mongo.ErrClientDisconnected) {
		return fmt.Errorf("%s: %w: %w", step, domain.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", step, err)
}
