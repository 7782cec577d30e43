package mongodb_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/store/mongodb"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todolist"
)

// newIntegrationStore connects to the MongoDB named by APP_MONGO_TEST_URI
// and returns a store over a collection that is dropped when the test ends.
func newIntegrationStore(t *testing.T) *mongodb.Store {
	t.Helper()

	uri := os.Getenv("APP_MONGO_TEST_URI")
	if uri == "" {
		t.Skip("APP_MONGO_TEST_URI not set; skipping MongoDB integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("mongo.Connect error: %v", err)
	}

	coll := client.Database("todolist_test").Collection(fmt.Sprintf("lists_%s", primitive.NewObjectID().Hex()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = coll.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return mongodb.NewStore(coll)
}

func collectSummaries(t *testing.T, store *mongodb.Store) map[string]todolist.Summary {
	t.Helper()

	seq, err := store.ListSummaries(context.Background())
	if err != nil {
		t.Fatalf("ListSummaries() error = %v", err)
	}

	out := make(map[string]todolist.Summary)
	for s, err := range seq {
		if err != nil {
			t.Fatalf("sequence error = %v", err)
		}
		out[s.ID] = s
	}
	return out
}

func TestIntegration_CreateThenGet(t *testing.T) {
	store := newIntegrationStore(t)
	ctx := context.Background()

	for _, name := range []string{"Groceries", "Chores", "  padded  "} {
		id, err := store.CreateList(ctx, name)
		if err != nil {
			t.Fatalf("CreateList(%q) error = %v", name, err)
		}

		got, err := store.GetList(ctx, id)
		if err != nil {
			t.Fatalf("GetList(%q) error = %v", id, err)
		}
		if got.Name != name {
			t.Errorf("Name = %q, want %q", got.Name, name)
		}
		if len(got.Items) != 0 {
			t.Errorf("len(Items) = %d, want 0", len(got.Items))
		}
	}
}

func TestIntegration_SummaryCountsMatchItems(t *testing.T) {
	store := newIntegrationStore(t)
	ctx := context.Background()

	if got := collectSummaries(t, store); len(got) != 0 {
		t.Fatalf("summaries before any list = %d, want 0", len(got))
	}

	empty, _ := store.CreateList(ctx, "Empty")
	full, _ := store.CreateList(ctx, "Full")
	for _, label := range []string{"a", "b", "c"} {
		if _, err := store.CreateItem(ctx, full, label); err != nil {
			t.Fatalf("CreateItem error = %v", err)
		}
	}

	summaries := collectSummaries(t, store)
	for _, id := range []string{empty, full} {
		list, err := store.GetList(ctx, id)
		if err != nil {
			t.Fatalf("GetList error = %v", err)
		}
		if summaries[id].ItemCount != len(list.Items) {
			t.Errorf("summary %s ItemCount = %d, want %d", id, summaries[id].ItemCount, len(list.Items))
		}
	}
}

func TestIntegration_ToggleIsInvolution(t *testing.T) {
	store := newIntegrationStore(t)
	ctx := context.Background()

	id, _ := store.CreateList(ctx, "Groceries")
	list, err := store.CreateItem(ctx, id, "Buy Milk")
	if err != nil {
		t.Fatalf("CreateItem error = %v", err)
	}
	itemID := list.Items[0].ID

	once, err := store.ToggleItem(ctx, id, itemID)
	if err != nil {
		t.Fatalf("ToggleItem error = %v", err)
	}
	if item, _ := once.Item(itemID); !item.Checked {
		t.Error("after one toggle Checked = false, want true")
	}

	twice, err := store.ToggleItem(ctx, id, itemID)
	if err != nil {
		t.Fatalf("ToggleItem error = %v", err)
	}
	if item, _ := twice.Item(itemID); item.Checked {
		t.Error("after two toggles Checked = true, want false")
	}
}

func TestIntegration_ConcurrentAddsKeepUniqueIDs(t *testing.T) {
	store := newIntegrationStore(t)
	ctx := context.Background()

	id, _ := store.CreateList(ctx, "Groceries")

	const n = 20
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.CreateItem(ctx, id, fmt.Sprintf("item %d", i)); err != nil {
				t.Errorf("CreateItem error = %v", err)
			}
		}()
	}
	wg.Wait()

	list, err := store.GetList(ctx, id)
	if err != nil {
		t.Fatalf("GetList error = %v", err)
	}
	if len(list.Items) != n {
		t.Fatalf("len(Items) = %d, want %d (lost update)", len(list.Items), n)
	}
	seen := make(map[string]bool, n)
	for _, it := range list.Items {
		if seen[it.ID] {
			t.Errorf("duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestIntegration_ItemIDStartingWithDollar(t *testing.T) {
	store := newIntegrationStore(t)
	ctx := context.Background()

	id, _ := store.CreateList(ctx, "Groceries")
	if _, err := store.CreateItem(ctx, id, "Buy Milk"); err != nil {
		t.Fatalf("CreateItem error = %v", err)
	}

	_, err := store.ToggleItem(ctx, id, "$items")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ToggleItem(\"$items\") error = %v, want ErrNotFound", err)
	}
}

func TestIntegration_Lifecycle(t *testing.T) {
	store := newIntegrationStore(t)
	ctx := context.Background()

	id, err := store.CreateList(ctx, "Groceries")
	if err != nil {
		t.Fatalf("CreateList error = %v", err)
	}

	list, err := store.CreateItem(ctx, id, "Buy Milk")
	if err != nil {
		t.Fatalf("CreateItem error = %v", err)
	}
	itemID := list.Items[0].ID

	if list, err = store.EditItem(ctx, id, itemID, "Buy Oat Milk"); err != nil {
		t.Fatalf("EditItem error = %v", err)
	}
	if list.Items[0].Label != "Buy Oat Milk" {
		t.Errorf("Label = %q, want %q", list.Items[0].Label, "Buy Oat Milk")
	}

	if list, err = store.RenameList(ctx, id, "Weekly Groceries"); err != nil {
		t.Fatalf("RenameList error = %v", err)
	}
	if list.Name != "Weekly Groceries" {
		t.Errorf("Name = %q, want %q", list.Name, "Weekly Groceries")
	}

	if list, err = store.DeleteItem(ctx, id, itemID); err != nil {
		t.Fatalf("DeleteItem error = %v", err)
	}
	if _, ok := list.Item(itemID); ok {
		t.Error("item still present after DeleteItem")
	}

	if list, err = store.DeleteItem(ctx, id, itemID); err != nil {
		t.Fatalf("second DeleteItem error = %v, want nil", err)
	}

	deleted, err := store.DeleteList(ctx, id)
	if err != nil || !deleted {
		t.Fatalf("DeleteList = %v, %v; want true, nil", deleted, err)
	}
	deleted, err = store.DeleteList(ctx, id)
	if err != nil || deleted {
		t.Fatalf("second DeleteList = %v, %v; want false, nil", deleted, err)
	}

	if _, err := store.GetList(ctx, id); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetList after delete error = %v, want ErrNotFound", err)
	}
	if _, err := store.CreateItem(ctx, id, "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("CreateItem after delete error = %v, want ErrNotFound", err)
	}
}
