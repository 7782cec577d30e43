package mongodb

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todolist"
)

// listDocument is the stored shape of a to-do list. Items are embedded so
// that every list mutation touches exactly one document.
type listDocument struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"name"`
	Items []itemDocument     `bson:"items"`
}

// itemDocument is the stored shape of a list item.
type itemDocument struct {
	ID      string `bson:"id"`
	Label   string `bson:"label"`
	Checked bool   `bson:"checked"`
}

// summaryDocument is the projected shape returned by the summary query.
// ItemCount is computed server-side with $size.
type summaryDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	ItemCount int                `bson:"item_count"`
}

// toDomain converts a stored list into the domain entity. A missing or null
// items array becomes an empty, non-nil slice.
func (d *listDocument) toDomain() *todolist.List {
	items := make([]todolist.Item, len(d.Items))
	for i, it := range d.Items {
		items[i] = todolist.Item{
			ID:      it.ID,
			Label:   it.Label,
			Checked: it.Checked,
		}
	}
	return &todolist.List{
		ID:    d.ID.Hex(),
		Name:  d.Name,
		Items: items,
	}
}

func (d *summaryDocument) toDomain() todolist.Summary {
	return todolist.Summary{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		ItemCount: d.ItemCount,
	}
}

// newListDocument builds the document inserted for a freshly created list.
// Items is an empty array rather than null so $size and $push work on it.
func newListDocument(name string) listDocument {
	return listDocument{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Items: []itemDocument{},
	}
}
