package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Field names of the stored list document.
const (
	fieldID        = "_id"
	fieldName      = "name"
	fieldItems     = "items"
	fieldItemID    = "items.id"
	fieldItemCount = "item_count"
)

// byList matches a single list document.
func byList(id primitive.ObjectID) bson.D {
	return bson.D{{Key: fieldID, Value: id}}
}

// byListItem matches the list only when it holds an item with itemID.
func byListItem(id primitive.ObjectID, itemID string) bson.D {
	return bson.D{
		{Key: fieldID, Value: id},
		{Key: fieldItemID, Value: itemID},
	}
}

// byListWithoutItem matches the list only when no item carries itemID, so a
// $push can never introduce a duplicate item id.
func byListWithoutItem(id primitive.ObjectID, itemID string) bson.D {
	return bson.D{
		{Key: fieldID, Value: id},
		{Key: fieldItemID, Value: bson.D{{Key: "$ne", Value: itemID}}},
	}
}

// summaryProjection keeps the name and computes the item count at query time.
// $ifNull guards documents whose items field is missing or null.
func summaryProjection() bson.D {
	return bson.D{
		{Key: fieldName, Value: 1},
		{Key: fieldItemCount, Value: bson.D{
			{Key: "$size", Value: bson.D{
				{Key: "$ifNull", Value: bson.A{"$" + fieldItems, bson.A{}}},
			}},
		}},
	}
}

func renameUpdate(name string) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{{Key: fieldName, Value: name}}}}
}

func pushItemUpdate(item itemDocument) bson.D {
	return bson.D{{Key: "$push", Value: bson.D{{Key: fieldItems, Value: item}}}}
}

func pullItemUpdate(itemID string) bson.D {
	return bson.D{{Key: "$pull", Value: bson.D{
		{Key: fieldItems, Value: bson.D{{Key: "id", Value: itemID}}},
	}}}
}

// editLabelUpdate relies on the positional operator, so it must be paired
// with a filter that matches on items.id.
func editLabelUpdate(label string) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{{Key: "items.$.label", Value: label}}}}
}

// toggleItemPipeline rewrites the items array in one server-side step,
// negating checked on the entry whose id equals itemID. The id is wrapped in
// $literal so values beginning with "$" are never read as field paths.
func toggleItemPipeline(itemID string) mongo.Pipeline {
	matches := bson.D{{Key: "$eq", Value: bson.A{"$$item.id", bson.D{{Key: "$literal", Value: itemID}}}}}
	flipped := bson.D{{Key: "$mergeObjects", Value: bson.A{
		"$$item",
		bson.D{{Key: "checked", Value: bson.D{{Key: "$not", Value: bson.A{"$$item.checked"}}}}},
	}}}

	return mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: fieldItems, Value: bson.D{
				{Key: "$map", Value: bson.D{
					{Key: "input", Value: "$" + fieldItems},
					{Key: "as", Value: "item"},
					{Key: "in", Value: bson.D{
						{Key: "$cond", Value: bson.D{
							{Key: "if", Value: matches},
							{Key: "then", Value: flipped},
							{Key: "else", Value: "$$item"},
						}},
					}},
				}},
			}},
		}}},
	}
}
