package dto

// Request bodies are only decoded here. Emptiness and id format are checked
// by the store, which looks at the path id first.

// CreateListRequest represents the JSON body for creating a list.
type CreateListRequest struct {
	Name string `json:"name"`
}

// RenameListRequest represents the JSON body for renaming a list.
type RenameListRequest struct {
	Name string `json:"name"`
}

// CreateItemRequest represents the JSON body for adding an item to a list.
type CreateItemRequest struct {
	Label string `json:"label"`
}

// EditItemRequest represents the JSON body for replacing an item's label.
type EditItemRequest struct {
	Label string `json:"label"`
}
