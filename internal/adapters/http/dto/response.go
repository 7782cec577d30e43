// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import "github.com/jsamuelsen11/go-todolist-service/internal/domain/todolist"

// SummaryResponse is one entry of the list index.
type SummaryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ItemCount int    `json:"item_count"`
}

// ListResponse represents a full list with its items.
type ListResponse struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Items []ItemResponse `json:"items"`
}

// ItemResponse represents a single item inside a ListResponse.
type ItemResponse struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// CreateListResponse is returned when a list is created.
type CreateListResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DeleteListResponse reports whether a list existed before deletion.
type DeleteListResponse struct {
	Deleted bool `json:"deleted"`
}

// ToSummaryResponses converts summaries to response DTOs. The result is
// never nil so an empty index encodes as [].
func ToSummaryResponses(summaries []todolist.Summary) []SummaryResponse {
	out := make([]SummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = SummaryResponse{
			ID:        s.ID,
			Name:      s.Name,
			ItemCount: s.ItemCount,
		}
	}
	return out
}

// ToListResponse converts a domain List to its response DTO. Items are
// always encoded as an array.
func ToListResponse(l *todolist.List) ListResponse {
	items := make([]ItemResponse, len(l.Items))
	for i, it := range l.Items {
		items[i] = ItemResponse{
			ID:      it.ID,
			Label:   it.Label,
			Checked: it.Checked,
		}
	}
	return ListResponse{
		ID:    l.ID,
		Name:  l.Name,
		Items: items,
	}
}

func ToCreateListResponse(l *todolist.List) CreateListResponse {
	return CreateListResponse{ID: l.ID, Name: l.Name}
}
