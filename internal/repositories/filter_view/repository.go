// Package filterview stores named snapshots of the grid's filter model
package filterview

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-spellbook/internal/filters"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=filterviewmock github.com/KirkDiggler/rpg-spellbook/internal/repositories/filter_view Repository

// View is a saved grid layout. Only serialized filter models are stored,
// never live filter state.
type View struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// FilterModel holds the active filters as produced by the grid
	FilterModel map[string]*filters.Model `json:"filterModel"`

	// Columns lists the visible columns; empty means the defaults
	Columns []string `json:"columns,omitempty"`

	SortField      string `json:"sortField,omitempty"`
	SortDescending bool   `json:"sortDescending,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// CreateInput contains parameters for saving a view
type CreateInput struct {
	View *View
}

// CreateOutput contains the stored view
type CreateOutput struct {
	View *View
}

// GetInput contains parameters for loading a view
type GetInput struct {
	ID string
}

// GetOutput contains the loaded view
type GetOutput struct {
	View *View
}

// ListInput contains parameters for listing views
type ListInput struct{}

// ListOutput contains every stored view, oldest first
type ListOutput struct {
	Views []*View
}

// DeleteInput contains parameters for removing a view
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of removing a view
type DeleteOutput struct{}

// Repository defines storage operations for saved views
type Repository interface {
	// Create stores a new view; the ID must not be in use
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get loads a view by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every stored view
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a view
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
