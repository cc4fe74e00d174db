package spells

import (
	"github.com/KirkDiggler/rpg-spellbook/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellbook/internal/filters"
	"github.com/KirkDiggler/rpg-spellbook/internal/grid"
	filterview "github.com/KirkDiggler/rpg-spellbook/internal/repositories/filter_view"
)

// FilterToggle is one checkbox click on a column filter
type FilterToggle struct {
	Field string
	Value int
}

// ListSpellsInput defines the request for browsing the catalog
type ListSpellsInput struct {
	// ViewID loads a saved view before the explicit settings are applied
	ViewID string

	// FilterModel overrides the view per column; an entry with an empty
	// selection filters out every row
	FilterModel grid.FilterModel

	// Toggles are applied after the model, the way a user clicks checkboxes
	Toggles []FilterToggle

	// SortField overrides the view's sort when set; empty keeps the view's
	// sort, including its direction
	SortField  string
	Descending bool

	// Columns overrides the visible columns when set
	Columns []string

	// Selected marks rows by ID
	Selected []string
}

// ColumnInfo describes a visible column
type ColumnInfo struct {
	Field      string
	HeaderName string
	Filterable bool
	Active     bool
}

// Row is one displayed spell with its rendered cells
type Row struct {
	Spell    *spell.Spell
	Cells    []string
	Tooltips []string
	Selected bool
}

// ListSpellsOutput defines the response for browsing the catalog
type ListSpellsOutput struct {
	Columns []ColumnInfo
	Rows    []Row

	// TotalCount is the catalog size before filtering
	TotalCount int

	ActiveFilterCount int

	// FilterModel is the effective model; save it to reproduce the view
	FilterModel grid.FilterModel

	SortField  string
	Descending bool
}

// GetFilterOptionsInput defines the request for one column's checkboxes
type GetFilterOptionsInput struct {
	Field       string
	FilterModel grid.FilterModel
	ViewID      string
}

// GetFilterOptionsOutput defines the checkboxes of one column
type GetFilterOptionsOutput struct {
	Field   string
	Options []filters.Option
	Active  bool
}

// SaveViewInput defines the request for saving a view
type SaveViewInput struct {
	Name        string
	FilterModel grid.FilterModel
	Columns     []string
	SortField   string
	Descending  bool
}

// SaveViewOutput defines the response for saving a view
type SaveViewOutput struct {
	View *filterview.View
}

// GetViewInput defines the request for loading a view
type GetViewInput struct {
	ID string
}

// GetViewOutput defines the response for loading a view
type GetViewOutput struct {
	View *filterview.View
}

// ListViewsInput defines the request for listing views
type ListViewsInput struct{}

// ListViewsOutput defines the response for listing views
type ListViewsOutput struct {
	Views []*filterview.View
}

// DeleteViewInput defines the request for deleting a view
type DeleteViewInput struct {
	ID string
}

// DeleteViewOutput defines the response for deleting a view
type DeleteViewOutput struct{}
