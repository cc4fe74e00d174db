// Package grid is the in-process host for column filters: it owns the rows,
// runs the filter pass, sorts, and serializes the filter model.
package grid

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-spellbook/internal/errors"
	"github.com/KirkDiggler/rpg-spellbook/internal/filters"
)

// FilterModel maps a column field to its filter model. Only active filters
// appear in a model produced by the grid.
type FilterModel map[string]*filters.Model

// ColumnDef describes one column
type ColumnDef[T any] struct {
	Field      string
	HeaderName string

	// Filter is nil for columns that cannot be filtered
	Filter filters.Filter[T]

	// ValueFormatter renders the cell
	ValueFormatter func(row T) string

	// Tooltip is optional
	Tooltip func(row T) string

	// Comparator orders rows; nil falls back to the formatted values
	Comparator func(a, b T) int

	Sortable bool
	Hide     bool
}

// Config holds the columns and rows of a grid
type Config[T core.Entity] struct {
	Columns []ColumnDef[T]
	Rows    []T
}

// Validate ensures the column set is usable
func (c *Config[T]) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if len(c.Columns) == 0 {
		vb.RequiredField("Columns")
	}

	seen := make(map[string]bool, len(c.Columns))
	for i, col := range c.Columns {
		if col.Field == "" {
			vb.Fieldf("Columns", "column %d has no field", i)
			continue
		}
		if seen[col.Field] {
			vb.Fieldf("Columns", "duplicate field %s", col.Field)
		}
		seen[col.Field] = true
		if col.ValueFormatter == nil {
			vb.Fieldf("Columns", "column %s has no value formatter", col.Field)
		}
	}

	return vb.Build()
}

// Grid holds rows and columns and re-runs its filter pass whenever a filter
// reports a change. It is driven from a single goroutine.
type Grid[T core.Entity] struct {
	columns   []*ColumnDef[T]
	byField   map[string]*ColumnDef[T]
	rows      []T
	displayed []T
	sortField string
	sortDesc  bool
	selected  map[string]bool
}

// New creates a grid and adopts every column filter
func New[T core.Entity](cfg *Config[T]) (*Grid[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid grid config")
	}

	g := &Grid[T]{
		byField:  make(map[string]*ColumnDef[T], len(cfg.Columns)),
		rows:     cfg.Rows,
		selected: make(map[string]bool),
	}

	for i := range cfg.Columns {
		col := cfg.Columns[i]
		g.columns = append(g.columns, &col)
		g.byField[col.Field] = &col

		if notifier, ok := col.Filter.(filters.ChangeNotifier); ok {
			notifier.SetFilterChangedCallback(g.OnFilterChanged)
		}
	}

	g.refresh()
	return g, nil
}

// OnFilterChanged re-runs the filter pass; filters call it after user actions
func (g *Grid[T]) OnFilterChanged() {
	g.refresh()
}

// refresh rebuilds the displayed rows from the active filters and the sort
func (g *Grid[T]) refresh() {
	active := make([]filters.Filter[T], 0, len(g.columns))
	for _, col := range g.columns {
		if col.Filter != nil && col.Filter.IsFilterActive() {
			active = append(active, col.Filter)
		}
	}

	displayed := make([]T, 0, len(g.rows))
	for _, row := range g.rows {
		if passesAll(row, active) {
			displayed = append(displayed, row)
		}
	}

	if col, ok := g.byField[g.sortField]; ok {
		sort.SliceStable(displayed, func(i, j int) bool {
			cmp := compare(col, displayed[i], displayed[j])
			if g.sortDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	g.displayed = displayed
}

func passesAll[T any](row T, active []filters.Filter[T]) bool {
	for _, f := range active {
		if !f.DoesFilterPass(row) {
			return false
		}
	}
	return true
}

func compare[T any](col *ColumnDef[T], a, b T) int {
	if col.Comparator != nil {
		return col.Comparator(a, b)
	}
	return strings.Compare(col.ValueFormatter(a), col.ValueFormatter(b))
}

// DisplayedRows returns the rows passing every active filter, in sort order
func (g *Grid[T]) DisplayedRows() []T {
	out := make([]T, len(g.displayed))
	copy(out, g.displayed)
	return out
}

// RowCount is the number of rows before filtering
func (g *Grid[T]) RowCount() int {
	return len(g.rows)
}

// Column looks up a column by field
func (g *Grid[T]) Column(field string) (ColumnDef[T], bool) {
	col, ok := g.byField[field]
	if !ok {
		return ColumnDef[T]{}, false
	}
	return *col, true
}

// Filter returns the filter attached to a column
func (g *Grid[T]) Filter(field string) (filters.Filter[T], error) {
	col, ok := g.byField[field]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown column: %s", field)
	}
	if col.Filter == nil {
		return nil, errors.InvalidArgumentf("column %s is not filterable", field)
	}
	return col.Filter, nil
}

// Cell renders one cell
func (g *Grid[T]) Cell(row T, field string) string {
	col, ok := g.byField[field]
	if !ok {
		return ""
	}
	return col.ValueFormatter(row)
}
