package grid

import (
	"github.com/KirkDiggler/rpg-spellbook/internal/errors"
)

// SetSort orders the displayed rows by one column; an empty field restores
// row order
func (g *Grid[T]) SetSort(field string, descending bool) error {
	if field != "" {
		col, ok := g.byField[field]
		if !ok {
			return errors.InvalidArgumentf("unknown column: %s", field)
		}
		if !col.Sortable {
			return errors.InvalidArgumentf("column %s is not sortable", field)
		}
	}

	g.sortField = field
	g.sortDesc = descending
	g.refresh()
	return nil
}

// Sort returns the current sort column and direction
func (g *Grid[T]) Sort() (string, bool) {
	return g.sortField, g.sortDesc
}

// SetVisibleColumns shows exactly the named columns
func (g *Grid[T]) SetVisibleColumns(fields []string) error {
	visible := make(map[string]bool, len(fields))
	for _, field := range fields {
		if _, ok := g.byField[field]; !ok {
			return errors.InvalidArgumentf("unknown column: %s", field)
		}
		visible[field] = true
	}

	for _, col := range g.columns {
		col.Hide = !visible[col.Field]
	}
	return nil
}

// VisibleColumns lists the shown columns in definition order
func (g *Grid[T]) VisibleColumns() []ColumnDef[T] {
	var out []ColumnDef[T]
	for _, col := range g.columns {
		if !col.Hide {
			out = append(out, *col)
		}
	}
	return out
}

// SelectRow marks a row by entity ID
func (g *Grid[T]) SelectRow(id string) error {
	for _, row := range g.rows {
		if row.GetID() == id {
			g.selected[id] = true
			return nil
		}
	}
	return errors.NotFoundf("row %s not found", id)
}

// DeselectRow unmarks a row
func (g *Grid[T]) DeselectRow(id string) {
	delete(g.selected, id)
}

// SelectAllDisplayed marks every row that passes the current filters
func (g *Grid[T]) SelectAllDisplayed() {
	for _, row := range g.displayed {
		g.selected[row.GetID()] = true
	}
}

// ClearSelection unmarks every row
func (g *Grid[T]) ClearSelection() {
	g.selected = make(map[string]bool)
}

// SelectedRows returns marked rows in row order, whether or not they are
// currently displayed
func (g *Grid[T]) SelectedRows() []T {
	var out []T
	for _, row := range g.rows {
		if g.selected[row.GetID()] {
			out = append(out, row)
		}
	}
	return out
}
