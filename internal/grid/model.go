package grid

import (
	"sort"
)

// GetFilterModel serializes every active filter
func (g *Grid[T]) GetFilterModel() FilterModel {
	model := make(FilterModel)
	for _, col := range g.columns {
		if col.Filter == nil {
			continue
		}
		if m := col.Filter.GetModel(); m != nil {
			model[col.Field] = m
		}
	}
	return model
}

// SetFilterModel restores every filter. Columns missing from the model reset
// to their default. Nothing changes if the model names an unknown or
// unfilterable column.
func (g *Grid[T]) SetFilterModel(model FilterModel) error {
	fields := make([]string, 0, len(model))
	for field := range model {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		if _, err := g.Filter(field); err != nil {
			return err
		}
	}

	for _, col := range g.columns {
		if col.Filter != nil {
			col.Filter.SetModel(model[col.Field])
		}
	}

	g.refresh()
	return nil
}

// ResetFilters returns every filter to its default
func (g *Grid[T]) ResetFilters() {
	// an empty model names no columns, so it cannot fail
	_ = g.SetFilterModel(nil)
}

// ActiveFilterCount is the number of filters excluding something
func (g *Grid[T]) ActiveFilterCount() int {
	count := 0
	for _, col := range g.columns {
		if col.Filter != nil && col.Filter.IsFilterActive() {
			count++
		}
	}
	return count
}
