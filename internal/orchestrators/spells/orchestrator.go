// Package spells browses the spell catalog through a filtered, sorted grid and
// manages saved views of that grid
package spells

//go:generate mockgen -destination=mock/mock_service.go -package=spellsvcmock github.com/KirkDiggler/rpg-spellbook/internal/orchestrators/spells Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-spellbook/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellbook/internal/errors"
	"github.com/KirkDiggler/rpg-spellbook/internal/grid"
	"github.com/KirkDiggler/rpg-spellbook/internal/pkg/idgen"
	filterview "github.com/KirkDiggler/rpg-spellbook/internal/repositories/filter_view"
	spellrepo "github.com/KirkDiggler/rpg-spellbook/internal/repositories/spells"
)

// Service defines the interface for spell browsing
type Service interface {
	ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error)
	GetFilterOptions(ctx context.Context, input *GetFilterOptionsInput) (*GetFilterOptionsOutput, error)
	SaveView(ctx context.Context, input *SaveViewInput) (*SaveViewOutput, error)
	GetView(ctx context.Context, input *GetViewInput) (*GetViewOutput, error)
	ListViews(ctx context.Context, input *ListViewsInput) (*ListViewsOutput, error)
	DeleteView(ctx context.Context, input *DeleteViewInput) (*DeleteViewOutput, error)
}

// Config holds the dependencies for the spells orchestrator
type Config struct {
	SpellRepo spellrepo.Repository

	// ViewRepo is optional; view operations fail without it
	ViewRepo    filterview.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.SpellRepo == nil {
		vb.RequiredField("SpellRepo")
	}
	if c.ViewRepo != nil && c.IDGenerator == nil {
		vb.Field("IDGenerator", "is required when ViewRepo is set")
	}

	return vb.Build()
}

type orchestrator struct {
	spellRepo spellrepo.Repository
	viewRepo  filterview.Repository
	idGen     idgen.Generator
}

// NewOrchestrator creates a new spells orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		spellRepo: cfg.SpellRepo,
		viewRepo:  cfg.ViewRepo,
		idGen:     cfg.IDGenerator,
	}, nil
}

// ListSpells builds a grid over the catalog, applies the view and then the
// explicit settings, and renders the displayed rows.
//
// A view's sort can be replaced but not removed: an empty SortField keeps it,
// and Descending only applies alongside a SortField.
func (o *orchestrator) ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	g, err := o.loadGrid(ctx, input.ViewID, input.FilterModel)
	if err != nil {
		return nil, err
	}

	for _, t := range input.Toggles {
		if err := toggle(g, t); err != nil {
			return nil, err
		}
	}

	if input.SortField != "" {
		if err := g.SetSort(input.SortField, input.Descending); err != nil {
			return nil, err
		}
	}

	if len(input.Columns) > 0 {
		if err := g.SetVisibleColumns(input.Columns); err != nil {
			return nil, err
		}
	}

	for _, id := range input.Selected {
		if err := g.SelectRow(id); err != nil {
			return nil, err
		}
	}

	return render(g), nil
}

// GetFilterOptions returns the checkboxes of one column under the given model
func (o *orchestrator) GetFilterOptions(
	ctx context.Context,
	input *GetFilterOptionsInput,
) (*GetFilterOptionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Field == "" {
		return nil, errors.InvalidArgument("field is required")
	}

	g, err := o.loadGrid(ctx, input.ViewID, input.FilterModel)
	if err != nil {
		return nil, err
	}

	f, err := setFilter(g, input.Field)
	if err != nil {
		return nil, err
	}

	return &GetFilterOptionsOutput{
		Field:   input.Field,
		Options: f.Options(),
		Active:  f.IsFilterActive(),
	}, nil
}

// SaveView validates the layout against the spell columns and stores it.
// Only active filters are kept.
func (o *orchestrator) SaveView(ctx context.Context, input *SaveViewInput) (*SaveViewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("name is required")
	}
	if o.viewRepo == nil {
		return nil, errViewsDisabled()
	}

	g, err := NewGrid(nil)
	if err != nil {
		return nil, err
	}
	if err := g.SetFilterModel(input.FilterModel); err != nil {
		return nil, err
	}
	if len(input.Columns) > 0 {
		if err := g.SetVisibleColumns(input.Columns); err != nil {
			return nil, err
		}
	}
	if err := g.SetSort(input.SortField, input.Descending); err != nil {
		return nil, err
	}

	view := &filterview.View{
		ID:             o.idGen.Generate(),
		Name:           input.Name,
		FilterModel:    g.GetFilterModel(),
		Columns:        input.Columns,
		SortField:      input.SortField,
		SortDescending: input.Descending,
	}

	out, err := o.viewRepo.Create(ctx, filterview.CreateInput{View: view})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save view")
	}

	slog.Info("Filter view saved",
		"view_id", out.View.ID,
		"name", out.View.Name,
		"active_filters", len(out.View.FilterModel))

	return &SaveViewOutput{View: out.View}, nil
}

// GetView loads a saved view
func (o *orchestrator) GetView(ctx context.Context, input *GetViewInput) (*GetViewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("id is required")
	}

	view, err := o.getView(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetViewOutput{View: view}, nil
}

// ListViews returns every saved view
func (o *orchestrator) ListViews(ctx context.Context, _ *ListViewsInput) (*ListViewsOutput, error) {
	if o.viewRepo == nil {
		return nil, errViewsDisabled()
	}

	out, err := o.viewRepo.List(ctx, filterview.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list views")
	}

	return &ListViewsOutput{Views: out.Views}, nil
}

// DeleteView removes a saved view
func (o *orchestrator) DeleteView(ctx context.Context, input *DeleteViewInput) (*DeleteViewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("id is required")
	}
	if o.viewRepo == nil {
		return nil, errViewsDisabled()
	}

	if _, err := o.viewRepo.Delete(ctx, filterview.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete view %s", input.ID)
	}

	slog.Info("Filter view deleted", "view_id", input.ID)

	return &DeleteViewOutput{}, nil
}

func errViewsDisabled() error {
	return errors.FailedPrecondition("saved views are not configured")
}

func (o *orchestrator) getView(ctx context.Context, id string) (*filterview.View, error) {
	if o.viewRepo == nil {
		return nil, errViewsDisabled()
	}

	out, err := o.viewRepo.Get(ctx, filterview.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get view %s", id)
	}
	return out.View, nil
}

// loadGrid builds a grid over the catalog with the view applied, then the
// explicit model merged over the view's model column by column
func (o *orchestrator) loadGrid(
	ctx context.Context,
	viewID string,
	model grid.FilterModel,
) (*grid.Grid[*spell.Spell], error) {
	rows, err := o.spellRepo.ListSpells(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load spells")
	}

	g, err := NewGrid(rows)
	if err != nil {
		return nil, err
	}

	if viewID != "" {
		view, err := o.getView(ctx, viewID)
		if err != nil {
			return nil, err
		}
		if err := applyView(g, view); err != nil {
			return nil, errors.Wrapf(err, "view %s no longer matches the spell columns", viewID)
		}
	}

	if len(model) > 0 {
		merged := g.GetFilterModel()
		for field, m := range model {
			merged[field] = m
		}
		if err := g.SetFilterModel(merged); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func applyView(g *grid.Grid[*spell.Spell], view *filterview.View) error {
	if err := g.SetFilterModel(view.FilterModel); err != nil {
		return err
	}
	if len(view.Columns) > 0 {
		if err := g.SetVisibleColumns(view.Columns); err != nil {
			return err
		}
	}
	return g.SetSort(view.SortField, view.SortDescending)
}

// toggle clicks one checkbox; the filter notifies the grid itself
func toggle(g *grid.Grid[*spell.Spell], t FilterToggle) error {
	f, err := setFilter(g, t.Field)
	if err != nil {
		return err
	}
	if t.Value < 0 || t.Value >= len(f.Options()) {
		return errors.InvalidArgumentf("value %d is outside the %s domain", t.Value, t.Field)
	}

	f.Toggle(t.Value)
	return nil
}

func render(g *grid.Grid[*spell.Spell]) *ListSpellsOutput {
	visible := g.VisibleColumns()
	columns := make([]ColumnInfo, len(visible))
	for i, col := range visible {
		columns[i] = ColumnInfo{
			Field:      col.Field,
			HeaderName: col.HeaderName,
			Filterable: col.Filter != nil,
			Active:     col.Filter != nil && col.Filter.IsFilterActive(),
		}
	}

	selected := make(map[string]bool)
	for _, s := range g.SelectedRows() {
		selected[s.ID] = true
	}

	displayed := g.DisplayedRows()
	rows := make([]Row, len(displayed))
	for i, s := range displayed {
		row := Row{
			Spell:    s,
			Cells:    make([]string, len(visible)),
			Tooltips: make([]string, len(visible)),
			Selected: selected[s.ID],
		}
		for j, col := range visible {
			row.Cells[j] = col.ValueFormatter(s)
			if col.Tooltip != nil {
				row.Tooltips[j] = col.Tooltip(s)
			}
		}
		rows[i] = row
	}

	sortField, desc := g.Sort()

	return &ListSpellsOutput{
		Columns:           columns,
		Rows:              rows,
		TotalCount:        g.RowCount(),
		ActiveFilterCount: g.ActiveFilterCount(),
		FilterModel:       g.GetFilterModel(),
		SortField:         sortField,
		Descending:        desc,
	}
}
