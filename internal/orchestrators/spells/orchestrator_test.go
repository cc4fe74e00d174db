package spells_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-spellbook/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellbook/internal/errors"
	"github.com/KirkDiggler/rpg-spellbook/internal/filters"
	"github.com/KirkDiggler/rpg-spellbook/internal/grid"
	"github.com/KirkDiggler/rpg-spellbook/internal/orchestrators/spells"
	"github.com/KirkDiggler/rpg-spellbook/internal/pkg/idgen"
	filterview "github.com/KirkDiggler/rpg-spellbook/internal/repositories/filter_view"
	filterviewmock "github.com/KirkDiggler/rpg-spellbook/internal/repositories/filter_view/mock"
	spellsmock "github.com/KirkDiggler/rpg-spellbook/internal/repositories/spells/mock"
	"github.com/KirkDiggler/rpg-spellbook/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockSpellRepo *spellsmock.MockRepository
	mockViewRepo  *filterviewmock.MockRepository
	orchestrator  spells.Service
	ctx           context.Context
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSpellRepo = spellsmock.NewMockRepository(s.ctrl)
	s.mockViewRepo = filterviewmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	orchestrator, err := spells.NewOrchestrator(&spells.Config{
		SpellRepo:   s.mockSpellRepo,
		ViewRepo:    s.mockViewRepo,
		IDGenerator: idgen.NewSequential("view"),
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectCatalog() {
	s.mockSpellRepo.EXPECT().ListSpells(s.ctx).Return(testutils.TestSpells(), nil)
}

func (s *OrchestratorTestSuite) expectView(view *filterview.View) {
	s.mockViewRepo.EXPECT().
		Get(s.ctx, filterview.GetInput{ID: view.ID}).
		Return(&filterview.GetOutput{View: view}, nil)
}

func rowIDs(rows []spells.Row) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.Spell.ID
	}
	return ids
}

func selection(values ...int) *filters.Model {
	return &filters.Model{Value: filters.Selection(values)}
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := spells.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = spells.NewOrchestrator(&spells.Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = spells.NewOrchestrator(&spells.Config{
		SpellRepo: s.mockSpellRepo,
		ViewRepo:  s.mockViewRepo,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListSpells_NoFilters() {
	s.expectCatalog()

	out, err := s.orchestrator.ListSpells(s.ctx, &spells.ListSpellsInput{})
	s.Require().NoError(err)

	s.Equal(testutils.SpellIDs(testutils.TestSpells()), rowIDs(out.Rows))
	s.Equal(6, out.TotalCount)
	s.Equal(0, out.ActiveFilterCount)
	s.Empty(out.FilterModel)
	s.Require().Len(out.Columns, len(spell.DefaultColumns))
	s.Equal("name", out.Columns[0].Field)
	s.False(out.Columns[0].Filterable)
	s.True(out.Columns[1].Filterable)
}

func (s *OrchestratorTestSuite) TestListSpells_SchoolFilterDropsMissingValues() {
	s.expectCatalog()

	out, err := s.orchestrator.ListSpells(s.ctx, &spells.ListSpellsInput{
		FilterModel: grid.FilterModel{
			"school": selection(int(spell.SchoolEnchantment), int(spell.SchoolEvocation)),
		},
	})
	s.Require().NoError(err)

	// chronal-shift has no school label, so no school selection matches it
	s.Equal([]string{"fire-bolt", "magic-missile", "fireball", "hold-person"}, rowIDs(out.Rows))
	s.Equal(1, out.ActiveFilterCount)
	s.Contains(out.FilterModel, "school")
}

func (s *OrchestratorTestSuite) TestListSpells_EmptySelectionHidesEverything() {
	s.expectCatalog()

	out, err := s.orchestrator.ListSpells(s.ctx, &spells.ListSpellsInput{
		FilterModel: grid.FilterModel{"ritual": selection()},
	})
	s.Require().NoError(err)

	s.Empty(out.Rows)
	s.Equal(1, out.ActiveFilterCount)
	s.Require().Contains(out.FilterModel, "ritual")
	s.Empty(out.FilterModel["ritual"].Value)
}

func (s *OrchestratorTestSuite) TestListSpells_BooleanFilter() {
	s.expectCatalog()

	out, err := s.orchestrator.ListSpells(s.ctx, &spells.ListSpellsInput{
		FilterModel: grid.FilterModel{"ritual": selection(1)},
	})
	s.Require().NoError(err)
	s.Equal([]string{"alarm"}, rowIDs(out.Rows))
}

func (s *OrchestratorTestSuite) TestListSpells_ViewThenExplicitModel() {
	s.expectCatalog()
	s.expectView(&filterview.View{
		ID:             "view_evocations",
		Name:           "Low evocations",
		FilterModel:    map[string]*filters.Model{"level": selection(1, 3)},
		SortField:      "name",
		SortDescending: true,
	})

	out, err := s.orchestrator.ListSpells(s.ctx, &spells.ListSpellsInput{
		ViewID:      "view_evocations",
		FilterModel: grid.FilterModel{"school": selection(int(spell.SchoolEvocation))},
	})
	s.Require().NoError(err)

	s.Equal([]string{"magic-missile", "fireball"}, rowIDs(out.Rows))
	s.Equal(2, out.ActiveFilterCount)
	s.Contains(out.FilterModel, "level")
	s.Contains(out.FilterModel, "school")
	s.Equal("name", out.SortField)
	s.True(out.Descending)
}

func (s *OrchestratorTestSuite) TestListSpells_SortFieldReplacesViewSort() {
	s.expectCatalog()
	s.expectView(&filterview.View{
		ID:             "view_evocations",
		FilterModel:    map[string]*filters.Model{"level": selection(1, 3)},
		SortField:      "name",
		SortDescending: true,
	})

	out, err := s.orchestrator.ListSpells(s.ctx, &spells.ListSpellsInput{
		ViewID:      "view_evocations",
		FilterModel: grid.FilterModel{"school": selection(int(spell.SchoolEvocation))},
		SortField:   "level",
	})
	s.Require().NoError(err)

	s.Equal([]string{"magic-missile", "fireball"}, rowIDs(out.Rows))
	s.Equal("level", out.SortField)
	s.False(out.Descending)
}

func (s *OrchestratorTestSuite) TestListSpells_NilEntryClearsViewFilter() {
	s.expectCatalog()
	s.expectView(&filterview.View{
		ID:          "view_1",
		FilterModel: map[string]*filters.Model{"level": selection(1)},
	})

	out, err := s.orchestrator.ListSpells(s.ctx, &spells.ListSpellsInput{
		ViewID:      "view_1",
		FilterModel: grid.FilterModel{"level": nil},
	})
	s.Require().NoError(err)
	s.Len(out.Rows, 6)
	s.Equal(0, out.ActiveFilterCount)
}

func (s *OrchestratorTestSuite) TestListSpells_ViewNotFound() {
	s.expectCatalog()
	s.mockViewRepo.EXPECT().
		Get(s.ctx, filterview.GetInput{ID: "missing"}).
		Return(nil, errors.NotFound("view not found"))

	_, err := s.orchestrator.ListSpells(s.ctx, &spells.ListSpellsInput{ViewID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListSpells_CatalogError() {
	s.mockSpellRepo.EXPECT().ListSpells(s.ctx).Return(nil, errors.Unavailable("dnd5e api down"))

	_, err := s.orchestrator.ListSpells(s.ctx, &spells.ListSpellsInput{})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestListSpells_UnknownFilterField() {
	s.expectCatalog()

	_, err := s.orchestrator.ListSpells(s.ctx, &spells.ListSpellsInput{
		FilterModel: grid.FilterModel{"components": selection(0)},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListSpells_Toggles() {
	s.expectCatalog()

	out, err := s.orchestrator.ListSpells(s.ctx, &spells.ListSpellsInput{
		Toggles: []spells.FilterToggle{{Field: "school", Value: int(spell.SchoolEvocation)}},
	})
	s.Require().NoError(err)

	s.Equal([]string{"alarm", "hold-person"}, rowIDs(out.Rows))
	s.Equal(1, out.ActiveFilterCount)
	s.Len(out.FilterModel["school"].Value, spell.SchoolCount-1)
}

func (s *OrchestratorTestSuite) TestListSpells_ToggleTwiceRestoresDefault() {
	s.expectCatalog()

	out, err := s.orchestrator.ListSpells(s.ctx, &spells.ListSpellsInput{
		Toggles: []spells.FilterToggle{
			{Field: "concentration", Value: 0},
			{Field: "concentration", Value: 0},
		},
	})
	s.Require().NoError(err)
	s.Len(out.Rows, 6)
	s.Empty(out.FilterModel)
}

func (s *OrchestratorTestSuite) TestListSpells_InvalidToggles() {
	testCases := []struct {
		name   string
		toggle spells.FilterToggle
	}{
		{name: "outside the domain", toggle: spells.FilterToggle{Field: "level", Value: 10}},
		{name: "negative code", toggle: spells.FilterToggle{Field: "level", Value: -1}},
		{name: "unknown column", toggle: spells.FilterToggle{Field: "components", Value: 0}},
		{name: "unfilterable column", toggle: spells.FilterToggle{Field: "name", Value: 0}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectCatalog()
			_, err := s.orchestrator.ListSpells(s.ctx, &spells.ListSpellsInput{
				Toggles: []spells.FilterToggle{tc.toggle},
			})
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestListSpells_SortByLevelDescending() {
	s.expectCatalog()

	out, err := s.orchestrator.ListSpells(s.ctx, &spells.ListSpellsInput{
		SortField:  "level",
		Descending: true,
	})
	s.Require().NoError(err)

	s.Equal([]string{
		"fireball", "hold-person", "chronal-shift", "alarm", "magic-missile", "fire-bolt",
	}, rowIDs(out.Rows))
}

func (s *OrchestratorTestSuite) TestListSpells_UnsortableColumn() {
	s.expectCatalog()

	_, err := s.orchestrator.ListSpells(s.ctx, &spells.ListSpellsInput{SortField: "material"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListSpells_ColumnsAndCells() {
	s.expectCatalog()

	out, err := s.orchestrator.ListSpells(s.ctx, &spells.ListSpellsInput{
		Columns: []string{"name", "school", "source"},
	})
	s.Require().NoError(err)

	s.Require().Len(out.Columns, 3)
	s.Equal("School", out.Columns[1].HeaderName)

	fireBolt := out.Rows[0]
	s.Equal([]string{"Fire Bolt", "Evocation", "PHB"}, fireBolt.Cells)
	s.Equal("Player's Handbook, p. 242", fireBolt.Tooltips[2])
	s.Empty(fireBolt.Tooltips[0])

	chronalShift := out.Rows[5]
	s.Equal([]string{"Chronal Shift", "", ""}, chronalShift.Cells)
}

func (s *OrchestratorTestSuite) TestListSpells_Selection() {
	s.expectCatalog()

	out, err := s.orchestrator.ListSpells(s.ctx, &spells.ListSpellsInput{
		Selected: []string{"fireball"},
	})
	s.Require().NoError(err)

	for _, row := range out.Rows {
		s.Equal(row.Spell.ID == "fireball", row.Selected, row.Spell.ID)
	}

	s.expectCatalog()
	_, err = s.orchestrator.ListSpells(s.ctx, &spells.ListSpellsInput{Selected: []string{"wish"}})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListSpells_NilInput() {
	_, err := s.orchestrator.ListSpells(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetFilterOptions() {
	s.expectCatalog()

	out, err := s.orchestrator.GetFilterOptions(s.ctx, &spells.GetFilterOptionsInput{Field: "level"})
	s.Require().NoError(err)

	s.Equal("level", out.Field)
	s.False(out.Active)
	s.Require().Len(out.Options, spell.LevelCount)
	for i, opt := range out.Options {
		s.Equal(i, opt.Value)
		s.Equal(spell.LevelLabel(i), opt.Label)
		s.True(opt.Checked)
	}
}

func (s *OrchestratorTestSuite) TestGetFilterOptions_WithModel() {
	s.expectCatalog()

	out, err := s.orchestrator.GetFilterOptions(s.ctx, &spells.GetFilterOptionsInput{
		Field:       "ritual",
		FilterModel: grid.FilterModel{"ritual": selection(1)},
	})
	s.Require().NoError(err)

	s.True(out.Active)
	s.Equal([]filters.Option{
		{Value: 0, Label: "No", Checked: false},
		{Value: 1, Label: "Yes", Checked: true},
	}, out.Options)
}

func (s *OrchestratorTestSuite) TestGetFilterOptions_InvalidField() {
	_, err := s.orchestrator.GetFilterOptions(s.ctx, &spells.GetFilterOptionsInput{})
	s.True(errors.IsInvalidArgument(err))

	s.expectCatalog()
	_, err = s.orchestrator.GetFilterOptions(s.ctx, &spells.GetFilterOptionsInput{Field: "details"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSaveView_StoresActiveFiltersOnly() {
	var saved *filterview.View
	s.mockViewRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input filterview.CreateInput) (*filterview.CreateOutput, error) {
			saved = input.View
			stored := *input.View
			stored.CreatedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
			return &filterview.CreateOutput{View: &stored}, nil
		})

	out, err := s.orchestrator.SaveView(s.ctx, &spells.SaveViewInput{
		Name: "Cantrips and first level",
		FilterModel: grid.FilterModel{
			"level":  selection(0, 1),
			"ritual": selection(0, 1),
		},
		Columns:   []string{"name", "level"},
		SortField: "level",
	})
	s.Require().NoError(err)

	s.Require().NotNil(saved)
	s.Equal("view_1", saved.ID)
	s.Equal("Cantrips and first level", saved.Name)
	s.Equal(map[string]*filters.Model{"level": selection(0, 1)}, saved.FilterModel)
	s.Equal([]string{"name", "level"}, saved.Columns)
	s.Equal("level", saved.SortField)
	s.False(out.View.CreatedAt.IsZero())
}

func (s *OrchestratorTestSuite) TestSaveView_Rejected() {
	testCases := []struct {
		name  string
		input *spells.SaveViewInput
	}{
		{name: "nil input"},
		{name: "missing name", input: &spells.SaveViewInput{}},
		{
			name:  "unknown filter column",
			input: &spells.SaveViewInput{Name: "x", FilterModel: grid.FilterModel{"components": selection()}},
		},
		{
			name:  "unknown visible column",
			input: &spells.SaveViewInput{Name: "x", Columns: []string{"name", "page"}},
		},
		{
			name:  "unsortable column",
			input: &spells.SaveViewInput{Name: "x", SortField: "details"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.SaveView(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestSaveView_AlreadyExists() {
	s.mockViewRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.AlreadyExists("view already exists"))

	_, err := s.orchestrator.SaveView(s.ctx, &spells.SaveViewInput{Name: "dupe"})
	s.Equal(errors.CodeAlreadyExists, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestGetView() {
	view := &filterview.View{ID: "view_7", Name: "Rituals"}
	s.expectView(view)

	out, err := s.orchestrator.GetView(s.ctx, &spells.GetViewInput{ID: "view_7"})
	s.Require().NoError(err)
	s.Equal(view, out.View)

	_, err = s.orchestrator.GetView(s.ctx, &spells.GetViewInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListViews() {
	views := []*filterview.View{{ID: "view_1"}, {ID: "view_2"}}
	s.mockViewRepo.EXPECT().
		List(s.ctx, filterview.ListInput{}).
		Return(&filterview.ListOutput{Views: views}, nil)

	out, err := s.orchestrator.ListViews(s.ctx, &spells.ListViewsInput{})
	s.Require().NoError(err)
	s.Equal(views, out.Views)
}

func (s *OrchestratorTestSuite) TestDeleteView() {
	s.mockViewRepo.EXPECT().
		Delete(s.ctx, filterview.DeleteInput{ID: "view_1"}).
		Return(&filterview.DeleteOutput{}, nil)

	_, err := s.orchestrator.DeleteView(s.ctx, &spells.DeleteViewInput{ID: "view_1"})
	s.Require().NoError(err)

	s.mockViewRepo.EXPECT().
		Delete(s.ctx, filterview.DeleteInput{ID: "view_2"}).
		Return(nil, errors.NotFound("view not found"))

	_, err = s.orchestrator.DeleteView(s.ctx, &spells.DeleteViewInput{ID: "view_2"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestViewsWithoutRepository() {
	orchestrator, err := spells.NewOrchestrator(&spells.Config{SpellRepo: s.mockSpellRepo})
	s.Require().NoError(err)

	_, err = orchestrator.ListViews(s.ctx, &spells.ListViewsInput{})
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))

	_, err = orchestrator.SaveView(s.ctx, &spells.SaveViewInput{Name: "x"})
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))

	s.expectCatalog()
	_, err = orchestrator.ListSpells(s.ctx, &spells.ListSpellsInput{ViewID: "view_1"})
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
}
