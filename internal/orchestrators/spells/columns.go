package spells

import (
	"cmp"
	"strings"

	"github.com/KirkDiggler/rpg-spellbook/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellbook/internal/errors"
	"github.com/KirkDiggler/rpg-spellbook/internal/filters"
	"github.com/KirkDiggler/rpg-spellbook/internal/grid"
)

// columnDescriptor is the table-level description of one spell column. A domain
// size of zero means the column has no filter.
type columnDescriptor struct {
	field      spell.Column
	domainSize int
	labelOf    filters.LabelFunc
	valueOf    func(s *spell.Spell) string
	tooltip    func(s *spell.Spell) string
	comparator func(a, b *spell.Spell) int
	sortable   bool
}

// coded builds a filterable column over an int-coded attribute. The cell and
// the filter both render the code through labelOf; sorting uses the code.
func coded(field spell.Column, size int, labelOf filters.LabelFunc, code func(s *spell.Spell) int) columnDescriptor {
	return columnDescriptor{
		field:      field,
		domainSize: size,
		labelOf:    labelOf,
		valueOf:    func(s *spell.Spell) string { return labelOf(code(s)) },
		comparator: func(a, b *spell.Spell) int { return cmp.Compare(code(a), code(b)) },
		sortable:   true,
	}
}

func boolean(field spell.Column, get func(s *spell.Spell) bool) columnDescriptor {
	return coded(field, spell.BooleanCount, spell.BooleanLabel, func(s *spell.Spell) int {
		if get(s) {
			return 1
		}
		return 0
	})
}

func text(field spell.Column, get func(s *spell.Spell) string, sortable bool) columnDescriptor {
	desc := columnDescriptor{
		field:    field,
		valueOf:  get,
		sortable: sortable,
	}
	if sortable {
		desc.comparator = func(a, b *spell.Spell) int {
			return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
		}
	}
	return desc
}

var columnTable = []columnDescriptor{
	text(spell.ColumnName, func(s *spell.Spell) string { return s.Name }, true),
	coded(spell.ColumnLevel, spell.LevelCount, spell.LevelLabel,
		func(s *spell.Spell) int { return s.Level }),
	coded(spell.ColumnSchool, spell.SchoolCount, func(v int) string { return spell.School(v).String() },
		func(s *spell.Spell) int { return int(s.School) }),
	coded(spell.ColumnCastingTime, spell.CastingTimeCount, func(v int) string { return spell.CastingTime(v).String() },
		func(s *spell.Spell) int { return int(s.CastingTime) }),
	coded(spell.ColumnDuration, spell.DurationCount, func(v int) string { return spell.Duration(v).String() },
		func(s *spell.Spell) int { return int(s.Duration) }),
	coded(spell.ColumnRange, spell.RangeCount, func(v int) string { return spell.Range(v).String() },
		func(s *spell.Spell) int { return int(s.Range) }),
	areaColumn(),
	coded(spell.ColumnAttack, spell.AttackCount, func(v int) string { return spell.Attack(v).String() },
		func(s *spell.Spell) int { return int(s.Attack) }),
	coded(spell.ColumnSave, spell.SaveCount, func(v int) string { return spell.SavingThrow(v).String() },
		func(s *spell.Spell) int { return int(s.Save) }),
	coded(spell.ColumnDamage, spell.DamageTypeCount, func(v int) string { return spell.DamageType(v).String() },
		func(s *spell.Spell) int { return int(s.Damage) }),
	coded(spell.ColumnEffect, spell.EffectCount, func(v int) string { return spell.Effect(v).String() },
		func(s *spell.Spell) int { return int(s.Effect) }),
	boolean(spell.ColumnRitual, func(s *spell.Spell) bool { return s.Ritual }),
	boolean(spell.ColumnConcentration, func(s *spell.Spell) bool { return s.Concentration }),
	boolean(spell.ColumnVerbal, func(s *spell.Spell) bool { return s.Verbal }),
	boolean(spell.ColumnSomatic, func(s *spell.Spell) bool { return s.Somatic }),
	text(spell.ColumnMaterial, func(s *spell.Spell) string { return s.Material }, false),
	sourceColumn(),
	text(spell.ColumnDetails, func(s *spell.Spell) string { return s.Details }, false),
}

// areaColumn filters on the shape alone; the cell also shows the size
func areaColumn() columnDescriptor {
	return columnDescriptor{
		field:      spell.ColumnArea,
		domainSize: spell.AreaShapeCount,
		labelOf:    func(v int) string { return spell.AreaShape(v).String() },
		valueOf:    func(s *spell.Spell) string { return spell.AreaShapeLabel(s.Area) },
		comparator: func(a, b *spell.Spell) int { return spell.CompareArea(a.Area, b.Area) },
		sortable:   true,
	}
}

func sourceColumn() columnDescriptor {
	desc := coded(spell.ColumnSource, spell.SourceCount, func(v int) string { return spell.Source(v).String() },
		func(s *spell.Spell) int { return int(s.Source) })
	desc.tooltip = spell.SourceTooltip
	return desc
}

// cell renders the column the way the grid displays it
func (c columnDescriptor) cell(s *spell.Spell) string {
	if c.field == spell.ColumnArea {
		return spell.FormatArea(s.Area)
	}
	return c.valueOf(s)
}

// columnDef instantiates the column, with a fresh filter when it has a domain
func (c columnDescriptor) columnDef() (grid.ColumnDef[*spell.Spell], error) {
	def := grid.ColumnDef[*spell.Spell]{
		Field:          string(c.field),
		HeaderName:     c.field.DisplayName(),
		ValueFormatter: c.cell,
		Tooltip:        c.tooltip,
		Comparator:     c.comparator,
		Sortable:       c.sortable,
	}

	if c.domainSize > 0 {
		f, err := filters.NewSetFilter(&filters.SetFilterConfig[*spell.Spell]{
			Field:      string(c.field),
			DomainSize: c.domainSize,
			LabelOf:    c.labelOf,
			ValueOf:    c.valueOf,
		})
		if err != nil {
			return def, errors.Wrapf(err, "failed to create filter for %s", c.field)
		}
		def.Filter = f
	}

	return def, nil
}

// NewGrid builds a spell grid over rows with every filter at its default and
// the default columns visible
func NewGrid(rows []*spell.Spell) (*grid.Grid[*spell.Spell], error) {
	visible := make(map[spell.Column]bool, len(spell.DefaultColumns))
	for _, c := range spell.DefaultColumns {
		visible[c] = true
	}

	defs := make([]grid.ColumnDef[*spell.Spell], 0, len(columnTable))
	for _, desc := range columnTable {
		def, err := desc.columnDef()
		if err != nil {
			return nil, err
		}
		def.Hide = !visible[desc.field]
		defs = append(defs, def)
	}

	return grid.New(&grid.Config[*spell.Spell]{
		Columns: defs,
		Rows:    rows,
	})
}

// setFilter returns the concrete filter of a column so callers can list its
// options or drive it like a user would
func setFilter(g *grid.Grid[*spell.Spell], field string) (*filters.SetFilter[*spell.Spell], error) {
	f, err := g.Filter(field)
	if err != nil {
		return nil, err
	}

	sf, ok := f.(*filters.SetFilter[*spell.Spell])
	if !ok {
		return nil, errors.Internalf("column %s has an unexpected filter type", field)
	}
	return sf, nil
}
