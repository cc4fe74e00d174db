// Package spell defines the spell rows shown in the grid and the coded
// attributes the column filters operate on.
package spell

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityType is the core.Entity type of every spell row
const EntityType = "spell"

// MaxLevel is the highest spell level; level 0 is a cantrip
const MaxLevel = 9

// Spell is one row of the spell grid. Coded attributes hold domain codes, not
// display text; the value formatters in this package render them.
type Spell struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Level         int         `json:"level"`
	School        School      `json:"school"`
	CastingTime   CastingTime `json:"castingTime"`
	Duration      Duration    `json:"duration"`
	Range         Range       `json:"range"`
	Area          *Area       `json:"area,omitempty"`
	Attack        Attack      `json:"attack"`
	Save          SavingThrow `json:"save"`
	Damage        DamageType  `json:"damage"`
	Effect        Effect      `json:"effect"`
	Ritual        bool        `json:"ritual"`
	Concentration bool        `json:"concentration"`
	Verbal        bool        `json:"verbal"`
	Somatic       bool        `json:"somatic"`
	Material      string      `json:"material,omitempty"`
	Source        Source      `json:"source"`
	Page          int         `json:"page,omitempty"`
	Details       string      `json:"details,omitempty"`
}

// Area is a spell's area of effect
type Area struct {
	Shape AreaShape `json:"shape"`
	Size  int       `json:"size"`
}

// GetID implements core.Entity
func (s *Spell) GetID() string {
	return s.ID
}

// GetType implements core.Entity
func (s *Spell) GetType() string {
	return EntityType
}

var _ core.Entity = (*Spell)(nil)
