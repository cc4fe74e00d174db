package testutils

import (
	"github.com/KirkDiggler/rpg-spellbook/internal/entities/spell"
)

// TestSpells returns a small catalog covering cantrips, rituals, areas, and a
// spell whose school code is outside the domain
func TestSpells() []*spell.Spell {
	return []*spell.Spell{
		{
			ID:          "fire-bolt",
			Name:        "Fire Bolt",
			Level:       0,
			School:      spell.SchoolEvocation,
			CastingTime: spell.CastingTimeAction,
			Range:       spell.RangeHundredTwentyFeet,
			Attack:      spell.AttackRanged,
			Damage:      spell.DamageFire,
			Effect:      spell.EffectDamage,
			Verbal:      true,
			Somatic:     true,
			Page:        242,
		},
		{
			ID:          "alarm",
			Name:        "Alarm",
			Level:       1,
			School:      spell.SchoolAbjuration,
			CastingTime: spell.CastingTimeMinute,
			Duration:    spell.DurationEightHours,
			Range:       spell.RangeThirtyFeet,
			Area:        &spell.Area{Shape: spell.AreaCube, Size: 20},
			Effect:      spell.EffectDetection,
			Ritual:      true,
			Verbal:      true,
			Somatic:     true,
			Material:    "a tiny bell and a piece of fine silver wire",
			Page:        211,
		},
		{
			ID:          "magic-missile",
			Name:        "Magic Missile",
			Level:       1,
			School:      spell.SchoolEvocation,
			CastingTime: spell.CastingTimeAction,
			Range:       spell.RangeHundredTwentyFeet,
			Damage:      spell.DamageForce,
			Effect:      spell.EffectDamage,
			Verbal:      true,
			Somatic:     true,
			Page:        257,
		},
		{
			ID:          "fireball",
			Name:        "Fireball",
			Level:       3,
			School:      spell.SchoolEvocation,
			CastingTime: spell.CastingTimeAction,
			Range:       spell.RangeHundredFiftyFeet,
			Area:        &spell.Area{Shape: spell.AreaSphere, Size: 20},
			Save:        spell.SaveDexterity,
			Damage:      spell.DamageFire,
			Effect:      spell.EffectDamage,
			Verbal:      true,
			Somatic:     true,
			Material:    "a tiny ball of bat guano and sulfur",
			Page:        241,
		},
		{
			ID:            "hold-person",
			Name:          "Hold Person",
			Level:         2,
			School:        spell.SchoolEnchantment,
			CastingTime:   spell.CastingTimeAction,
			Duration:      spell.DurationMinute,
			Range:         spell.RangeSixtyFeet,
			Save:          spell.SaveWisdom,
			Effect:        spell.EffectControl,
			Concentration: true,
			Verbal:        true,
			Somatic:       true,
			Page:          251,
		},
		{
			ID:          "chronal-shift",
			Name:        "Chronal Shift",
			Level:       2,
			School:      spell.School(99),
			CastingTime: spell.CastingTimeReaction,
			Range:       spell.RangeThirtyFeet,
			Effect:      spell.EffectUtility,
			Somatic:     true,
			Source:      spell.Source(42),
		},
	}
}

// SpellIDs lists the IDs of rows in order
func SpellIDs(spells []*spell.Spell) []string {
	ids := make([]string, len(spells))
	for i, s := range spells {
		ids[i] = s.ID
	}
	return ids
}
