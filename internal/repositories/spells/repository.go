// Package spells provides the spell catalog the grid is built over
package spells

import (
	"context"

	"github.com/KirkDiggler/rpg-spellbook/internal/entities/spell"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=spellsmock github.com/KirkDiggler/rpg-spellbook/internal/repositories/spells Repository

// Repository is a read-only source of spell rows
type Repository interface {
	// ListSpells returns the whole catalog in catalog order
	ListSpells(ctx context.Context) ([]*spell.Spell, error)
}
