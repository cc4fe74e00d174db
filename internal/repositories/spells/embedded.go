package spells

import (
	"context"
	_ "embed"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-spellbook/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellbook/internal/errors"
)

//go:embed data/spells.json
var embeddedCatalog []byte

type embeddedRepository struct {
	data []byte

	once   sync.Once
	spells []*spell.Spell
	err    error
}

// NewEmbeddedRepository serves the catalog compiled into the binary
func NewEmbeddedRepository() Repository {
	return &embeddedRepository{data: embeddedCatalog}
}

// newRepositoryFromJSON decodes an arbitrary catalog, for tests
func newRepositoryFromJSON(data []byte) *embeddedRepository {
	return &embeddedRepository{data: data}
}

// Ensure embeddedRepository implements Repository
var _ Repository = (*embeddedRepository)(nil)

// ListSpells decodes the catalog on first use
func (r *embeddedRepository) ListSpells(_ context.Context) ([]*spell.Spell, error) {
	r.once.Do(func() {
		var spells []*spell.Spell
		if err := json.Unmarshal(r.data, &spells); err != nil {
			r.err = errors.Wrapf(err, "failed to decode spell catalog")
			return
		}

		seen := make(map[string]bool, len(spells))
		for i, s := range spells {
			if s == nil || s.ID == "" {
				r.err = errors.Internalf("spell %d has no id", i)
				return
			}
			if seen[s.ID] {
				r.err = errors.Internalf("duplicate spell id %s", s.ID)
				return
			}
			seen[s.ID] = true
		}

		slog.Debug("Loaded embedded spell catalog", "count", len(spells))
		r.spells = spells
	})

	if r.err != nil {
		return nil, r.err
	}

	out := make([]*spell.Spell, len(r.spells))
	copy(out, r.spells)
	return out, nil
}
