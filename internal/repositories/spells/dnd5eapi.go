package spells

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-spellbook/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellbook/internal/errors"
)

// DND5eAPIConfig configures the dnd5eapi.co catalog source
type DND5eAPIConfig struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate sets defaults for anything not provided
func (cfg *DND5eAPIConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

type dnd5eRepository struct {
	client dnd5e.Interface

	mu     sync.Mutex
	spells []*spell.Spell
}

// NewDND5eAPIRepository loads the catalog from the D&D 5e API. Free text in
// the API's spell records is mapped onto the grid's coded domains.
func NewDND5eAPIRepository(cfg *DND5eAPIConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create D&D 5e API client")
	}

	return &dnd5eRepository{
		client: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

// Ensure dnd5eRepository implements Repository
var _ Repository = (*dnd5eRepository)(nil)

// ListSpells fetches every spell once; failures are not cached
func (r *dnd5eRepository) ListSpells(_ context.Context) ([]*spell.Spell, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.spells == nil {
		spells, err := r.load()
		if err != nil {
			return nil, err
		}
		r.spells = spells
	}

	out := make([]*spell.Spell, len(r.spells))
	copy(out, r.spells)
	return out, nil
}

func (r *dnd5eRepository) load() ([]*spell.Spell, error) {
	slog.Info("Calling D&D 5e API to list spells")
	refs, err := r.client.ListSpells(nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list spells from D&D 5e API")
	}
	slog.Info("Got spell references", "count", len(refs))

	spells := make([]*spell.Spell, len(refs))
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, key string) {
			defer wg.Done()

			// cached after the first call
			apiSpell, err := r.client.GetSpell(key)
			if err != nil {
				slog.Error("Failed to get spell details", "spell", key, "error", err)
				errChan <- fmt.Errorf("failed to get spell %s: %w", key, err)
				return
			}

			spells[idx] = convertSpell(apiSpell)
		}(i, ref.Key)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load spell catalog")
		}
	}

	return spells, nil
}

// unknownCode renders as a missing value in the grid
const unknownCode = -1

// convertSpell maps an API record onto a grid row. The API does not expose
// components, attack rolls, or sources, so those keep their zero codes.
func convertSpell(s *entities.Spell) *spell.Spell {
	row := &spell.Spell{
		ID:            s.Key,
		Name:          s.Name,
		Level:         s.SpellLevel,
		School:        schoolFromName(schoolName(s)),
		CastingTime:   castingTimeFromText(s.CastingTime),
		Duration:      durationFromText(s.Duration),
		Range:         rangeFromText(s.Range),
		Attack:        spell.AttackNone,
		Save:          spell.SaveNone,
		Damage:        spell.DamageNone,
		Ritual:        s.Ritual,
		Concentration: s.Concentration,
		Source:        spell.SourcePlayersHandbook,
	}

	if s.DC != nil && s.DC.DCType != nil {
		row.Save = saveFromAbbreviation(s.DC.DCType.Name)
	}
	if s.SpellDamage != nil && s.SpellDamage.SpellDamageType != nil {
		row.Damage = damageFromName(s.SpellDamage.SpellDamageType.Name)
	}
	if s.AreaOfEffect != nil {
		if shape := areaShapeFromType(s.AreaOfEffect.Type); shape != unknownCode {
			row.Area = &spell.Area{Shape: spell.AreaShape(shape), Size: s.AreaOfEffect.Size}
		}
	}

	row.Effect = spell.EffectUtility
	if row.Damage != spell.DamageNone {
		row.Effect = spell.EffectDamage
	}

	var classes []string
	for _, class := range s.SpellClasses {
		if class != nil {
			classes = append(classes, class.Name)
		}
	}
	if len(classes) > 0 {
		row.Details = fmt.Sprintf("Classes: %s", strings.Join(classes, ", "))
	}

	return row
}

func schoolName(s *entities.Spell) string {
	if s.SpellSchool == nil {
		return ""
	}
	return s.SpellSchool.Name
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// matchLabel returns the first code whose label equals text, ignoring case
func matchLabel(text string, count int, labelOf func(int) string) int {
	text = normalize(text)
	for code := 0; code < count; code++ {
		if normalize(labelOf(code)) == text {
			return code
		}
	}
	return unknownCode
}

func schoolFromName(name string) spell.School {
	return spell.School(matchLabel(name, spell.SchoolCount, func(v int) string {
		return spell.School(v).String()
	}))
}

var castingTimeText = map[string]spell.CastingTime{
	"1 action":       spell.CastingTimeAction,
	"1 bonus action": spell.CastingTimeBonusAction,
	"1 reaction":     spell.CastingTimeReaction,
	"1 minute":       spell.CastingTimeMinute,
	"10 minutes":     spell.CastingTimeTenMinutes,
	"1 hour":         spell.CastingTimeHour,
	"8 hours":        spell.CastingTimeEightHours,
	"12 hours":       spell.CastingTimeTwelveHours,
	"24 hours":       spell.CastingTimeTwentyFourHours,
}

func castingTimeFromText(text string) spell.CastingTime {
	if ct, ok := castingTimeText[normalize(text)]; ok {
		return ct
	}
	return spell.CastingTimeSpecial
}

var durationText = map[string]spell.Duration{
	"instantaneous":   spell.DurationInstantaneous,
	"1 round":         spell.DurationRound,
	"1 minute":        spell.DurationMinute,
	"10 minutes":      spell.DurationTenMinutes,
	"1 hour":          spell.DurationHour,
	"8 hours":         spell.DurationEightHours,
	"24 hours":        spell.DurationTwentyFourHours,
	"7 days":          spell.DurationSevenDays,
	"10 days":         spell.DurationTenDays,
	"30 days":         spell.DurationThirtyDays,
	"until dispelled": spell.DurationUntilDispelled,
}

// durationFromText ignores the "Up to" prefix of concentration spells
func durationFromText(text string) spell.Duration {
	text = strings.TrimPrefix(normalize(text), "up to ")
	if d, ok := durationText[text]; ok {
		return d
	}
	return spell.DurationSpecial
}

var rangeText = map[string]spell.Range{
	"self":     spell.RangeSelf,
	"touch":    spell.RangeTouch,
	"10 feet":  spell.RangeTenFeet,
	"30 feet":  spell.RangeThirtyFeet,
	"60 feet":  spell.RangeSixtyFeet,
	"90 feet":  spell.RangeNinetyFeet,
	"120 feet": spell.RangeHundredTwentyFeet,
	"150 feet": spell.RangeHundredFiftyFeet,
	"300 feet": spell.RangeThreeHundredFeet,
	"sight":    spell.RangeSight,
}

func rangeFromText(text string) spell.Range {
	text = normalize(text)
	if r, ok := rangeText[text]; ok {
		return r
	}
	if strings.HasSuffix(text, " mile") || strings.HasSuffix(text, " miles") {
		return spell.RangeMiles
	}
	return spell.RangeSpecial
}

func areaShapeFromType(text string) int {
	return matchLabel(text, spell.AreaShapeCount, func(v int) string {
		return spell.AreaShape(v).String()
	})
}

var saveAbbreviations = map[string]spell.SavingThrow{
	"str": spell.SaveStrength,
	"dex": spell.SaveDexterity,
	"con": spell.SaveConstitution,
	"int": spell.SaveIntelligence,
	"wis": spell.SaveWisdom,
	"cha": spell.SaveCharisma,
}

// saveFromAbbreviation accepts "DEX" as well as "Dexterity"
func saveFromAbbreviation(text string) spell.SavingThrow {
	text = normalize(text)
	if len(text) >= 3 {
		if s, ok := saveAbbreviations[text[:3]]; ok {
			return s
		}
	}
	return spell.SaveNone
}

func damageFromName(name string) spell.DamageType {
	code := matchLabel(name, spell.DamageTypeCount, func(v int) string {
		return spell.DamageType(v).String()
	})
	if code == unknownCode {
		return spell.DamageNone
	}
	return spell.DamageType(code)
}
