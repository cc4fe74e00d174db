package spells

import (
	"context"
	"errors"
	"testing"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-spellbook/internal/entities/spell"
	internalerrors "github.com/KirkDiggler/rpg-spellbook/internal/errors"
)

// mockDND5eClient is a testify mock of dnd5e.Interface
type mockDND5eClient struct {
	mock.Mock
}

func (m *mockDND5eClient) ListRaces() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetRace(key string) (*entities.Race, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Race), args.Error(1)
}

func (m *mockDND5eClient) ListEquipment() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetEquipment(key string) (dnd5e.EquipmentInterface, error) {
	args := m.Called(key)
	return args.Get(0).(dnd5e.EquipmentInterface), args.Error(1)
}

func (m *mockDND5eClient) GetEquipmentCategory(key string) (*entities.EquipmentCategory, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.EquipmentCategory), args.Error(1)
}

func (m *mockDND5eClient) ListClasses() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetClass(key string) (*entities.Class, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Class), args.Error(1)
}

func (m *mockDND5eClient) ListSpells(input *dnd5e.ListSpellsInput) ([]*entities.ReferenceItem, error) {
	args := m.Called(input)
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetSpell(key string) (*entities.Spell, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Spell), args.Error(1)
}

func (m *mockDND5eClient) ListFeatures() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetFeature(key string) (*entities.Feature, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Feature), args.Error(1)
}

func (m *mockDND5eClient) ListSkills() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetSkill(key string) (*entities.Skill, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Skill), args.Error(1)
}

func (m *mockDND5eClient) ListMonsters() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) ListMonstersWithFilter(input *dnd5e.ListMonstersInput) ([]*entities.ReferenceItem, error) {
	args := m.Called(input)
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetMonster(key string) (*entities.Monster, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Monster), args.Error(1)
}

func (m *mockDND5eClient) GetClassLevel(key string, level int) (*entities.Level, error) {
	args := m.Called(key, level)
	return args.Get(0).(*entities.Level), args.Error(1)
}

func (m *mockDND5eClient) GetProficiency(key string) (*entities.Proficiency, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Proficiency), args.Error(1)
}

func (m *mockDND5eClient) ListDamageTypes() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetDamageType(key string) (*entities.DamageType, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.DamageType), args.Error(1)
}

func (m *mockDND5eClient) ListBackgrounds() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetBackground(key string) (*entities.Background, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Background), args.Error(1)
}

func TestDND5eRepositoryListSpells(t *testing.T) {
	t.Run("loads and converts every spell", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		repo := &dnd5eRepository{client: mockClient}

		refs := []*entities.ReferenceItem{
			{Key: "fireball", Name: "Fireball"},
			{Key: "bless", Name: "Bless"},
		}
		fireball := &entities.Spell{
			Key:         "fireball",
			Name:        "Fireball",
			SpellLevel:  3,
			SpellSchool: &entities.ReferenceItem{Name: "Evocation"},
			CastingTime: "1 action",
			Range:       "150 feet",
			Duration:    "Instantaneous",
		}
		bless := &entities.Spell{
			Key:           "bless",
			Name:          "Bless",
			SpellLevel:    1,
			SpellSchool:   &entities.ReferenceItem{Name: "Enchantment"},
			CastingTime:   "1 action",
			Range:         "30 feet",
			Duration:      "Up to 1 minute",
			Concentration: true,
		}

		mockClient.On("ListSpells", (*dnd5e.ListSpellsInput)(nil)).Return(refs, nil).Once()
		mockClient.On("GetSpell", "fireball").Return(fireball, nil).Once()
		mockClient.On("GetSpell", "bless").Return(bless, nil).Once()

		result, err := repo.ListSpells(context.Background())
		require.NoError(t, err)
		require.Len(t, result, 2)

		assert.Equal(t, "fireball", result[0].ID)
		assert.Equal(t, 3, result[0].Level)
		assert.Equal(t, spell.SchoolEvocation, result[0].School)
		assert.Equal(t, spell.RangeHundredFiftyFeet, result[0].Range)
		assert.Equal(t, spell.DurationInstantaneous, result[0].Duration)

		assert.Equal(t, "bless", result[1].ID)
		assert.Equal(t, spell.SchoolEnchantment, result[1].School)
		assert.Equal(t, spell.DurationMinute, result[1].Duration)
		assert.True(t, result[1].Concentration)

		// served from memory the second time
		again, err := repo.ListSpells(context.Background())
		require.NoError(t, err)
		assert.Len(t, again, 2)

		mockClient.AssertExpectations(t)
	})

	t.Run("list error is unavailable and not cached", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		repo := &dnd5eRepository{client: mockClient}

		mockClient.On("ListSpells", (*dnd5e.ListSpellsInput)(nil)).
			Return(([]*entities.ReferenceItem)(nil), errors.New("API error")).Once()

		result, err := repo.ListSpells(context.Background())
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, internalerrors.CodeUnavailable, internalerrors.GetCode(err))

		mockClient.On("ListSpells", (*dnd5e.ListSpellsInput)(nil)).
			Return([]*entities.ReferenceItem{}, nil).Once()

		result, err = repo.ListSpells(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, result)

		mockClient.AssertExpectations(t)
	})

	t.Run("detail error fails the load", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		repo := &dnd5eRepository{client: mockClient}

		mockClient.On("ListSpells", (*dnd5e.ListSpellsInput)(nil)).
			Return([]*entities.ReferenceItem{{Key: "wish", Name: "Wish"}}, nil)
		mockClient.On("GetSpell", "wish").Return((*entities.Spell)(nil), errors.New("boom"))

		result, err := repo.ListSpells(context.Background())
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "wish")
	})
}

func TestTextMapping(t *testing.T) {
	t.Run("school", func(t *testing.T) {
		assert.Equal(t, spell.SchoolNecromancy, schoolFromName("Necromancy"))
		assert.Equal(t, spell.SchoolIllusion, schoolFromName(" illusion "))
		assert.Equal(t, "", schoolFromName("Chronurgy").String())
	})

	t.Run("casting time", func(t *testing.T) {
		assert.Equal(t, spell.CastingTimeBonusAction, castingTimeFromText("1 bonus action"))
		assert.Equal(t, spell.CastingTimeTenMinutes, castingTimeFromText("10 Minutes"))
		assert.Equal(t, spell.CastingTimeSpecial, castingTimeFromText("1 reaction, which you take when..."))
	})

	t.Run("duration", func(t *testing.T) {
		assert.Equal(t, spell.DurationHour, durationFromText("Up to 1 hour"))
		assert.Equal(t, spell.DurationUntilDispelled, durationFromText("Until dispelled"))
		assert.Equal(t, spell.DurationSpecial, durationFromText("Special"))
		assert.Equal(t, spell.DurationSpecial, durationFromText("6 rounds"))
	})

	t.Run("range", func(t *testing.T) {
		assert.Equal(t, spell.RangeSelf, rangeFromText("Self"))
		assert.Equal(t, spell.RangeNinetyFeet, rangeFromText("90 feet"))
		assert.Equal(t, spell.RangeMiles, rangeFromText("1 mile"))
		assert.Equal(t, spell.RangeMiles, rangeFromText("500 miles"))
		assert.Equal(t, spell.RangeSpecial, rangeFromText("Unlimited"))
		assert.Equal(t, spell.RangeSpecial, rangeFromText("5 feet"))
	})

	t.Run("area", func(t *testing.T) {
		assert.Equal(t, int(spell.AreaSphere), areaShapeFromType("sphere"))
		assert.Equal(t, int(spell.AreaCone), areaShapeFromType("cone"))
		assert.Equal(t, unknownCode, areaShapeFromType("emanation"))
	})

	t.Run("save", func(t *testing.T) {
		assert.Equal(t, spell.SaveDexterity, saveFromAbbreviation("DEX"))
		assert.Equal(t, spell.SaveWisdom, saveFromAbbreviation("Wisdom"))
		assert.Equal(t, spell.SaveNone, saveFromAbbreviation(""))
		assert.Equal(t, spell.SaveNone, saveFromAbbreviation("luck"))
	})

	t.Run("damage", func(t *testing.T) {
		assert.Equal(t, spell.DamageLightning, damageFromName("Lightning"))
		assert.Equal(t, spell.DamageRadiant, damageFromName("radiant"))
		assert.Equal(t, spell.DamageNone, damageFromName("Sonic"))
	})
}

func TestDND5eAPIConfigDefaults(t *testing.T) {
	cfg := &DND5eAPIConfig{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://www.dnd5eapi.co/api/2014/", cfg.BaseURL)
	assert.NotZero(t, cfg.HTTPTimeout)
	assert.NotZero(t, cfg.CacheTTL)

	var nilCfg *DND5eAPIConfig
	assert.Error(t, nilCfg.Validate())
}
