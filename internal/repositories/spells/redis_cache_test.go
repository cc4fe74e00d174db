package spells_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-spellbook/internal/errors"
	"github.com/KirkDiggler/rpg-spellbook/internal/repositories/spells"
	spellsmock "github.com/KirkDiggler/rpg-spellbook/internal/repositories/spells/mock"
	"github.com/KirkDiggler/rpg-spellbook/internal/testutils"
)

type RedisCacheTestSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	mr         *miniredis.Miniredis
	mockSource *spellsmock.MockRepository
	cache      *spells.RedisCache
}

func TestRedisCacheTestSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheTestSuite))
}

func (s *RedisCacheTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockSource = spellsmock.NewMockRepository(s.ctrl)

	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	cache, err := spells.NewRedisCache(&spells.RedisCacheConfig{
		Client: client,
		Source: s.mockSource,
		Name:   "dnd5eapi",
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.cache = cache
}

func (s *RedisCacheTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RedisCacheTestSuite) TestConfigValidation() {
	_, err := spells.NewRedisCache(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = spells.NewRedisCache(&spells.RedisCacheConfig{Name: "x"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisCacheTestSuite) TestMissLoadsSourceOnce() {
	s.mockSource.EXPECT().ListSpells(s.ctx).Return(testutils.TestSpells(), nil).Times(1)

	first, err := s.cache.ListSpells(s.ctx)
	s.Require().NoError(err)
	s.Equal(testutils.SpellIDs(testutils.TestSpells()), testutils.SpellIDs(first))

	s.True(s.mr.Exists("spell_catalog:dnd5eapi"))
	s.Equal(time.Hour, s.mr.TTL("spell_catalog:dnd5eapi"))

	second, err := s.cache.ListSpells(s.ctx)
	s.Require().NoError(err)
	s.Equal(first, second)
}

func (s *RedisCacheTestSuite) TestExpiredCacheReloads() {
	s.mockSource.EXPECT().ListSpells(s.ctx).Return(testutils.TestSpells(), nil).Times(2)

	_, err := s.cache.ListSpells(s.ctx)
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Hour)

	_, err = s.cache.ListSpells(s.ctx)
	s.Require().NoError(err)
}

func (s *RedisCacheTestSuite) TestInvalidate() {
	s.mockSource.EXPECT().ListSpells(s.ctx).Return(testutils.TestSpells(), nil).Times(2)

	_, err := s.cache.ListSpells(s.ctx)
	s.Require().NoError(err)

	s.Require().NoError(s.cache.Invalidate(s.ctx))
	s.False(s.mr.Exists("spell_catalog:dnd5eapi"))

	_, err = s.cache.ListSpells(s.ctx)
	s.Require().NoError(err)
}

func (s *RedisCacheTestSuite) TestCorruptEntryIsReplaced() {
	s.Require().NoError(s.mr.Set("spell_catalog:dnd5eapi", "{not json"))
	s.mockSource.EXPECT().ListSpells(s.ctx).Return(testutils.TestSpells(), nil)

	got, err := s.cache.ListSpells(s.ctx)
	s.Require().NoError(err)
	s.Len(got, 6)
}

func (s *RedisCacheTestSuite) TestSourceErrorIsNotCached() {
	s.mockSource.EXPECT().ListSpells(s.ctx).Return(nil, errors.Unavailable("dnd5e api down"))

	_, err := s.cache.ListSpells(s.ctx)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
	s.False(s.mr.Exists("spell_catalog:dnd5eapi"))
}
