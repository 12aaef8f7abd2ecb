package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	cardset "github.com/KirkDiggler/chaos-room/internal/catalog"
	"github.com/KirkDiggler/chaos-room/internal/errors"
	"github.com/KirkDiggler/chaos-room/internal/pkg/clock"
	"github.com/KirkDiggler/chaos-room/internal/repositories/catalog"
	"github.com/KirkDiggler/chaos-room/internal/testutils"
)

var storedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// RepositoryTestSuite runs the same behaviour checks against every implementation
type RepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	newRepo func() (catalog.Repository, func())
	repo    catalog.Repository
	cleanup func()
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo, s.cleanup = s.newRepo()
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (catalog.Repository, func()) {
			return catalog.NewInMemory(&catalog.InMemoryConfig{Clock: clock.NewFixed(storedAt)}), nil
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (catalog.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := catalog.NewRedis(&catalog.RedisConfig{
				Client: client,
				Clock:  clock.NewFixed(storedAt),
			})
			if err != nil {
				t.Fatalf("failed to create repository: %v", err)
			}
			return repo, cleanup
		},
	})
}

func (s *RepositoryTestSuite) TestLoadBeforeStore() {
	_, err := s.repo.Load(s.ctx, catalog.LoadInput{})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestStoreAndLoadDefaultSet() {
	defs, err := cardset.DefaultDefinitions()
	s.Require().NoError(err)

	out, err := s.repo.Store(s.ctx, catalog.StoreInput{Definitions: defs})
	s.Require().NoError(err)
	s.True(storedAt.Equal(out.StoredAt))

	loaded, err := s.repo.Load(s.ctx, catalog.LoadInput{})
	s.Require().NoError(err)
	s.True(storedAt.Equal(loaded.StoredAt))

	want, err := cardset.Default()
	s.Require().NoError(err)
	s.Equal(want.Races, loaded.Catalog.Races)
	s.Equal(want.Classes, loaded.Catalog.Classes)
	s.Equal(want.Monsters, loaded.Catalog.Monsters)
	s.Equal(want.Treasures, loaded.Catalog.Treasures)
}

func (s *RepositoryTestSuite) TestStoreReplacesPreviousSet() {
	first := &cardset.Definitions{
		Monsters: []cardset.MonsterDefinition{
			{ID: "rat", Name: "Rat", Level: 1},
			{ID: "bat", Name: "Bat", Level: 2},
		},
	}
	second := &cardset.Definitions{
		Monsters: []cardset.MonsterDefinition{
			{ID: "ogre", Name: "Ogre", Level: 6, LevelsLost: "dynamic"},
		},
	}

	_, err := s.repo.Store(s.ctx, catalog.StoreInput{Definitions: first})
	s.Require().NoError(err)
	_, err = s.repo.Store(s.ctx, catalog.StoreInput{Definitions: second})
	s.Require().NoError(err)

	loaded, err := s.repo.Load(s.ctx, catalog.LoadInput{})
	s.Require().NoError(err)
	s.Require().Len(loaded.Catalog.Monsters, 1)
	s.Equal("ogre", loaded.Catalog.Monsters[0].ID)

	_, err = s.repo.GetMonster(s.ctx, catalog.GetMonsterInput{ID: "rat"})
	s.True(errors.IsNotFound(err))

	got, err := s.repo.GetMonster(s.ctx, catalog.GetMonsterInput{ID: "ogre"})
	s.Require().NoError(err)
	s.Equal(6, got.Monster.Level)
	s.True(got.Monster.LevelsLost.Dynamic)
}

func (s *RepositoryTestSuite) TestStoreRejectsInvalidDefinitions() {
	_, err := s.repo.Store(s.ctx, catalog.StoreInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Store(s.ctx, catalog.StoreInput{Definitions: &cardset.Definitions{
		Monsters: []cardset.MonsterDefinition{{ID: "rat"}},
	}})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Load(s.ctx, catalog.LoadInput{})
	s.True(errors.IsNotFound(err), "a rejected store leaves nothing behind")
}

func (s *RepositoryTestSuite) TestGetMonsterValidation() {
	_, err := s.repo.GetMonster(s.ctx, catalog.GetMonsterInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestNewRedisRequiresClient(t *testing.T) {
	_, err := catalog.NewRedis(&catalog.RedisConfig{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	_, err = catalog.NewRedis(nil)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
