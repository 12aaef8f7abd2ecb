package fightlog_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/chaos-room/internal/errors"
	"github.com/KirkDiggler/chaos-room/internal/repositories/fightlog"
	"github.com/KirkDiggler/chaos-room/internal/testutils"
)

// stepClock is a clock tests can move forward
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	mr      *miniredis.Miniredis
	clock   *stepClock
	repo    fightlog.Repository
	cleanup func()
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &stepClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}

	client, cleanup := testutils.CreateTestRedisClientWithContext(s.T(), func(mr *miniredis.Miniredis) {
		s.mr = mr
	})
	s.cleanup = cleanup

	var err error
	s.repo, err = fightlog.NewRedisRepository(&fightlog.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func entry(encounterID, result string) *fightlog.Entry {
	return &fightlog.Entry{
		EncounterID: encounterID,
		PlayerID:    "p1",
		PlayerName:  testutils.TestPlayerName,
		MonsterName: "Lame Goblin",
		Result:      result,
		PlayerLevel: 2,
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedisRepository_Validation() {
	_, err := fightlog.NewRedisRepository(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = fightlog.NewRedisRepository(&fightlog.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestRecordAndList() {
	out, err := s.repo.Record(s.ctx, fightlog.RecordInput{Entry: entry("enc_1", "victory"), TTL: time.Hour})
	s.Require().NoError(err)
	s.True(s.clock.now.Equal(out.Entry.EndedAt))
	s.True(s.clock.now.Add(time.Hour).Equal(out.Entry.ExpiresAt))

	_, err = s.repo.Record(s.ctx, fightlog.RecordInput{Entry: entry("enc_2", "escaped")})
	s.Require().NoError(err)

	listed, err := s.repo.List(s.ctx, fightlog.ListInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Require().Len(listed.Entries, 2)
	s.Equal("enc_2", listed.Entries[0].EncounterID, "newest first")
	s.Equal("enc_1", listed.Entries[1].EncounterID)

	limited, err := s.repo.List(s.ctx, fightlog.ListInput{PlayerID: "p1", Limit: 1})
	s.Require().NoError(err)
	s.Len(limited.Entries, 1)

	s.Equal(24*time.Hour, s.mr.TTL("fight_log:p1"), "the last record sets the key TTL")
}

func (s *RedisRepositoryTestSuite) TestListSkipsExpiredEntries() {
	_, err := s.repo.Record(s.ctx, fightlog.RecordInput{Entry: entry("enc_1", "victory"), TTL: time.Minute})
	s.Require().NoError(err)
	_, err = s.repo.Record(s.ctx, fightlog.RecordInput{Entry: entry("enc_2", "victory"), TTL: time.Hour})
	s.Require().NoError(err)

	s.clock.now = s.clock.now.Add(10 * time.Minute)

	listed, err := s.repo.List(s.ctx, fightlog.ListInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Require().Len(listed.Entries, 1)
	s.Equal("enc_2", listed.Entries[0].EncounterID)
}

func (s *RedisRepositoryTestSuite) TestRecordKeepsMaxEntries() {
	for i := 0; i < fightlog.MaxEntries+5; i++ {
		_, err := s.repo.Record(s.ctx, fightlog.RecordInput{Entry: entry(fmt.Sprintf("enc_%d", i), "victory")})
		s.Require().NoError(err)
	}

	listed, err := s.repo.List(s.ctx, fightlog.ListInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Len(listed.Entries, fightlog.MaxEntries)
}

func (s *RedisRepositoryTestSuite) TestListSkipsUnreadableEntries() {
	_, err := s.repo.Record(s.ctx, fightlog.RecordInput{Entry: entry("enc_1", "victory")})
	s.Require().NoError(err)
	_, err = s.mr.Lpush("fight_log:p1", "{broken")
	s.Require().NoError(err)

	listed, err := s.repo.List(s.ctx, fightlog.ListInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Len(listed.Entries, 1)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Record(s.ctx, fightlog.RecordInput{Entry: entry("enc_1", "victory")})
	s.Require().NoError(err)
	_, err = s.repo.Record(s.ctx, fightlog.RecordInput{Entry: entry("enc_2", "defeat")})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, fightlog.DeleteInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(2, out.EntriesDeleted)

	listed, err := s.repo.List(s.ctx, fightlog.ListInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Empty(listed.Entries)
}

func (s *RedisRepositoryTestSuite) TestInvalidInput() {
	_, err := s.repo.Record(s.ctx, fightlog.RecordInput{})
	s.True(errors.IsInvalidArgument(err))

	bad := entry("", "victory")
	_, err = s.repo.Record(s.ctx, fightlog.RecordInput{Entry: bad})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, fightlog.ListInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, fightlog.ListInput{PlayerID: "p1", Limit: -1})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, fightlog.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
