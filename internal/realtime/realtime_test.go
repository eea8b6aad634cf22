package realtime_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/realtime"
	redisclient "github.com/KirkDiggler/rpg-atlas/internal/redis"
	"github.com/KirkDiggler/rpg-atlas/internal/testutils"
)

const waitFor = 2 * time.Second

type RealtimeTestSuite struct {
	suite.Suite
	client redisclient.Client
	ctx    context.Context
}

func (s *RealtimeTestSuite) SetupTest() {
	s.client, _ = testutils.CreateTestRedisClient(s.T())
	s.ctx = context.Background()
}

func (s *RealtimeTestSuite) TestConfigValidation() {
	_, err := realtime.NewBroadcaster(&realtime.BroadcasterConfig{})
	s.True(errors.IsInvalidArgument(err))
	_, err = realtime.NewLiveSource(&realtime.LiveSourceConfig{Client: s.client, Buffer: -1})
	s.True(errors.IsInvalidArgument(err))
	_, err = realtime.NewChangeFeed(&realtime.ChangeFeedConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RealtimeTestSuite) TestLiveRoundTrip() {
	broadcaster, err := realtime.NewBroadcaster(&realtime.BroadcasterConfig{Client: s.client})
	s.Require().NoError(err)
	source, err := realtime.NewLiveSource(&realtime.LiveSourceConfig{Client: s.client})
	s.Require().NoError(err)

	sub, err := source.SubscribeLive(s.ctx, testutils.TestMapID)
	s.Require().NoError(err)
	defer func() { _ = sub.Close() }()

	other, err := source.SubscribeLive(s.ctx, testutils.TestOtherMap)
	s.Require().NoError(err)
	defer func() { _ = other.Close() }()

	broadcaster.Publish(s.ctx, entities.LiveEvent{
		Kind:    entities.LiveTokenMoved,
		MapID:   testutils.TestMapID,
		TokenID: "tok-1",
		X:       42,
		Y:       17,
	})

	select {
	case ev := <-sub.Events():
		s.Equal(entities.LiveTokenMoved, ev.Kind)
		s.Equal("tok-1", ev.TokenID)
		s.Equal(float64(42), ev.X)
		s.Equal(float64(17), ev.Y)
	case <-time.After(waitFor):
		s.Fail("live event not delivered")
	}

	select {
	case ev := <-other.Events():
		s.Failf("event leaked across maps", "%+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func (s *RealtimeTestSuite) TestPublishWithoutSubscribersIsSilent() {
	broadcaster, err := realtime.NewBroadcaster(&realtime.BroadcasterConfig{Client: s.client})
	s.Require().NoError(err)

	s.NotPanics(func() {
		broadcaster.Publish(s.ctx, entities.LiveEvent{Kind: entities.LiveTokenRemoved, MapID: testutils.TestMapID})
		broadcaster.Publish(s.ctx, entities.LiveEvent{Kind: entities.LiveTokenRemoved})
	})
}

func (s *RealtimeTestSuite) TestLiveCloseEndsEvents() {
	source, err := realtime.NewLiveSource(&realtime.LiveSourceConfig{Client: s.client})
	s.Require().NoError(err)

	sub, err := source.SubscribeLive(s.ctx, testutils.TestMapID)
	s.Require().NoError(err)
	s.Require().NoError(sub.Close())
	s.NoError(sub.Close())

	select {
	case _, ok := <-sub.Events():
		s.False(ok)
	case <-time.After(waitFor):
		s.Fail("events channel not closed")
	}
}

func (s *RealtimeTestSuite) TestChangeFeedDeliversOnlyNewChanges() {
	before := redisclient.ChangeArgs(testutils.TestMapID, entities.ChangeTableTokens, entities.ChangeOpInsert, "tok-old", testutils.FixedTime)
	s.Require().NoError(s.client.XAdd(s.ctx, before).Err())

	feed, err := realtime.NewChangeFeed(&realtime.ChangeFeedConfig{Client: s.client, Block: 50 * time.Millisecond})
	s.Require().NoError(err)

	sub, err := feed.SubscribeChanges(s.ctx, testutils.TestMapID)
	s.Require().NoError(err)
	defer func() { _ = sub.Close() }()

	after := redisclient.ChangeArgs(testutils.TestMapID, entities.ChangeTableZones, entities.ChangeOpDelete, "zone-1", testutils.FixedTime)
	s.Require().NoError(s.client.XAdd(s.ctx, after).Err())

	select {
	case c := <-sub.Changes():
		s.Equal(testutils.TestMapID, c.MapID)
		s.Equal(entities.ChangeTableZones, c.Table)
		s.Equal(entities.ChangeOpDelete, c.Op)
		s.Equal("zone-1", c.RowID)
		s.NotEmpty(c.ID)
	case <-time.After(waitFor):
		s.Fail("change not delivered")
	}
}

func (s *RealtimeTestSuite) TestChangeFeedEmptyStream() {
	feed, err := realtime.NewChangeFeed(&realtime.ChangeFeedConfig{Client: s.client, Block: 50 * time.Millisecond})
	s.Require().NoError(err)

	sub, err := feed.SubscribeChanges(s.ctx, testutils.TestOtherMap)
	s.Require().NoError(err)

	args := redisclient.ChangeArgs(testutils.TestOtherMap, entities.ChangeTableMaps, entities.ChangeOpUpdate, testutils.TestOtherMap, testutils.FixedTime)
	s.Require().NoError(s.client.XAdd(s.ctx, args).Err())

	select {
	case c := <-sub.Changes():
		s.Equal(entities.ChangeTableMaps, c.Table)
	case <-time.After(waitFor):
		s.Fail("change not delivered")
	}

	s.NoError(sub.Close())
	_, ok := <-sub.Changes()
	s.False(ok)
}

func TestRealtimeTestSuite(t *testing.T) {
	suite.Run(t, new(RealtimeTestSuite))
}
