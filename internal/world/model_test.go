package world_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/world"
)

type ModelTestSuite struct {
	suite.Suite
	model *world.Model
}

func TestModelSuite(t *testing.T) {
	suite.Run(t, new(ModelTestSuite))
}

func (s *ModelTestSuite) SetupTest() {
	s.model = world.New("m1")
	s.Require().NoError(s.model.ReplaceAll(s.snapshot()))
}

func (s *ModelTestSuite) snapshot() *entities.MapSnapshot {
	return &entities.MapSnapshot{
		Map: &entities.Map{ID: "m1", Name: "Harbor"},
		Tokens: []*entities.Token{
			{ID: "t1", MapID: "m1", Type: entities.TokenTypePlayer, PlayerID: "p1", X: 50, Y: 50},
			{ID: "t2", MapID: "m1", Type: entities.TokenTypeNPC, NPCName: "Guard", X: 10, Y: 10},
		},
		Zones:      []*entities.LockedZone{{ID: "z1", MapID: "m1", Width: 10, Height: 10}},
		RestPoints: []*entities.CircleRegion{{ID: "r1", MapID: "m1", Kind: entities.RegionKindRestPoint, X: 52, Y: 51, Radius: 5}},
	}
}

func (s *ModelTestSuite) TestReplaceAll() {
	snap := s.model.Snapshot()
	s.Equal("Harbor", snap.Map.Name)
	s.Len(snap.Tokens, 2)
	s.Equal("t1", snap.Tokens[0].ID)
	s.Len(snap.Zones, 1)
	s.Len(snap.RestPoints, 1)
}

func (s *ModelTestSuite) TestReplaceAllRejectsForeignMap() {
	before := s.model.Snapshot()

	err := s.model.ReplaceAll(&entities.MapSnapshot{Map: &entities.Map{ID: "m2"}})
	s.True(errors.IsInvalidArgument(err))
	s.Equal(before, s.model.Snapshot())
}

func (s *ModelTestSuite) TestReplaceAllRejectsForeignToken() {
	before := s.model.Snapshot()

	snap := s.snapshot()
	snap.Tokens = append(snap.Tokens, &entities.Token{ID: "t9", MapID: "m2", Type: entities.TokenTypePlayer, PlayerID: "p9"})
	s.True(errors.IsInvalidArgument(s.model.ReplaceAll(snap)))
	s.Equal(before, s.model.Snapshot())
}

func (s *ModelTestSuite) TestReplaceAllRejectsBrokenToken() {
	snap := s.snapshot()
	snap.Tokens[1].PlayerID = "p2"
	s.True(errors.IsInvalidArgument(s.model.ReplaceAll(snap)))
}

func (s *ModelTestSuite) TestReplaceAllRejectsForeignRegions() {
	snap := s.snapshot()
	snap.Churches = []*entities.CircleRegion{{ID: "c1", MapID: "m3"}}
	s.True(errors.IsInvalidArgument(s.model.ReplaceAll(snap)))

	snap = s.snapshot()
	snap.Zones[0].MapID = "m3"
	s.True(errors.IsInvalidArgument(s.model.ReplaceAll(snap)))
}

func (s *ModelTestSuite) TestReplaceAllWithDeletedMapClears() {
	s.Require().NoError(s.model.ReplaceAll(&entities.MapSnapshot{}))

	snap := s.model.Snapshot()
	s.False(s.model.Loaded())
	s.Nil(snap.Map)
	s.Empty(snap.Tokens)
	s.Empty(snap.Zones)
}

func (s *ModelTestSuite) TestReplaceAllConverges() {
	s.Require().NoError(s.model.ReplaceAll(s.snapshot()))
	first := s.model.Snapshot()
	s.Require().NoError(s.model.ReplaceAll(s.snapshot()))
	s.Require().NoError(s.model.ReplaceAll(s.snapshot()))

	s.Equal(first, s.model.Snapshot())
	s.Len(s.model.Snapshot().Tokens, 2)
}

func (s *ModelTestSuite) TestReplaceAllCopiesInput() {
	snap := s.snapshot()
	s.Require().NoError(s.model.ReplaceAll(snap))

	snap.Tokens[0].X = 1
	t, ok := s.model.Token("t1")
	s.Require().True(ok)
	s.Equal(50.0, t.X)
}

func (s *ModelTestSuite) TestPatchTokenPosition() {
	s.True(s.model.PatchTokenPosition("t1", 90, 90))

	t, _ := s.model.Token("t1")
	s.Equal(90.0, t.X)
	s.Equal(90.0, t.Y)

	s.False(s.model.PatchTokenPosition("t1", 90, 90), "same position is a no-op")
	s.False(s.model.PatchTokenPosition("missing", 1, 1))
}

func (s *ModelTestSuite) TestRemoveToken() {
	s.True(s.model.RemoveToken("t1"))
	s.False(s.model.RemoveToken("t1"))

	_, ok := s.model.Token("t1")
	s.False(ok)
	s.Len(s.model.Snapshot().Tokens, 1)
}

func (s *ModelTestSuite) TestUpsertTokenStub() {
	s.Require().NoError(s.model.UpsertTokenStub(&entities.Token{ID: "t3", MapID: "m1", X: 5, Y: 6}))

	t, ok := s.model.Token("t3")
	s.Require().True(ok)
	s.True(t.Stub)

	s.Require().NoError(s.model.UpsertTokenStub(&entities.Token{ID: "t1", MapID: "m1", X: 7, Y: 8}))
	t, _ = s.model.Token("t1")
	s.False(t.Stub)
	s.Equal(7.0, t.X)

	s.True(errors.IsInvalidArgument(s.model.UpsertTokenStub(&entities.Token{ID: "t4", MapID: "m2"})))
	s.True(errors.IsInvalidArgument(s.model.UpsertTokenStub(nil)))

	s.Require().NoError(s.model.ReplaceAll(s.snapshot()))
	_, ok = s.model.Token("t3")
	s.False(ok, "stubs do not survive a full replace")
}

func (s *ModelTestSuite) TestUpsertBeforeLoad() {
	m := world.New("m1")
	s.True(errors.IsFailedPrecondition(m.UpsertTokenStub(&entities.Token{ID: "t1", MapID: "m1"})))
}

func (s *ModelTestSuite) TestPlayerToken() {
	t, ok := s.model.PlayerToken("p1")
	s.Require().True(ok)
	s.Equal("t1", t.ID)

	_, ok = s.model.PlayerToken("p2")
	s.False(ok)
}

func (s *ModelTestSuite) TestSnapshotIsDetached() {
	snap := s.model.Snapshot()
	snap.Tokens[0].X = 0

	t, _ := s.model.Token("t1")
	s.Equal(50.0, t.X)
}
