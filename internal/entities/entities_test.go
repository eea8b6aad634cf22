package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/geofence"
)

type EntitiesTestSuite struct {
	suite.Suite
}

func TestEntitiesSuite(t *testing.T) {
	suite.Run(t, new(EntitiesTestSuite))
}

func (s *EntitiesTestSuite) TestTokenValidate() {
	testCases := []struct {
		name    string
		token   *entities.Token
		wantErr bool
	}{
		{
			name:  "player token",
			token: &entities.Token{ID: "t1", MapID: "m1", Type: entities.TokenTypePlayer, PlayerID: "p1"},
		},
		{
			name:  "npc token",
			token: &entities.Token{ID: "t2", MapID: "m1", Type: entities.TokenTypeNPC, NPCName: "Guard", NPCImageURL: "https://x/g.png"},
		},
		{
			name:    "player token with npc fields",
			token:   &entities.Token{ID: "t3", MapID: "m1", Type: entities.TokenTypePlayer, PlayerID: "p1", NPCName: "Guard"},
			wantErr: true,
		},
		{
			name:    "npc token with player link",
			token:   &entities.Token{ID: "t4", MapID: "m1", Type: entities.TokenTypeNPC, NPCName: "Guard", PlayerID: "p1"},
			wantErr: true,
		},
		{
			name:    "player token without player",
			token:   &entities.Token{ID: "t5", MapID: "m1", Type: entities.TokenTypePlayer},
			wantErr: true,
		},
		{
			name:    "unknown type",
			token:   &entities.Token{ID: "t6", MapID: "m1", Type: "pet"},
			wantErr: true,
		},
		{
			name:    "nil",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.token.Validate()
			if tc.wantErr {
				s.True(errors.IsInvalidArgument(err))
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *EntitiesTestSuite) TestClamps() {
	s.Equal(0.0, entities.ClampPosition(-3))
	s.Equal(100.0, entities.ClampPosition(140))
	s.Equal(42.5, entities.ClampPosition(42.5))

	s.Equal(1.0, entities.ClampRadius(0))
	s.Equal(50.0, entities.ClampRadius(75))
	s.Equal(12.0, entities.ClampRadius(12))
}

func (s *EntitiesTestSuite) TestLockedZoneRegion() {
	zone := &entities.LockedZone{ID: "z1", X: 10, Y: 10, Width: 5, Height: 5, ExemptPlayerIDs: []string{"p2"}}

	var region geofence.Region = zone
	s.True(region.Contains(geofence.Point{X: 15, Y: 15}))
	s.False(region.Contains(geofence.Point{X: 16, Y: 15}))
	s.True(zone.Exempts("p2"))
	s.False(zone.Exempts("p1"))
	s.False(zone.Exempts(""))

	clone := zone.Clone()
	clone.ExemptPlayerIDs[0] = "p9"
	s.Equal("p2", zone.ExemptPlayerIDs[0])
}

func (s *EntitiesTestSuite) TestCapability() {
	s.True(entities.CapabilityFor(&entities.Profile{ID: "a", Role: entities.RoleDM}).CanManage)
	s.True(entities.CapabilityFor(&entities.Profile{ID: "a", Role: entities.RoleAdmin}).CanManage)
	s.False(entities.CapabilityFor(&entities.Profile{ID: "a", Role: entities.RolePlayer}).CanManage)
	s.True(entities.Anonymous().IsAnonymous())
	s.True(entities.CapabilityFor(nil).IsAnonymous())
}

func (s *EntitiesTestSuite) TestSnapshotCloneIsDeep() {
	snap := &entities.MapSnapshot{
		Map:    &entities.Map{ID: "m1"},
		Tokens: []*entities.Token{{ID: "t1", MapID: "m1", X: 1}},
		Zones:  []*entities.LockedZone{{ID: "z1", MapID: "m1", ExemptPlayerIDs: []string{"p1"}}},
	}

	clone := snap.Clone()
	clone.Map.Name = "changed"
	clone.Tokens[0].X = 99
	clone.Zones[0].ExemptPlayerIDs[0] = "p2"

	s.Empty(snap.Map.Name)
	s.Equal(1.0, snap.Tokens[0].X)
	s.Equal("p1", snap.Zones[0].ExemptPlayerIDs[0])
	s.Nil((*entities.MapSnapshot)(nil).Clone())
}

func (s *EntitiesTestSuite) TestLiveEventKeepsEdgeCoordinates() {
	raw, err := json.Marshal(entities.LiveEvent{Kind: entities.LiveTokenMoved, MapID: "m1", TokenID: "t1", X: 0, Y: 37})
	s.Require().NoError(err)
	s.JSONEq(`{"kind":"token_moved","map_id":"m1","token_id":"t1","x":0,"y":37}`, string(raw))
}
