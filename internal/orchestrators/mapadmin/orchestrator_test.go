package mapadmin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/mapadmin"
	"github.com/KirkDiggler/rpg-atlas/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/maps"
	mapsmock "github.com/KirkDiggler/rpg-atlas/internal/repositories/maps/mock"
	"github.com/KirkDiggler/rpg-atlas/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockMaps *mapsmock.MockRepository
	service  mapadmin.Service
	ctx      context.Context
	player   entities.Capability
	manager  entities.Capability
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockMaps = mapsmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.service, err = mapadmin.NewOrchestrator(&mapadmin.Config{
		Maps:        s.mockMaps,
		IDGenerator: idgen.NewSequential(""),
	})
	s.Require().NoError(err)

	s.player = entities.Capability{PlayerID: testutils.TestPlayerID, Role: entities.RolePlayer}
	s.manager = entities.Capability{PlayerID: testutils.TestManagerID, Role: entities.RoleDM, CanManage: true}
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestPlayersCannotEdit() {
	_, err := s.service.SaveMap(s.ctx, &mapadmin.SaveMapInput{Capability: s.player, Map: &entities.Map{Name: "x", ImageURL: "y"}})
	s.True(errors.IsPermissionDenied(err))
	_, err = s.service.DeleteMap(s.ctx, &mapadmin.DeleteMapInput{Capability: s.player, MapID: testutils.TestMapID})
	s.True(errors.IsPermissionDenied(err))
	_, err = s.service.SaveLockedZone(s.ctx, &mapadmin.SaveLockedZoneInput{Capability: s.player, Zone: &entities.LockedZone{}})
	s.True(errors.IsPermissionDenied(err))
	_, err = s.service.DeleteLockedZone(s.ctx, &mapadmin.DeleteLockedZoneInput{Capability: s.player})
	s.True(errors.IsPermissionDenied(err))
	_, err = s.service.SaveRegion(s.ctx, &mapadmin.SaveRegionInput{Capability: s.player, Region: &entities.CircleRegion{}})
	s.True(errors.IsPermissionDenied(err))
	_, err = s.service.DeleteRegion(s.ctx, &mapadmin.DeleteRegionInput{Capability: s.player})
	s.True(errors.IsPermissionDenied(err))
	_, err = s.service.SetEmbed(s.ctx, &mapadmin.SetEmbedInput{Capability: s.player, MapID: testutils.TestMapID})
	s.True(errors.IsPermissionDenied(err))
}

func (s *OrchestratorTestSuite) TestListMaps() {
	_, err := s.service.ListMaps(s.ctx, &mapadmin.ListMapsInput{Capability: entities.Anonymous()})
	s.True(errors.IsPermissionDenied(err))

	s.mockMaps.EXPECT().
		ListMaps(s.ctx, maps.ListMapsInput{}).
		Return(&maps.ListMapsOutput{Maps: []*entities.Map{testutils.CreateTestMap(testutils.TestMapID)}}, nil)

	out, err := s.service.ListMaps(s.ctx, &mapadmin.ListMapsInput{Capability: s.player})
	s.Require().NoError(err)
	s.Len(out.Maps, 1)
}

func (s *OrchestratorTestSuite) TestSaveMapAssignsID() {
	s.mockMaps.EXPECT().
		SaveMap(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input maps.SaveMapInput) (*maps.SaveMapOutput, error) {
			s.Equal("map_1", input.Map.ID)
			s.Equal("Harbor", input.Map.Name)
			s.Equal(testutils.TestManagerID, input.Map.CreatedBy)
			return &maps.SaveMapOutput{Map: input.Map, Created: true}, nil
		})

	out, err := s.service.SaveMap(s.ctx, &mapadmin.SaveMapInput{
		Capability: s.manager,
		Map:        &entities.Map{Name: " Harbor ", ImageURL: "https://cdn.example.com/harbor.png"},
	})
	s.Require().NoError(err)
	s.True(out.Created)

	_, err = s.service.SaveMap(s.ctx, &mapadmin.SaveMapInput{Capability: s.manager, Map: &entities.Map{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSaveLockedZone() {
	s.Run("defaults the message", func() {
		s.mockMaps.EXPECT().
			SaveZone(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input maps.SaveZoneInput) (*maps.SaveZoneOutput, error) {
				s.Equal("zone_1", input.Zone.ID)
				s.Equal(entities.DefaultLockedZoneMessage, input.Zone.Message)
				s.Equal(testutils.TestManagerID, input.Zone.CreatedBy)
				return &maps.SaveZoneOutput{Zone: input.Zone, Created: true}, nil
			})

		out, err := s.service.SaveLockedZone(s.ctx, &mapadmin.SaveLockedZoneInput{
			Capability: s.manager,
			Zone:       &entities.LockedZone{MapID: testutils.TestMapID, X: 10, Y: 10, Width: 20, Height: 5, Message: "  "},
		})
		s.Require().NoError(err)
		s.True(out.Created)
	})

	s.Run("keeps an existing id and message", func() {
		s.mockMaps.EXPECT().
			SaveZone(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input maps.SaveZoneInput) (*maps.SaveZoneOutput, error) {
				s.Equal("zone-7", input.Zone.ID)
				s.Equal("The vault is sealed", input.Zone.Message)
				return &maps.SaveZoneOutput{Zone: input.Zone}, nil
			})

		_, err := s.service.SaveLockedZone(s.ctx, &mapadmin.SaveLockedZoneInput{
			Capability: s.manager,
			Zone: &entities.LockedZone{
				ID: "zone-7", MapID: testutils.TestMapID, Width: 1, Height: 1, Message: "The vault is sealed",
			},
		})
		s.NoError(err)
	})

	s.Run("rejects empty rectangles", func() {
		_, err := s.service.SaveLockedZone(s.ctx, &mapadmin.SaveLockedZoneInput{
			Capability: s.manager,
			Zone:       &entities.LockedZone{MapID: testutils.TestMapID, Width: 0, Height: 5},
		})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestSaveRegion() {
	s.Run("church needs a religion", func() {
		_, err := s.service.SaveRegion(s.ctx, &mapadmin.SaveRegionInput{
			Capability: s.manager,
			Region:     &entities.CircleRegion{MapID: testutils.TestMapID, Kind: entities.RegionKindChurch, Name: "Chapel"},
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown kind", func() {
		_, err := s.service.SaveRegion(s.ctx, &mapadmin.SaveRegionInput{
			Capability: s.manager,
			Region:     &entities.CircleRegion{MapID: testutils.TestMapID, Kind: "tavern", Name: "Inn"},
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("clamps radius and prefixes by kind", func() {
		s.mockMaps.EXPECT().
			SaveRegion(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input maps.SaveRegionInput) (*maps.SaveRegionOutput, error) {
				s.Equal("church_1", input.Region.ID)
				s.Equal(float64(entities.MaxRegionRadius), input.Region.Radius)
				return &maps.SaveRegionOutput{Region: input.Region, Created: true}, nil
			})

		out, err := s.service.SaveRegion(s.ctx, &mapadmin.SaveRegionInput{
			Capability: s.manager,
			Region: &entities.CircleRegion{
				MapID: testutils.TestMapID, Kind: entities.RegionKindChurch, Name: "Chapel",
				ReligionID: "religion-evernight", Radius: 80,
			},
		})
		s.Require().NoError(err)
		s.Equal("church_1", out.Region.ID)
	})

	s.Run("rest points drop any religion", func() {
		s.mockMaps.EXPECT().
			SaveRegion(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input maps.SaveRegionInput) (*maps.SaveRegionOutput, error) {
				s.Equal("rest_2", input.Region.ID)
				s.Empty(input.Region.ReligionID)
				s.Equal(float64(entities.MinRegionRadius), input.Region.Radius)
				return &maps.SaveRegionOutput{Region: input.Region, Created: true}, nil
			})

		_, err := s.service.SaveRegion(s.ctx, &mapadmin.SaveRegionInput{
			Capability: s.manager,
			Region: &entities.CircleRegion{
				MapID: testutils.TestMapID, Kind: entities.RegionKindRestPoint, Name: "Campfire",
				ReligionID: "religion-evernight",
			},
		})
		s.NoError(err)
	})
}

func (s *OrchestratorTestSuite) TestDeletes() {
	s.mockMaps.EXPECT().
		DeleteZone(s.ctx, maps.DeleteZoneInput{MapID: testutils.TestMapID, ZoneID: "zone-1"}).
		Return(&maps.DeleteZoneOutput{}, nil)
	s.mockMaps.EXPECT().
		DeleteRegion(s.ctx, maps.DeleteRegionInput{MapID: testutils.TestMapID, Kind: entities.RegionKindRestPoint, RegionID: "rest-1"}).
		Return(nil, errors.NotFound("region rest-1 not found"))
	s.mockMaps.EXPECT().
		DeleteMap(s.ctx, maps.DeleteMapInput{MapID: testutils.TestMapID}).
		Return(&maps.DeleteMapOutput{}, nil)

	_, err := s.service.DeleteLockedZone(s.ctx, &mapadmin.DeleteLockedZoneInput{
		Capability: s.manager, MapID: testutils.TestMapID, ZoneID: "zone-1",
	})
	s.NoError(err)

	_, err = s.service.DeleteRegion(s.ctx, &mapadmin.DeleteRegionInput{
		Capability: s.manager, MapID: testutils.TestMapID, Kind: entities.RegionKindRestPoint, RegionID: "rest-1",
	})
	s.True(errors.IsNotFound(err))

	_, err = s.service.DeleteMap(s.ctx, &mapadmin.DeleteMapInput{Capability: s.manager, MapID: testutils.TestMapID})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestSetEmbed() {
	m := testutils.CreateTestMap(testutils.TestMapID)

	s.Run("unchanged skips the write", func() {
		s.mockMaps.EXPECT().
			GetMap(s.ctx, maps.GetMapInput{MapID: testutils.TestMapID}).
			Return(&maps.GetMapOutput{Map: m}, nil)

		out, err := s.service.SetEmbed(s.ctx, &mapadmin.SetEmbedInput{Capability: s.manager, MapID: testutils.TestMapID, Enabled: true})
		s.Require().NoError(err)
		s.True(out.Map.EmbedEnabled)
	})

	s.Run("disables", func() {
		s.mockMaps.EXPECT().
			GetMap(s.ctx, maps.GetMapInput{MapID: testutils.TestMapID}).
			Return(&maps.GetMapOutput{Map: m}, nil)
		s.mockMaps.EXPECT().
			SaveMap(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input maps.SaveMapInput) (*maps.SaveMapOutput, error) {
				return &maps.SaveMapOutput{Map: input.Map}, nil
			})

		out, err := s.service.SetEmbed(s.ctx, &mapadmin.SetEmbedInput{Capability: s.manager, MapID: testutils.TestMapID, Enabled: false})
		s.Require().NoError(err)
		s.False(out.Map.EmbedEnabled)
		s.True(m.EmbedEnabled, "stored map must not be mutated in place")
	})
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
