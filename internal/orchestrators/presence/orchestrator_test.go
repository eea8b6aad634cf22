package presence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/presence"
	"github.com/KirkDiggler/rpg-atlas/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-atlas/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/journal"
	journalmock "github.com/KirkDiggler/rpg-atlas/internal/repositories/journal/mock"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/maps"
	mapsmock "github.com/KirkDiggler/rpg-atlas/internal/repositories/maps/mock"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/profiles"
	profilesmock "github.com/KirkDiggler/rpg-atlas/internal/repositories/profiles/mock"
	"github.com/KirkDiggler/rpg-atlas/internal/testutils"
)

const religion = "religion-evernight"

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockMaps     *mapsmock.MockRepository
	mockProfiles *profilesmock.MockRepository
	mockJournal  *journalmock.MockRepository
	service      presence.Service
	ctx          context.Context
	player       entities.Capability
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockMaps = mapsmock.NewMockRepository(s.ctrl)
	s.mockProfiles = profilesmock.NewMockRepository(s.ctrl)
	s.mockJournal = journalmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.service, err = presence.NewOrchestrator(&presence.Config{
		Maps:        s.mockMaps,
		Profiles:    s.mockProfiles,
		Journal:     s.mockJournal,
		IDGenerator: idgen.NewSequential(idgen.PrefixPrayer),
		Clock:       clock.NewFixed(testutils.FixedTime),
	})
	s.Require().NoError(err)

	s.player = entities.Capability{PlayerID: testutils.TestPlayerID, Role: entities.RolePlayer}
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectToken(x, y float64) {
	s.mockMaps.EXPECT().
		FindPlayerToken(s.ctx, maps.FindPlayerTokenInput{PlayerID: testutils.TestPlayerID}).
		Return(&maps.FindPlayerTokenOutput{
			Token: testutils.CreateTestPlayerToken("tok-1", testutils.TestMapID, testutils.TestPlayerID, x, y),
		}, nil)
}

func (s *OrchestratorTestSuite) expectNoToken() {
	s.mockMaps.EXPECT().
		FindPlayerToken(s.ctx, maps.FindPlayerTokenInput{PlayerID: testutils.TestPlayerID}).
		Return(nil, errors.NotFound("no token"))
}

func (s *OrchestratorTestSuite) expectRegions(kind entities.RegionKind, regions ...*entities.CircleRegion) {
	s.mockMaps.EXPECT().
		ListRegions(s.ctx, maps.ListRegionsInput{MapID: testutils.TestMapID, Kind: kind}).
		Return(&maps.ListRegionsOutput{Regions: regions}, nil)
}

func (s *OrchestratorTestSuite) expectProfile(mutate func(p *entities.Profile)) {
	p := testutils.CreateTestProfile(testutils.TestPlayerID, entities.RolePlayer)
	p.ReligionID = religion
	if mutate != nil {
		mutate(p)
	}
	s.mockProfiles.EXPECT().
		Get(s.ctx, profiles.GetInput{PlayerID: testutils.TestPlayerID}).
		Return(&profiles.GetOutput{Profile: p}, nil)
}

func church(id, religionID string, x, y float64) *entities.CircleRegion {
	return &entities.CircleRegion{
		ID: id, MapID: testutils.TestMapID, Kind: entities.RegionKindChurch,
		Name: "Church " + id, ReligionID: religionID, X: x, Y: y, Radius: 10,
	}
}

func (s *OrchestratorTestSuite) TestInRestZone() {
	rest := &entities.CircleRegion{ID: "rest-1", MapID: testutils.TestMapID, Kind: entities.RegionKindRestPoint, X: 20, Y: 20, Radius: 5}

	s.Run("inside", func() {
		s.expectToken(23, 24)
		s.expectRegions(entities.RegionKindRestPoint, rest)

		out, err := s.service.InRestZone(s.ctx, &presence.InRestZoneInput{PlayerID: testutils.TestPlayerID})
		s.Require().NoError(err)
		s.True(out.InRestZone)
		s.Equal(testutils.TestMapID, out.MapID)
	})

	s.Run("outside", func() {
		s.expectToken(26, 24)
		s.expectRegions(entities.RegionKindRestPoint, rest)

		out, err := s.service.InRestZone(s.ctx, &presence.InRestZoneInput{PlayerID: testutils.TestPlayerID})
		s.Require().NoError(err)
		s.False(out.InRestZone)
	})

	s.Run("no token", func() {
		s.expectNoToken()

		out, err := s.service.InRestZone(s.ctx, &presence.InRestZoneInput{PlayerID: testutils.TestPlayerID})
		s.Require().NoError(err)
		s.False(out.InRestZone)
		s.Empty(out.MapID)
	})
}

func (s *OrchestratorTestSuite) TestSubmitPrayer_Accepted() {
	s.expectProfile(nil)
	s.expectToken(52, 50)
	s.expectRegions(entities.RegionKindChurch,
		church("church-other", "religion-dawn", 50, 50),
		church("church-1", religion, 50, 50),
	)
	s.mockProfiles.EXPECT().
		RestoreSanity(s.ctx, profiles.RestoreSanityInput{PlayerID: testutils.TestPlayerID, Amount: 3}).
		Return(&profiles.RestoreSanityOutput{
			Profile: &entities.Profile{Sanity: 6, MaxSanity: 10},
			Gained:  3,
		}, nil)
	s.mockJournal.EXPECT().
		RecordPrayer(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input journal.RecordPrayerInput) (*journal.RecordPrayerOutput, error) {
			s.Equal("prayer_1", input.Log.ID)
			s.Equal("church-1", input.Log.ChurchID)
			s.Len(input.Log.EvidenceURLs, 3)
			return &journal.RecordPrayerOutput{}, nil
		})

	out, err := s.service.SubmitPrayer(s.ctx, &presence.SubmitPrayerInput{
		Capability: s.player,
		EvidenceURLs: []string{
			"https://example.com/1",
			"",
			"https://example.com/2",
			" https://example.com/3 ",
		},
	})
	s.Require().NoError(err)
	s.Equal(3, out.Gained)
	s.Equal(6, out.Sanity)
	s.Equal("church-1", out.ChurchID)
}

func (s *OrchestratorTestSuite) TestSubmitPrayer_Rejections() {
	evidence := []string{"https://example.com/1", "https://example.com/2"}

	s.Run("too little evidence", func() {
		_, err := s.service.SubmitPrayer(s.ctx, &presence.SubmitPrayerInput{
			Capability:   s.player,
			EvidenceURLs: []string{"https://example.com/1", "  "},
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("no religion", func() {
		s.expectProfile(func(p *entities.Profile) { p.ReligionID = "" })

		_, err := s.service.SubmitPrayer(s.ctx, &presence.SubmitPrayerInput{Capability: s.player, EvidenceURLs: evidence})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("sanity full", func() {
		s.expectProfile(func(p *entities.Profile) { p.Sanity = p.MaxSanity })

		_, err := s.service.SubmitPrayer(s.ctx, &presence.SubmitPrayerInput{Capability: s.player, EvidenceURLs: evidence})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("not on a map", func() {
		s.expectProfile(nil)
		s.expectNoToken()

		_, err := s.service.SubmitPrayer(s.ctx, &presence.SubmitPrayerInput{Capability: s.player, EvidenceURLs: evidence})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("only another religion's church in range", func() {
		s.expectProfile(nil)
		s.expectToken(50, 50)
		s.expectRegions(entities.RegionKindChurch, church("church-other", "religion-dawn", 50, 50))

		_, err := s.service.SubmitPrayer(s.ctx, &presence.SubmitPrayerInput{Capability: s.player, EvidenceURLs: evidence})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
		s.Equal(religion, errors.GetMeta(err)["religion_id"])
	})

	s.Run("anonymous", func() {
		_, err := s.service.SubmitPrayer(s.ctx, &presence.SubmitPrayerInput{EvidenceURLs: evidence})
		s.True(errors.IsPermissionDenied(err))
	})
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
