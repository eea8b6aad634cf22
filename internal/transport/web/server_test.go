package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/mapsync"
	mapsyncmock "github.com/KirkDiggler/rpg-atlas/internal/mapsync/mock"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/mapadmin"
	mapadminmock "github.com/KirkDiggler/rpg-atlas/internal/orchestrators/mapadmin/mock"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/movement"
	movementmock "github.com/KirkDiggler/rpg-atlas/internal/orchestrators/movement/mock"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/presence"
	presencemock "github.com/KirkDiggler/rpg-atlas/internal/orchestrators/presence/mock"
	"github.com/KirkDiggler/rpg-atlas/internal/orchestrators/skillcheck"
	skillcheckmock "github.com/KirkDiggler/rpg-atlas/internal/orchestrators/skillcheck/mock"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/maps"
	mapsmock "github.com/KirkDiggler/rpg-atlas/internal/repositories/maps/mock"
	"github.com/KirkDiggler/rpg-atlas/internal/testutils"
	"github.com/KirkDiggler/rpg-atlas/internal/transport/web"
)

const goodToken = "good-token"

type fakeSessions struct {
	capability entities.Capability
}

func (f *fakeSessions) Start(_ context.Context, token string) (entities.Capability, error) {
	if strings.TrimPrefix(token, "Bearer ") != goodToken {
		return entities.Capability{}, errors.Unauthenticated("invalid token")
	}
	return f.capability, nil
}

type idleChanges struct{ ch chan entities.Change }

func (i *idleChanges) Changes() <-chan entities.Change { return i.ch }
func (i *idleChanges) Close() error                    { return nil }

type idleLive struct{ ch chan entities.LiveEvent }

func (i *idleLive) Events() <-chan entities.LiveEvent { return i.ch }
func (i *idleLive) Close() error                      { return nil }

type ServerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockMaps  *mapsmock.MockRepository
	mockSkill *skillcheckmock.MockService
	mockAdmin *mapadminmock.MockService
	mockMove  *movementmock.MockService
	mockPres  *presencemock.MockService
	caller    entities.Capability
	fetcher   *mapsyncmock.MockFetcher
	changes   *mapsyncmock.MockChangeSource
	live      *mapsyncmock.MockLiveSource
	server    *httptest.Server
}

func TestServerTestSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockMaps = mapsmock.NewMockRepository(s.ctrl)
	s.mockSkill = skillcheckmock.NewMockService(s.ctrl)
	s.mockAdmin = mapadminmock.NewMockService(s.ctrl)
	s.mockMove = movementmock.NewMockService(s.ctrl)
	s.mockPres = presencemock.NewMockService(s.ctrl)
	s.caller = entities.Capability{PlayerID: testutils.TestPlayerID, Role: entities.RolePlayer}
	s.fetcher = mapsyncmock.NewMockFetcher(s.ctrl)
	s.changes = mapsyncmock.NewMockChangeSource(s.ctrl)
	s.live = mapsyncmock.NewMockLiveSource(s.ctrl)

	srv, err := web.NewServer(&web.Config{
		Sessions:   &fakeSessions{capability: s.caller},
		Maps:       s.mockMaps,
		SkillCheck: s.mockSkill,
		MapAdmin:   s.mockAdmin,
		Movement:   s.mockMove,
		Presence:   s.mockPres,
		Fetcher:    s.fetcher,
		Changes:    s.changes,
		Live:       s.live,
	})
	s.Require().NoError(err)

	s.server = httptest.NewServer(srv.Router())
}

func (s *ServerTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *ServerTestSuite) wsURL(path string) string {
	return "ws" + strings.TrimPrefix(s.server.URL, "http") + path
}

func (s *ServerTestSuite) expectView(mapID string, opts mapsync.FetchOptions) {
	s.changes.EXPECT().SubscribeChanges(gomock.Any(), mapID).
		Return(&idleChanges{ch: make(chan entities.Change)}, nil)
	s.live.EXPECT().SubscribeLive(gomock.Any(), mapID).
		Return(&idleLive{ch: make(chan entities.LiveEvent)}, nil)
	s.fetcher.EXPECT().FetchSnapshot(gomock.Any(), mapID, opts).
		Return(&entities.MapSnapshot{
			Map: testutils.CreateTestMap(mapID),
			Tokens: []*entities.Token{
				testutils.CreateTestPlayerToken("tok_1", mapID, testutils.TestPlayerID, 10, 20),
			},
		}, nil)
}

// readSnapshot reads events until the first snapshot arrives.
func (s *ServerTestSuite) readSnapshot(conn *websocket.Conn) mapsync.Event {
	for i := 0; i < 5; i++ {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var ev mapsync.Event
		s.Require().NoError(conn.ReadJSON(&ev))
		if ev.Kind == mapsync.EventSnapshot {
			return ev
		}
	}
	s.FailNow("no snapshot received")
	return mapsync.Event{}
}

func (s *ServerTestSuite) TestNewServer_MissingDependencies() {
	_, err := web.NewServer(&web.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ServerTestSuite) TestHealthz() {
	resp, err := http.Get(s.server.URL + "/healthz")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *ServerTestSuite) TestMapLive_RequiresToken() {
	_, resp, err := websocket.DefaultDialer.Dial(s.wsURL("/maps/"+testutils.TestMapID+"/live"), nil)
	s.Require().Error(err)
	s.Require().NotNil(resp)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *ServerTestSuite) TestMapLive_RejectsBadToken() {
	header := http.Header{"Authorization": []string{"Bearer forged"}}
	_, resp, err := websocket.DefaultDialer.Dial(s.wsURL("/maps/"+testutils.TestMapID+"/live"), header)
	s.Require().Error(err)
	s.Require().NotNil(resp)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *ServerTestSuite) TestMapLive_StreamsSnapshot() {
	s.expectView(testutils.TestMapID, mapsync.FetchOptions{})

	header := http.Header{"Authorization": []string{"Bearer " + goodToken}}
	conn, _, err := websocket.DefaultDialer.Dial(s.wsURL("/maps/"+testutils.TestMapID+"/live"), header)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	ev := s.readSnapshot(conn)
	s.Require().NotNil(ev.Snapshot)
	s.Require().Len(ev.Snapshot.Tokens, 1)
	s.Equal("tok_1", ev.Snapshot.Tokens[0].ID)
}

func (s *ServerTestSuite) TestMapLive_TokenQueryParam() {
	s.expectView(testutils.TestMapID, mapsync.FetchOptions{})

	conn, _, err := websocket.DefaultDialer.Dial(
		s.wsURL("/maps/"+testutils.TestMapID+"/live?token="+goodToken), nil)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	s.NotNil(s.readSnapshot(conn).Snapshot)
}

func (s *ServerTestSuite) TestEmbedMapLive_Embeddable() {
	s.mockMaps.EXPECT().
		GetMap(gomock.Any(), maps.GetMapInput{MapID: testutils.TestMapID}).
		Return(&maps.GetMapOutput{Map: testutils.CreateTestMap(testutils.TestMapID)}, nil)
	s.expectView(testutils.TestMapID, mapsync.FetchOptions{})

	conn, _, err := websocket.DefaultDialer.Dial(s.wsURL("/embed/maps/"+testutils.TestMapID+"/live"), nil)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	s.NotNil(s.readSnapshot(conn).Snapshot)
}

func (s *ServerTestSuite) TestEmbedMapLive_HiddenMap() {
	hidden := testutils.CreateTestMap(testutils.TestMapID)
	hidden.EmbedEnabled = false
	s.mockMaps.EXPECT().
		GetMap(gomock.Any(), maps.GetMapInput{MapID: testutils.TestMapID}).
		Return(&maps.GetMapOutput{Map: hidden}, nil)

	_, resp, err := websocket.DefaultDialer.Dial(s.wsURL("/embed/maps/"+testutils.TestMapID+"/live"), nil)
	s.Require().Error(err)
	s.Require().NotNil(resp)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *ServerTestSuite) TestSkillOutcome() {
	record := &entities.OutcomeRecord{
		ID:            "7",
		PlayerID:      testutils.TestPlayerID,
		SkillID:       "stealth",
		Kind:          entities.OutcomeKindSkill,
		Roll:          15,
		SuccessRate:   12,
		Outcome:       entities.OutcomeSuccess,
		ReferenceCode: "SKL-BEEF-07032025-T12-R15-S",
		UsedAt:        testutils.FixedTime,
	}
	s.mockSkill.EXPECT().
		Resolve(gomock.Any(), &skillcheck.ResolveInput{Code: "SKL-BEEF-07032025-T12-R15-S"}).
		Return(&skillcheck.ResolveOutput{
			Record:  record,
			Outcome: entities.OutcomeSuccess,
			Source:  skillcheck.SourceJournal,
		}, nil)

	resp, err := http.Get(s.server.URL + "/embed/skills/SKL-BEEF-07032025-T12-R15-S")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Code    string                  `json:"code"`
		Outcome entities.Outcome        `json:"outcome"`
		Source  skillcheck.Source       `json:"source"`
		Record  *entities.OutcomeRecord `json:"record"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("SKL-BEEF-07032025-T12-R15-S", body.Code)
	s.Equal(entities.OutcomeSuccess, body.Outcome)
	s.Equal(skillcheck.SourceJournal, body.Source)
	s.Equal("stealth", body.Record.SkillID)
}

func (s *ServerTestSuite) TestSkillOutcome_Unknown() {
	s.mockSkill.EXPECT().
		Resolve(gomock.Any(), &skillcheck.ResolveInput{Code: "garbage"}).
		Return(&skillcheck.ResolveOutput{Outcome: entities.OutcomeUnknown, Source: skillcheck.SourceNone}, nil)

	resp, err := http.Get(s.server.URL + "/embed/skills/garbage")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("unknown", body["outcome"])
	s.NotContains(body, "record")
}

func (s *ServerTestSuite) call(method, path string, body any) *http.Response {
	var payload bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&payload).Encode(body))
	}
	req, err := http.NewRequest(method, s.server.URL+path, &payload)
	s.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+goodToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (s *ServerTestSuite) TestAPI_RequiresToken() {
	resp, err := http.Get(s.server.URL + "/api/maps")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *ServerTestSuite) TestAPI_ListMaps() {
	s.mockAdmin.EXPECT().
		ListMaps(gomock.Any(), &mapadmin.ListMapsInput{Capability: s.caller}).
		Return(&mapadmin.ListMapsOutput{Maps: []*entities.Map{
			testutils.CreateTestMap(testutils.TestMapID),
			testutils.CreateTestMap(testutils.TestOtherMap),
		}}, nil)

	resp := s.call(http.MethodGet, "/api/maps", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Maps []*entities.Map `json:"maps"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Len(body.Maps, 2)
}

func (s *ServerTestSuite) TestAPI_SetEmbedPermissionDenied() {
	s.mockAdmin.EXPECT().
		SetEmbed(gomock.Any(), &mapadmin.SetEmbedInput{
			Capability: s.caller,
			MapID:      testutils.TestMapID,
			Enabled:    true,
		}).
		Return(nil, errors.PermissionDenied("only managers can change embedding"))

	resp := s.call(http.MethodPut, "/api/maps/"+testutils.TestMapID+"/embed", map[string]bool{"enabled": true})
	s.Equal(http.StatusForbidden, resp.StatusCode)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("PERMISSION_DENIED", body["error"])
}

func (s *ServerTestSuite) TestAPI_AddPlayerWithEvidence() {
	token := testutils.CreateTestPlayerToken("tok_1", testutils.TestOtherMap, testutils.TestPlayerID, 50, 50)
	s.mockMove.EXPECT().
		AddPlayerToMap(gomock.Any(), &movement.AddPlayerToMapInput{
			Capability: s.caller,
			MapID:      testutils.TestOtherMap,
			Evidence: &movement.RoleplayEvidence{
				OriginURL:      "https://chat.example.com/a",
				DestinationURL: "https://chat.example.com/b",
			},
		}).
		Return(&movement.AddPlayerToMapOutput{
			Token:         token,
			PreviousMapID: testutils.TestMapID,
			MoveType:      entities.MoveTypeCrossMap,
		}, nil)

	resp := s.call(http.MethodPost, "/api/maps/"+testutils.TestOtherMap+"/players", map[string]string{
		"origin_url":      "https://chat.example.com/a",
		"destination_url": "https://chat.example.com/b",
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Token    *entities.Token   `json:"token"`
		MoveType entities.MoveType `json:"move_type"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("tok_1", body.Token.ID)
	s.Equal(entities.MoveTypeCrossMap, body.MoveType)
}

func (s *ServerTestSuite) TestAPI_ListTravelLogsBadPage() {
	resp := s.call(http.MethodGet, "/api/travel-logs?page=-1", nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *ServerTestSuite) TestAPI_RestZoneUsesCaller() {
	s.mockPres.EXPECT().
		InRestZone(gomock.Any(), &presence.InRestZoneInput{PlayerID: testutils.TestPlayerID}).
		Return(&presence.InRestZoneOutput{InRestZone: true, MapID: testutils.TestMapID}, nil)

	resp := s.call(http.MethodGet, "/api/rest-zone", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal(true, body["in_rest_zone"])
	s.Equal(testutils.TestMapID, body["map_id"])
}

func (s *ServerTestSuite) TestAPI_SubmitPrayer() {
	urls := []string{"https://chat.example.com/1", "https://chat.example.com/2"}
	s.mockPres.EXPECT().
		SubmitPrayer(gomock.Any(), &presence.SubmitPrayerInput{Capability: s.caller, EvidenceURLs: urls}).
		Return(&presence.SubmitPrayerOutput{Gained: 2, Sanity: 5, MaxSanity: 10, ChurchID: "church_1"}, nil)

	resp := s.call(http.MethodPost, "/api/prayers", map[string][]string{"evidence_urls": urls})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal(float64(2), body["gained"])
	s.Equal("church_1", body["church_id"])
}

func (s *ServerTestSuite) TestAPI_MalformedBody() {
	req, err := http.NewRequest(http.MethodPost, s.server.URL+"/api/prayers", strings.NewReader("{"))
	s.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+goodToken)

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}
