package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/profiles"
	profilesmock "github.com/KirkDiggler/rpg-atlas/internal/repositories/profiles/mock"
	"github.com/KirkDiggler/rpg-atlas/internal/services/session"
	"github.com/KirkDiggler/rpg-atlas/internal/testutils"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type SessionTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockProfiles *profilesmock.MockRepository
	clock        *clock.Fixed
	svc          *session.Service
	ctx          context.Context
}

func (s *SessionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockProfiles = profilesmock.NewMockRepository(s.ctrl)
	s.clock = clock.NewFixed(testutils.FixedTime)

	svc, err := session.New(&session.Config{
		Secret:   testSecret,
		Issuer:   "rpg-atlas",
		Profiles: s.mockProfiles,
		Clock:    s.clock,
	})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
}

func (s *SessionTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SessionTestSuite) TestIssueAndAuthenticate() {
	token, err := s.svc.Issue(testutils.TestPlayerID, time.Hour)
	s.Require().NoError(err)

	playerID, err := s.svc.Authenticate("Bearer " + token)
	s.Require().NoError(err)
	s.Equal(testutils.TestPlayerID, playerID)
}

func (s *SessionTestSuite) TestAuthenticateRejects() {
	expired, err := s.svc.Issue(testutils.TestPlayerID, time.Minute)
	s.Require().NoError(err)
	s.clock.Advance(2 * time.Minute)

	other, err := session.New(&session.Config{
		Secret:   []byte("ffffffffffffffffffffffffffffffff"),
		Issuer:   "rpg-atlas",
		Profiles: s.mockProfiles,
		Clock:    s.clock,
	})
	s.Require().NoError(err)
	forged, err := other.Issue(testutils.TestPlayerID, time.Hour)
	s.Require().NoError(err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: testutils.TestPlayerID,
		Issuer:  "rpg-atlas",
	}).SignedString(testSecret)
	s.Require().NoError(err)

	wrongIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   testutils.TestPlayerID,
		Issuer:    "someone-else",
		ExpiresAt: jwt.NewNumericDate(s.clock.Now().Add(time.Hour)),
	}).SignedString(testSecret)
	s.Require().NoError(err)

	for name, token := range map[string]string{
		"empty":        "",
		"garbage":      "not.a.jwt",
		"expired":      expired,
		"forged":       forged,
		"no expiry":    noExp,
		"wrong issuer": wrongIssuer,
	} {
		s.Run(name, func() {
			_, err := s.svc.Authenticate(token)
			s.Require().Error(err)
			s.True(errors.IsUnauthenticated(err))
		})
	}
}

func (s *SessionTestSuite) TestResolveCapability() {
	s.mockProfiles.EXPECT().Get(s.ctx, profiles.GetInput{PlayerID: testutils.TestManagerID}).
		Return(&profiles.GetOutput{Profile: testutils.CreateTestProfile(testutils.TestManagerID, entities.RoleDM)}, nil)

	capability, err := s.svc.Resolve(s.ctx, testutils.TestManagerID)
	s.Require().NoError(err)
	s.True(capability.CanManage)
	s.Equal(testutils.TestManagerID, capability.PlayerID)
}

func (s *SessionTestSuite) TestStartWithoutProfileIsDenied() {
	token, err := s.svc.Issue("ghost", time.Hour)
	s.Require().NoError(err)

	s.mockProfiles.EXPECT().Get(s.ctx, profiles.GetInput{PlayerID: "ghost"}).
		Return(nil, errors.NotFound("profile ghost not found"))

	_, err = s.svc.Start(s.ctx, token)
	s.True(errors.IsPermissionDenied(err))
}

func (s *SessionTestSuite) TestConfigRequiresLongSecret() {
	_, err := session.New(&session.Config{Secret: []byte("short"), Profiles: s.mockProfiles})
	s.True(errors.IsInvalidArgument(err))
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}
