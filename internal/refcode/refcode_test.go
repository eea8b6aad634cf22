package refcode_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/refcode"
)

type RefcodeTestSuite struct {
	suite.Suite
	usedAt time.Time
}

func TestRefcodeSuite(t *testing.T) {
	suite.Run(t, new(RefcodeTestSuite))
}

func (s *RefcodeTestSuite) SetupTest() {
	s.usedAt = time.Date(2025, time.March, 7, 21, 15, 0, 0, time.UTC)
}

func (s *RefcodeTestSuite) TestEncodeExactFormat() {
	code, err := refcode.Encode(&entities.OutcomeRecord{
		PlayerID:    "7f3c2a10-9b1e-4c55-a1d2-00000000beef",
		SuccessRate: 12,
		Roll:        15,
		Outcome:     entities.OutcomeSuccess,
		UsedAt:      s.usedAt,
	})
	s.Require().NoError(err)
	s.Equal("SKL-BEEF-07032025-T12-R15-S", code)
}

func (s *RefcodeTestSuite) TestEncodeGrantedPrefix() {
	code, err := refcode.Encode(&entities.OutcomeRecord{
		PlayerID:    "p_9",
		Kind:        entities.OutcomeKindGranted,
		SuccessRate: 1,
		Roll:        3,
		Outcome:     entities.OutcomeFail,
		UsedAt:      s.usedAt,
	})
	s.Require().NoError(err)
	s.Equal("GS-P9-07032025-T1-R3-F", code)
}

func (s *RefcodeTestSuite) TestRoundTrip() {
	for rate := 0; rate <= 99; rate += 7 {
		for roll := 0; roll <= 99; roll += 11 {
			for _, outcome := range []entities.Outcome{entities.OutcomeSuccess, entities.OutcomeFail} {
				rec := &entities.OutcomeRecord{
					PlayerID:    "abcd-1234",
					SuccessRate: rate,
					Roll:        roll,
					Outcome:     outcome,
					UsedAt:      s.usedAt,
				}
				code, err := refcode.Encode(rec)
				s.Require().NoError(err)

				got := refcode.Decode(code)
				s.Require().NotNil(got, code)
				s.Equal(rate, got.SuccessRate)
				s.Equal(roll, got.Roll)
				s.Equal(outcome, got.Outcome)
				s.Equal("1234", got.Tag)
				s.Equal(entities.OutcomeKindSkill, got.Kind)
				s.Equal(time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC), got.Date)
			}
		}
	}
}

func (s *RefcodeTestSuite) TestDecodeRejects() {
	codes := []string{
		"",
		"garbage",
		"SKL-BEEF-07032025-T12-R15-X",
		"SKL-beef-07032025-T12-R15-S",
		"SKL-BEEF-7032025-T12-R15-S",
		"SKL-BEEF-07032025-T123-R15-S",
		"SKL-BEEF-07032025-T12-R-S",
		"SKL-BEEF07032025-T12-R15-S",
		"XP-BEEF-07032025-T12-R15-S",
		" SKL-BEEF-07032025-T12-R15-S",
		"SKL-BEEF-07032025-T12-R15-S\n",
	}

	for _, c := range codes {
		s.Nil(refcode.Decode(c), "%q", c)
	}
}

func (s *RefcodeTestSuite) TestDecodeKeepsImpossibleDates() {
	testCases := []struct {
		code  string
		label string
	}{
		{"SKL-BEEF-31022025-T12-R15-S", "31/02/2025"},
		{"SKL-BEEF-00132025-T3-R9-F", "00/13/2025"},
	}

	for _, tc := range testCases {
		s.Run(tc.code, func() {
			got := refcode.Decode(tc.code)
			s.Require().NotNil(got)
			s.True(got.Date.IsZero())
			s.Equal(tc.label, got.DateLabel)
			s.Equal("BEEF", got.Tag)
		})
	}

	got := refcode.Decode("SKL-BEEF-31022025-T12-R15-S")
	s.Require().NotNil(got)
	s.Equal(12, got.SuccessRate)
	s.Equal(15, got.Roll)
	s.Equal(entities.OutcomeSuccess, got.Outcome)
}

func (s *RefcodeTestSuite) TestDecodeRecord() {
	got := refcode.Decode("GS-AB12-29022024-T20-R1-F")
	s.Require().NotNil(got)

	rec := got.Record()
	s.Equal(entities.OutcomeKindGranted, rec.Kind)
	s.Equal(20, rec.SuccessRate)
	s.Equal(1, rec.Roll)
	s.Equal(entities.OutcomeFail, rec.Outcome)
	s.Equal("GS-AB12-29022024-T20-R1-F", rec.ReferenceCode)
	s.Equal("29/02/2024", got.DateLabel)
}

func (s *RefcodeTestSuite) TestEncodeRejects() {
	testCases := []struct {
		name string
		rec  *entities.OutcomeRecord
	}{
		{"nil", nil},
		{"unknown outcome", &entities.OutcomeRecord{PlayerID: "p1", Outcome: entities.OutcomeUnknown, UsedAt: s.usedAt}},
		{"rate too wide", &entities.OutcomeRecord{PlayerID: "p1", SuccessRate: 100, Outcome: entities.OutcomeFail, UsedAt: s.usedAt}},
		{"negative roll", &entities.OutcomeRecord{PlayerID: "p1", Roll: -1, Outcome: entities.OutcomeFail, UsedAt: s.usedAt}},
		{"no tag", &entities.OutcomeRecord{PlayerID: "---", Outcome: entities.OutcomeFail, UsedAt: s.usedAt}},
		{"no time", &entities.OutcomeRecord{PlayerID: "p1", Outcome: entities.OutcomeFail}},
		{"bad kind", &entities.OutcomeRecord{PlayerID: "p1", Kind: "XP", Outcome: entities.OutcomeFail, UsedAt: s.usedAt}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := refcode.Encode(tc.rec)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RefcodeTestSuite) TestSkillTag() {
	s.Equal("BEEF", refcode.SkillTag("0000-dead-beef"))
	s.Equal("AB", refcode.SkillTag("a-b"))
	s.Equal("", refcode.SkillTag(""))
	s.Equal("X12", refcode.SkillTag("ผู้เล่น_x12"))
}
