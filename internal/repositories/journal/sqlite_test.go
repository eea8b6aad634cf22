package journal_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/journal"
	"github.com/KirkDiggler/rpg-atlas/internal/testutils"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	repo journal.Repository
	ctx  context.Context
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	repo, err := journal.NewSQLite(&journal.SQLiteConfig{Path: journal.MemoryPath})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.Require().NoError(s.repo.Close())
}

func (s *SQLiteRepositoryTestSuite) outcome(id, code string, usedAt time.Time) *entities.OutcomeRecord {
	return &entities.OutcomeRecord{
		ID:            id,
		PlayerID:      testutils.TestPlayerID,
		SkillID:       "skill-lockpick",
		SkillName:     "Lockpicking",
		Kind:          entities.OutcomeKindSkill,
		Roll:          15,
		SuccessRate:   12,
		Outcome:       entities.OutcomeSuccess,
		ReferenceCode: code,
		UsedAt:        usedAt,
	}
}

func (s *SQLiteRepositoryTestSuite) TestConfigRequiresPath() {
	_, err := journal.NewSQLite(&journal.SQLiteConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteRepositoryTestSuite) TestFileBackedJournalPersists() {
	path := filepath.Join(s.T().TempDir(), "journal", "atlas.db")

	first, err := journal.NewSQLite(&journal.SQLiteConfig{Path: path})
	s.Require().NoError(err)
	_, err = first.RecordOutcome(s.ctx, journal.RecordOutcomeInput{Record: s.outcome("out-1", "SKL-BEEF-07032025-T12-R15-S", testutils.FixedTime)})
	s.Require().NoError(err)
	s.Require().NoError(first.Close())

	second, err := journal.NewSQLite(&journal.SQLiteConfig{Path: path})
	s.Require().NoError(err)
	defer func() { _ = second.Close() }()

	out, err := second.FindOutcome(s.ctx, journal.FindOutcomeInput{Code: "SKL-BEEF-07032025-T12-R15-S"})
	s.Require().NoError(err)
	s.Equal("out-1", out.Record.ID)
}

func (s *SQLiteRepositoryTestSuite) TestRecordAndFindOutcome() {
	code := "SKL-BEEF-07032025-T12-R15-S"
	_, err := s.repo.RecordOutcome(s.ctx, journal.RecordOutcomeInput{Record: s.outcome("out-1", code, testutils.FixedTime)})
	s.Require().NoError(err)

	later := s.outcome("out-2", code, testutils.FixedTime.Add(time.Hour))
	later.Note = "second attempt"
	_, err = s.repo.RecordOutcome(s.ctx, journal.RecordOutcomeInput{Record: later})
	s.Require().NoError(err)

	out, err := s.repo.FindOutcome(s.ctx, journal.FindOutcomeInput{Code: " " + code + " "})
	s.Require().NoError(err)
	s.Equal("out-2", out.Record.ID)
	s.Equal("second attempt", out.Record.Note)
	s.Equal(entities.OutcomeSuccess, out.Record.Outcome)
	s.Equal(entities.OutcomeKindSkill, out.Record.Kind)
	s.True(testutils.FixedTime.Add(time.Hour).Equal(out.Record.UsedAt))
}

func (s *SQLiteRepositoryTestSuite) TestFindOutcomeMissing() {
	_, err := s.repo.FindOutcome(s.ctx, journal.FindOutcomeInput{Code: "SKL-NONE-07032025-T1-R1-F"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.FindOutcome(s.ctx, journal.FindOutcomeInput{Code: "  "})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteRepositoryTestSuite) TestRecordOutcomeRejectsDuplicatesAndGaps() {
	rec := s.outcome("out-1", "SKL-BEEF-07032025-T12-R15-S", testutils.FixedTime)
	_, err := s.repo.RecordOutcome(s.ctx, journal.RecordOutcomeInput{Record: rec})
	s.Require().NoError(err)

	_, err = s.repo.RecordOutcome(s.ctx, journal.RecordOutcomeInput{Record: rec})
	s.True(errors.IsAlreadyExists(err))

	_, err = s.repo.RecordOutcome(s.ctx, journal.RecordOutcomeInput{Record: s.outcome("out-3", "", testutils.FixedTime)})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.RecordOutcome(s.ctx, journal.RecordOutcomeInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteRepositoryTestSuite) TestTravelLogsPaging() {
	for i := 0; i < journal.TravelLogPageSize+5; i++ {
		playerID := testutils.TestPlayerID
		if i%2 == 1 {
			playerID = testutils.TestOtherID
		}
		_, err := s.repo.RecordTravel(s.ctx, journal.RecordTravelInput{Log: &entities.TravelLog{
			ID:             fmt.Sprintf("travel-%03d", i),
			PlayerID:       playerID,
			TokenID:        "tok-" + playerID,
			FromMapID:      testutils.TestMapID,
			ToMapID:        testutils.TestOtherMap,
			ToX:            float64(i),
			MoveType:       entities.MoveTypeCrossMap,
			OriginURL:      "https://example.com/a",
			DestinationURL: "https://example.com/b",
			CreatedAt:      testutils.FixedTime.Add(time.Duration(i) * time.Minute),
		}})
		s.Require().NoError(err)
	}

	first, err := s.repo.ListTravelLogs(s.ctx, journal.ListTravelLogsInput{})
	s.Require().NoError(err)
	s.Len(first.Logs, journal.TravelLogPageSize)
	s.True(first.HasMore)
	s.Equal("travel-054", first.Logs[0].ID)
	s.Equal(entities.MoveTypeCrossMap, first.Logs[0].MoveType)

	second, err := s.repo.ListTravelLogs(s.ctx, journal.ListTravelLogsInput{Page: 1})
	s.Require().NoError(err)
	s.Len(second.Logs, 5)
	s.False(second.HasMore)

	own, err := s.repo.ListTravelLogs(s.ctx, journal.ListTravelLogsInput{PlayerID: testutils.TestOtherID})
	s.Require().NoError(err)
	s.Len(own.Logs, 27)
	for _, l := range own.Logs {
		s.Equal(testutils.TestOtherID, l.PlayerID)
	}

	_, err = s.repo.ListTravelLogs(s.ctx, journal.ListTravelLogsInput{Page: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteRepositoryTestSuite) TestRecordTravelRequiresEvidence() {
	_, err := s.repo.RecordTravel(s.ctx, journal.RecordTravelInput{Log: &entities.TravelLog{
		ID:       "travel-1",
		PlayerID: testutils.TestPlayerID,
		ToMapID:  testutils.TestMapID,
	}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteRepositoryTestSuite) TestPrayers() {
	for i, gained := range []int{2, 1} {
		_, err := s.repo.RecordPrayer(s.ctx, journal.RecordPrayerInput{Log: &entities.PrayerLog{
			ID:           fmt.Sprintf("prayer-%d", i),
			PlayerID:     testutils.TestPlayerID,
			ChurchID:     "church-1",
			EvidenceURLs: []string{"https://example.com/1", "https://example.com/2"},
			SanityGained: gained,
			CreatedAt:    testutils.FixedTime.Add(time.Duration(i) * time.Hour),
		}})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListPrayers(s.ctx, journal.ListPrayersInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Require().Len(out.Logs, 2)
	s.Equal("prayer-1", out.Logs[0].ID)
	s.Equal(1, out.Logs[0].SanityGained)
	s.Equal([]string{"https://example.com/1", "https://example.com/2"}, out.Logs[1].EvidenceURLs)

	limited, err := s.repo.ListPrayers(s.ctx, journal.ListPrayersInput{PlayerID: testutils.TestPlayerID, Limit: 1})
	s.Require().NoError(err)
	s.Len(limited.Logs, 1)
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}
