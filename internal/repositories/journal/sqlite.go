package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
)

// MemoryPath opens a private in-memory journal.
const MemoryPath = ":memory:"

type sqliteRepository struct {
	db *sql.DB
}

var _ Repository = (*sqliteRepository)(nil)

// SQLiteConfig contains configuration for the SQLite journal.
type SQLiteConfig struct {
	Path string
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if strings.TrimSpace(cfg.Path) == "" {
		vb.RequiredField("Path")
	}
	return vb.Build()
}

// NewSQLite opens (creating if needed) the journal database.
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	if cfg.Path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, errors.Wrap(err, "failed to create journal directory")
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open journal")
	}
	// A single connection keeps writes serialized and an in-memory db alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to configure journal")
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create journal schema")
	}

	return &sqliteRepository{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS outcome_logs (
			id TEXT PRIMARY KEY,
			player_id TEXT NOT NULL,
			skill_id TEXT NOT NULL,
			skill_name TEXT NOT NULL,
			kind TEXT NOT NULL,
			roll INTEGER NOT NULL,
			success_rate INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			note TEXT NOT NULL,
			reference_code TEXT NOT NULL,
			used_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_outcome_logs_code ON outcome_logs(reference_code, used_at);`,
		`CREATE TABLE IF NOT EXISTS travel_logs (
			id TEXT PRIMARY KEY,
			player_id TEXT NOT NULL,
			token_id TEXT NOT NULL,
			from_map_id TEXT NOT NULL,
			to_map_id TEXT NOT NULL,
			from_x REAL NOT NULL,
			from_y REAL NOT NULL,
			to_x REAL NOT NULL,
			to_y REAL NOT NULL,
			move_type TEXT NOT NULL,
			origin_url TEXT NOT NULL,
			destination_url TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_travel_logs_player ON travel_logs(player_id, created_at);`,
		`CREATE TABLE IF NOT EXISTS prayer_logs (
			id TEXT PRIMARY KEY,
			player_id TEXT NOT NULL,
			church_id TEXT NOT NULL,
			evidence_json TEXT NOT NULL,
			sanity_gained INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_prayer_logs_player ON prayer_logs(player_id, created_at);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *sqliteRepository) Close() error {
	return r.db.Close()
}

func (r *sqliteRepository) RecordOutcome(
	ctx context.Context,
	input RecordOutcomeInput,
) (*RecordOutcomeOutput, error) {
	rec := input.Record
	if rec == nil {
		return nil, errors.InvalidArgument("record cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", rec.ID, vb)
	errors.ValidateRequired("player_id", rec.PlayerID, vb)
	errors.ValidateRequired("reference_code", rec.ReferenceCode, vb)
	if rec.UsedAt.IsZero() {
		vb.RequiredField("used_at")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO outcome_logs (id,player_id,skill_id,skill_name,kind,roll,success_rate,outcome,note,reference_code,used_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		rec.ID, rec.PlayerID, rec.SkillID, rec.SkillName, string(rec.Kind), rec.Roll, rec.SuccessRate,
		string(rec.Outcome), rec.Note, rec.ReferenceCode, rec.UsedAt.UnixMilli(),
	)
	if err != nil {
		return nil, insertError(err, "outcome", rec.ID)
	}

	return &RecordOutcomeOutput{Record: rec}, nil
}

func (r *sqliteRepository) FindOutcome(ctx context.Context, input FindOutcomeInput) (*FindOutcomeOutput, error) {
	code := strings.TrimSpace(input.Code)
	if code == "" {
		return nil, errors.InvalidArgument("code cannot be empty")
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT id,player_id,skill_id,skill_name,kind,roll,success_rate,outcome,note,reference_code,used_at
		FROM outcome_logs WHERE reference_code=? ORDER BY used_at DESC LIMIT 1`, code)

	var (
		rec     entities.OutcomeRecord
		kind    string
		outcome string
		usedAt  int64
	)
	err := row.Scan(&rec.ID, &rec.PlayerID, &rec.SkillID, &rec.SkillName, &kind, &rec.Roll, &rec.SuccessRate,
		&outcome, &rec.Note, &rec.ReferenceCode, &usedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("no outcome logged under %s", code)
		}
		return nil, errors.Wrap(err, "failed to find outcome")
	}
	rec.Kind = entities.OutcomeKind(kind)
	rec.Outcome = entities.Outcome(outcome)
	rec.UsedAt = fromMillis(usedAt)

	return &FindOutcomeOutput{Record: &rec}, nil
}

func (r *sqliteRepository) RecordTravel(ctx context.Context, input RecordTravelInput) (*RecordTravelOutput, error) {
	l := input.Log
	if l == nil {
		return nil, errors.InvalidArgument("log cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", l.ID, vb)
	errors.ValidateRequired("player_id", l.PlayerID, vb)
	errors.ValidateRequired("to_map_id", l.ToMapID, vb)
	errors.ValidateRequired("origin_url", l.OriginURL, vb)
	errors.ValidateRequired("destination_url", l.DestinationURL, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO travel_logs (id,player_id,token_id,from_map_id,to_map_id,from_x,from_y,to_x,to_y,move_type,origin_url,destination_url,created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		l.ID, l.PlayerID, l.TokenID, l.FromMapID, l.ToMapID, l.FromX, l.FromY, l.ToX, l.ToY,
		string(l.MoveType), l.OriginURL, l.DestinationURL, l.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return nil, insertError(err, "travel log", l.ID)
	}

	return &RecordTravelOutput{Log: l}, nil
}

func (r *sqliteRepository) ListTravelLogs(
	ctx context.Context,
	input ListTravelLogsInput,
) (*ListTravelLogsOutput, error) {
	if input.Page < 0 {
		return nil, errors.InvalidArgument("page cannot be negative")
	}

	query := `SELECT id,player_id,token_id,from_map_id,to_map_id,from_x,from_y,to_x,to_y,move_type,origin_url,destination_url,created_at
		FROM travel_logs`
	var args []any
	if input.PlayerID != "" {
		query += ` WHERE player_id=?`
		args = append(args, input.PlayerID)
	}
	// One extra row tells whether another page exists.
	query += ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, TravelLogPageSize+1, input.Page*TravelLogPageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list travel logs")
	}
	defer rows.Close()

	var logs []*entities.TravelLog
	for rows.Next() {
		var (
			l         entities.TravelLog
			moveType  string
			createdAt int64
		)
		if err := rows.Scan(&l.ID, &l.PlayerID, &l.TokenID, &l.FromMapID, &l.ToMapID, &l.FromX, &l.FromY,
			&l.ToX, &l.ToY, &moveType, &l.OriginURL, &l.DestinationURL, &createdAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan travel log")
		}
		l.MoveType = entities.MoveType(moveType)
		l.CreatedAt = fromMillis(createdAt)
		logs = append(logs, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read travel logs")
	}

	out := &ListTravelLogsOutput{Logs: logs}
	if len(logs) > TravelLogPageSize {
		out.Logs = logs[:TravelLogPageSize]
		out.HasMore = true
	}
	return out, nil
}

func (r *sqliteRepository) RecordPrayer(ctx context.Context, input RecordPrayerInput) (*RecordPrayerOutput, error) {
	l := input.Log
	if l == nil {
		return nil, errors.InvalidArgument("log cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", l.ID, vb)
	errors.ValidateRequired("player_id", l.PlayerID, vb)
	errors.ValidateRequired("church_id", l.ChurchID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	evidence, err := json.Marshal(l.EvidenceURLs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal evidence")
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO prayer_logs (id,player_id,church_id,evidence_json,sanity_gained,created_at) VALUES (?,?,?,?,?,?)`,
		l.ID, l.PlayerID, l.ChurchID, string(evidence), l.SanityGained, l.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return nil, insertError(err, "prayer log", l.ID)
	}

	return &RecordPrayerOutput{Log: l}, nil
}

func (r *sqliteRepository) ListPrayers(ctx context.Context, input ListPrayersInput) (*ListPrayersOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}
	limit := input.Limit
	if limit <= 0 {
		limit = TravelLogPageSize
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id,player_id,church_id,evidence_json,sanity_gained,created_at
		FROM prayer_logs WHERE player_id=? ORDER BY created_at DESC, id DESC LIMIT ?`,
		input.PlayerID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list prayers")
	}
	defer rows.Close()

	var logs []*entities.PrayerLog
	for rows.Next() {
		var (
			l         entities.PrayerLog
			evidence  string
			createdAt int64
		)
		if err := rows.Scan(&l.ID, &l.PlayerID, &l.ChurchID, &evidence, &l.SanityGained, &createdAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan prayer log")
		}
		if err := json.Unmarshal([]byte(evidence), &l.EvidenceURLs); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal evidence of %s", l.ID)
		}
		l.CreatedAt = fromMillis(createdAt)
		logs = append(logs, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read prayers")
	}

	return &ListPrayersOutput{Logs: logs}, nil
}

func insertError(err error, what, id string) error {
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return errors.AlreadyExistsf("%s %s already recorded", what, id)
	}
	return errors.Wrapf(err, "failed to record %s", what)
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
