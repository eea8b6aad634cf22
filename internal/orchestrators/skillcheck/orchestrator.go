// Package skillcheck rolls d20 skill checks, journals them and resolves the
// reference codes players share afterwards.
package skillcheck

//go:generate mockgen -destination=mock/mock_service.go -package=skillcheckmock github.com/KirkDiggler/rpg-atlas/internal/orchestrators/skillcheck Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
	"github.com/KirkDiggler/rpg-atlas/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-atlas/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-atlas/internal/refcode"
	"github.com/KirkDiggler/rpg-atlas/internal/repositories/journal"
)

const (
	// DieSize is the die every check is rolled on.
	DieSize = 20

	MinSuccessRate = 1
	MaxSuccessRate = DieSize
)

// Service defines the interface for skill checks
type Service interface {
	// Roll rolls a d20 against the success rate and journals the result.
	// Returns errors.InvalidArgument for a rate outside 1-20
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// Grant journals a successful use awarded by a dm or admin.
	Grant(ctx context.Context, input *GrantInput) (*GrantOutput, error)

	// Resolve looks a code up. Malformed or unknown codes resolve to an
	// unknown outcome rather than an error.
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)
}

// Config holds the dependencies for the skill check orchestrator
type Config struct {
	Journal     journal.Repository
	Roller      dice.Roller // Defaults to dice.DefaultRoller
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Journal == nil {
		vb.RequiredField("Journal")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	journal journal.Repository
	roller  dice.Roller
	idGen   idgen.Generator
	clock   clock.Clock
}

// NewOrchestrator creates a new skill check orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		journal: cfg.Journal,
		roller:  roller,
		idGen:   cfg.IDGenerator,
		clock:   c,
	}, nil
}

func (o *orchestrator) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Capability.IsAnonymous() {
		return nil, errors.PermissionDenied("sign in to roll")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("skill_id", input.SkillID, vb)
	errors.ValidateRange("success_rate", input.SuccessRate, MinSuccessRate, MaxSuccessRate, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	roll, err := o.roller.Roll(DieSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll d20")
	}

	outcome := entities.OutcomeFail
	if roll >= input.SuccessRate {
		outcome = entities.OutcomeSuccess
	}

	record := &entities.OutcomeRecord{
		ID:          o.idGen.Generate(),
		PlayerID:    input.Capability.PlayerID,
		SkillID:     input.SkillID,
		SkillName:   input.SkillName,
		Kind:        entities.OutcomeKindSkill,
		Roll:        roll,
		SuccessRate: input.SuccessRate,
		Outcome:     outcome,
		Note:        input.Note,
		UsedAt:      o.clock.Now(),
	}
	if err := o.record(ctx, record); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "skill check rolled",
		"player_id", record.PlayerID,
		"skill_id", record.SkillID,
		"roll", roll,
		"success_rate", record.SuccessRate,
		"code", record.ReferenceCode)

	return &RollOutput{Record: record}, nil
}

func (o *orchestrator) Grant(ctx context.Context, input *GrantInput) (*GrantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Capability.CanManage {
		return nil, errors.PermissionDenied("only a dm or admin may grant skill uses")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("skill_id", input.SkillID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	record := &entities.OutcomeRecord{
		ID:        o.idGen.Generate(),
		PlayerID:  input.PlayerID,
		SkillID:   input.SkillID,
		SkillName: input.SkillName,
		Kind:      entities.OutcomeKindGranted,
		Outcome:   entities.OutcomeSuccess,
		Note:      input.Note,
		UsedAt:    o.clock.Now(),
	}
	if err := o.record(ctx, record); err != nil {
		return nil, err
	}

	return &GrantOutput{Record: record}, nil
}

func (o *orchestrator) record(ctx context.Context, record *entities.OutcomeRecord) error {
	code, err := refcode.Encode(record)
	if err != nil {
		return err
	}
	record.ReferenceCode = code

	if _, err := o.journal.RecordOutcome(ctx, journal.RecordOutcomeInput{Record: record}); err != nil {
		return errors.Wrap(err, "failed to journal outcome")
	}
	return nil
}

func (o *orchestrator) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	// codes are matched byte for byte; lowercase is not a valid code
	code := strings.TrimSpace(input.Code)
	if code == "" {
		return &ResolveOutput{Outcome: entities.OutcomeUnknown, Source: SourceNone}, nil
	}

	decoded := refcode.Decode(code)

	found, err := o.journal.FindOutcome(ctx, journal.FindOutcomeInput{Code: code})
	switch {
	case err == nil:
		return &ResolveOutput{
			Record:  found.Record,
			Decoded: decoded,
			Outcome: found.Record.Outcome,
			Source:  SourceJournal,
		}, nil
	case !errors.IsNotFound(err):
		slog.WarnContext(ctx, "outcome journal unavailable, decoding code only",
			"code", code,
			"error", err)
	}

	if decoded == nil {
		return &ResolveOutput{Outcome: entities.OutcomeUnknown, Source: SourceNone}, nil
	}

	return &ResolveOutput{
		Record:  decoded.Record(),
		Decoded: decoded,
		Outcome: decoded.Outcome,
		Source:  SourceCode,
	}, nil
}
