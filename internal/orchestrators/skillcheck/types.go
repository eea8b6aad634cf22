package skillcheck

import (
	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/refcode"
)

// Source says where a resolved outcome came from.
type Source string

const (
	SourceJournal Source = "journal" // Full record from the outcome log
	SourceCode    Source = "code"    // Degraded; only what the code itself carries
	SourceNone    Source = "none"
)

// RollInput defines the request for rolling a skill check
type RollInput struct {
	Capability  entities.Capability
	SkillID     string
	SkillName   string
	SuccessRate int // Target on a d20; the roll must meet or beat it
	Note        string
}

// RollOutput defines the response for rolling a skill check
type RollOutput struct {
	Record *entities.OutcomeRecord
}

// GrantInput defines the request for granting a skill use without a roll
type GrantInput struct {
	Capability entities.Capability
	PlayerID   string
	SkillID    string
	SkillName  string
	Note       string
}

// GrantOutput defines the response for granting a skill use
type GrantOutput struct {
	Record *entities.OutcomeRecord
}

// ResolveInput defines the request for looking up a reference code
type ResolveInput struct {
	Code string
}

// ResolveOutput defines the response for looking up a reference code.
// Outcome is always set; Record is nil when nothing could be recovered.
type ResolveOutput struct {
	Record  *entities.OutcomeRecord
	Decoded *refcode.Decoded
	Outcome entities.Outcome
	Source  Source
}
