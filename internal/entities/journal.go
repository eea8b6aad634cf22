package entities

import (
	"time"
)

// OutcomeKind is the reference code prefix of an outcome
type OutcomeKind string

const (
	OutcomeKindSkill   OutcomeKind = "SKL" // Rolled skill check
	OutcomeKindGranted OutcomeKind = "GS"  // Granted skill use
)

// Outcome is the tri-state result of a check.
type Outcome string

const (
	OutcomeUnknown Outcome = "unknown"
	OutcomeSuccess Outcome = "success"
	OutcomeFail    Outcome = "fail"
)

// OutcomeRecord is a logged skill use.
type OutcomeRecord struct {
	ID            string      `json:"id"`
	PlayerID      string      `json:"player_id"`
	SkillID       string      `json:"skill_id"`
	SkillName     string      `json:"skill_name,omitempty"`
	Kind          OutcomeKind `json:"kind"`
	Roll          int         `json:"roll"`
	SuccessRate   int         `json:"success_rate"`
	Outcome       Outcome     `json:"outcome"`
	Note          string      `json:"note,omitempty"`
	ReferenceCode string      `json:"reference_code"`
	UsedAt        time.Time   `json:"used_at"`
}

// MoveType classifies a roleplay travel log entry
type MoveType string

const (
	MoveTypeSameMap    MoveType = "same_map"
	MoveTypeCrossMap   MoveType = "cross_map"
	MoveTypeFirstEntry MoveType = "first_entry"
)

// TravelLog records a roleplay move, backed by evidence links instead of a cost.
type TravelLog struct {
	ID             string    `json:"id"`
	PlayerID       string    `json:"player_id"`
	TokenID        string    `json:"token_id"`
	FromMapID      string    `json:"from_map_id,omitempty"`
	ToMapID        string    `json:"to_map_id"`
	FromX          float64   `json:"from_x"`
	FromY          float64   `json:"from_y"`
	ToX            float64   `json:"to_x"`
	ToY            float64   `json:"to_y"`
	MoveType       MoveType  `json:"move_type"`
	OriginURL      string    `json:"origin_url"`
	DestinationURL string    `json:"destination_url"`
	CreatedAt      time.Time `json:"created_at"`
}

// PrayerLog records a prayer at a church.
type PrayerLog struct {
	ID           string    `json:"id"`
	PlayerID     string    `json:"player_id"`
	ChurchID     string    `json:"church_id"`
	EvidenceURLs []string  `json:"evidence_urls"`
	SanityGained int       `json:"sanity_gained"`
	CreatedAt    time.Time `json:"created_at"`
}
