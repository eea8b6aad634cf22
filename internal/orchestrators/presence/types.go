package presence

import (
	"github.com/KirkDiggler/rpg-atlas/internal/entities"
)

// MinPrayerEvidence is how many links a prayer must cite.
const MinPrayerEvidence = 2

// InRestZoneInput defines the request for a rest zone check
type InRestZoneInput struct {
	PlayerID string
}

// InRestZoneOutput defines the response for a rest zone check
type InRestZoneOutput struct {
	InRestZone bool
	MapID      string // Empty when the player has no token
}

// SubmitPrayerInput defines the request for praying at a church
type SubmitPrayerInput struct {
	Capability   entities.Capability
	EvidenceURLs []string
}

// SubmitPrayerOutput defines the response for praying at a church
type SubmitPrayerOutput struct {
	Gained    int
	Sanity    int
	MaxSanity int
	ChurchID  string
	Log       *entities.PrayerLog
}
