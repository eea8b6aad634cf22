// Package journal provides the append-only logs behind skill outcomes,
// roleplay travel and prayers.
package journal

//go:generate mockgen -destination=mock/mock_repository.go -package=journalmock github.com/KirkDiggler/rpg-atlas/internal/repositories/journal Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
)

// TravelLogPageSize is the number of travel logs returned per page.
const TravelLogPageSize = 50

// Repository defines the interface for journal persistence
type Repository interface {
	// RecordOutcome appends a skill outcome
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the id was used before
	RecordOutcome(ctx context.Context, input RecordOutcomeInput) (*RecordOutcomeOutput, error)

	// FindOutcome looks up the newest outcome logged under a reference code
	// Returns errors.NotFound if no outcome carries the code
	FindOutcome(ctx context.Context, input FindOutcomeInput) (*FindOutcomeOutput, error)

	// RecordTravel appends a roleplay travel log
	// Returns errors.InvalidArgument for validation failures
	RecordTravel(ctx context.Context, input RecordTravelInput) (*RecordTravelOutput, error)

	// ListTravelLogs pages through travel logs, newest first
	ListTravelLogs(ctx context.Context, input ListTravelLogsInput) (*ListTravelLogsOutput, error)

	// RecordPrayer appends a prayer log
	// Returns errors.InvalidArgument for validation failures
	RecordPrayer(ctx context.Context, input RecordPrayerInput) (*RecordPrayerOutput, error)

	// ListPrayers returns a player's prayers, newest first
	ListPrayers(ctx context.Context, input ListPrayersInput) (*ListPrayersOutput, error)

	// Close releases the underlying database
	Close() error
}

// RecordOutcomeInput defines the input for recording an outcome
type RecordOutcomeInput struct {
	Record *entities.OutcomeRecord
}

// RecordOutcomeOutput defines the output for recording an outcome
type RecordOutcomeOutput struct {
	Record *entities.OutcomeRecord
}

// FindOutcomeInput defines the input for finding an outcome
type FindOutcomeInput struct {
	Code string
}

// FindOutcomeOutput defines the output for finding an outcome
type FindOutcomeOutput struct {
	Record *entities.OutcomeRecord
}

// RecordTravelInput defines the input for recording a travel log
type RecordTravelInput struct {
	Log *entities.TravelLog
}

// RecordTravelOutput defines the output for recording a travel log
type RecordTravelOutput struct {
	Log *entities.TravelLog
}

// ListTravelLogsInput defines the input for listing travel logs
type ListTravelLogsInput struct {
	PlayerID string // Empty lists every player
	Page     int    // Zero-based
}

// ListTravelLogsOutput defines the output for listing travel logs
type ListTravelLogsOutput struct {
	Logs    []*entities.TravelLog
	HasMore bool
}

// RecordPrayerInput defines the input for recording a prayer
type RecordPrayerInput struct {
	Log *entities.PrayerLog
}

// RecordPrayerOutput defines the output for recording a prayer
type RecordPrayerOutput struct {
	Log *entities.PrayerLog
}

// ListPrayersInput defines the input for listing prayers
type ListPrayersInput struct {
	PlayerID string
	Limit    int // Zero means TravelLogPageSize
}

// ListPrayersOutput defines the output for listing prayers
type ListPrayersOutput struct {
	Logs []*entities.PrayerLog
}
