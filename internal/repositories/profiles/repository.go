// Package profiles provides player profile persistence: display data,
// spendable balances and the progression facts travel rules read.
package profiles

//go:generate mockgen -destination=mock/mock_repository.go -package=profilesmock github.com/KirkDiggler/rpg-atlas/internal/repositories/profiles Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/travel"
)

// Repository defines the interface for profile persistence
type Repository interface {
	// Get retrieves a profile
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the profile doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces a profile
	// Returns errors.InvalidArgument for validation failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// ListAll returns every profile ordered by display name
	ListAll(ctx context.Context, input ListAllInput) (*ListAllOutput, error)

	// Spend deducts a move cost from the named balance
	// Returns errors.NotFound if the profile doesn't exist
	// Returns errors.FailedPrecondition if the balance is short
	// Returns errors.Aborted if concurrent writers kept conflicting
	Spend(ctx context.Context, input SpendInput) (*SpendOutput, error)

	// Refund returns a spent amount, capped at the balance's maximum
	// Returns errors.NotFound if the profile doesn't exist
	Refund(ctx context.Context, input RefundInput) (*RefundOutput, error)

	// RestoreSanity adds sanity, capped at the profile's maximum
	// Returns errors.NotFound if the profile doesn't exist
	// Returns errors.FailedPrecondition if sanity is already full
	RestoreSanity(ctx context.Context, input RestoreSanityInput) (*RestoreSanityOutput, error)

	// Summaries resolves display metadata for many players; unknown ids are
	// left out of the result
	Summaries(ctx context.Context, input SummariesInput) (*SummariesOutput, error)
}

// GetInput defines the input for getting a profile
type GetInput struct {
	PlayerID string
}

// GetOutput defines the output for getting a profile
type GetOutput struct {
	Profile *entities.Profile
}

// SaveInput defines the input for saving a profile
type SaveInput struct {
	Profile *entities.Profile
}

// SaveOutput defines the output for saving a profile
type SaveOutput struct {
	Profile *entities.Profile
}

// ListAllInput defines the input for listing profiles
type ListAllInput struct{}

// ListAllOutput defines the output for listing profiles
type ListAllOutput struct {
	Profiles []*entities.Profile
}

// SpendInput defines the input for spending a balance
type SpendInput struct {
	PlayerID string
	Resource travel.Resource
	Amount   int
}

// SpendOutput defines the output for spending a balance
type SpendOutput struct {
	Profile   *entities.Profile
	Remaining int
}

// RefundInput defines the input for refunding a balance
type RefundInput struct {
	PlayerID string
	Resource travel.Resource
	Amount   int
}

// RefundOutput defines the output for refunding a balance
type RefundOutput struct {
	Profile *entities.Profile
}

// RestoreSanityInput defines the input for restoring sanity
type RestoreSanityInput struct {
	PlayerID string
	Amount   int
}

// RestoreSanityOutput defines the output for restoring sanity
type RestoreSanityOutput struct {
	Profile *entities.Profile
	Gained  int
}

// SummariesInput defines the input for resolving display metadata
type SummariesInput struct {
	PlayerIDs []string
}

// SummariesOutput defines the output for resolving display metadata
type SummariesOutput struct {
	Summaries map[string]*entities.PlayerSummary
}
