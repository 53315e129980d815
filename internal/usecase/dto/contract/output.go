package contractdto

import "github.com/marisanasser/nexa-contract-service/internal/domain"

type FailureKind string

const (
	FailureInvalidState FailureKind = "invalid_state"
	FailureSettlement   FailureKind = "settlement"
)

// CompletionResult is the discriminated outcome of a completion attempt.
// Business failures come back here as values, never as errors.
type CompletionResult struct {
	Success               bool
	Failure               FailureKind
	ErrorMessage          string
	Contract              *domain.Contract
	FundsReleasedFraction float64
	CampaignCompleted     bool
}

type ContractListOutput struct {
	Contracts []*domain.Contract
	Total     int64
	Page      int64
	Limit     int64
}
