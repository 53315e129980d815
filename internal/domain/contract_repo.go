package domain

import "errors"

// ErrContractNotCompletable is returned by the completion transaction when the
// row re-checked under lock is no longer in a completable status.
var ErrContractNotCompletable = errors.New("contract status is not completable")

// ContractRepository is the query/update gateway over contracts. Every write
// goes through UpdateContract or ProcessContractCompletion, so all mutations
// are observable at a single interception point.
type ContractRepository interface {
	GetContractByID(contractID string) (*Contract, error)
	GetContractsByCreatorID(creatorID string, page, limit int64, filters ContractFilters) ([]*Contract, int64, error)
	GetContractsByBrandID(brandID string, page, limit int64, filters ContractFilters) ([]*Contract, int64, error)
	GetContractsByCampaignID(campaignID string) ([]*Contract, error)
	GetActiveContractsByUserID(userID string) ([]*Contract, error)
	CountContractsByStatus(userID string) (map[ContractStatus]int64, error)
	GetContractStatistics(userID string) (*ContractStatistics, error)

	UpdateContract(contractID string, fields map[string]interface{}) error

	// ProcessContractCompletion runs the completion critical section in one
	// database transaction: lock the contract row, re-check the completable
	// guard, apply the update, write the escrow-release ledger entry, call
	// release, then run the campaign cascade under a campaign row lock. A
	// release error rolls the whole transaction back. Returns the updated
	// contract and whether the parent campaign was cascade-completed.
	ProcessContractCompletion(contractID string, update CompletionUpdate, release func(*Contract) error) (*Contract, bool, error)
}

// CampaignRepository covers the campaign side of the cascade rule.
type CampaignRepository interface {
	GetCampaignByID(campaignID string) (*Campaign, error)

	// CompleteCampaignIfSettled re-runs the cascade check for one campaign:
	// locks the row, and if the campaign is still approved and every contract
	// of its offers is terminal (and there is at least one), marks it
	// completed. Idempotent, safe to call from the reconciliation sweep.
	CompleteCampaignIfSettled(campaignID string) (bool, error)

	FindApprovedCampaignIDs() ([]string, error)
}
