package domain

import "time"

type ContractStatus string

const (
	StatusPending           ContractStatus = "pending"
	StatusInProgress        ContractStatus = "in_progress"
	StatusPendingReview     ContractStatus = "pending_review"
	StatusPendingCompletion ContractStatus = "pending_completion"
	StatusActive            ContractStatus = "active"
	StatusCompleted         ContractStatus = "completed"
	StatusCancelled         ContractStatus = "cancelled"
	StatusDisputed          ContractStatus = "disputed"
)

type WorkflowStatus string

const (
	WorkflowInProgress       WorkflowStatus = "in_progress"
	WorkflowPaymentAvailable WorkflowStatus = "payment_available"
	WorkflowPaymentWithdrawn WorkflowStatus = "payment_withdrawn"
)

// completableStatuses - statuses a contract may be completed from
var completableStatuses = map[ContractStatus]bool{
	StatusInProgress:        true,
	StatusPendingReview:     true,
	StatusPendingCompletion: true,
	StatusActive:            true,
}

// terminalStatuses - the contract will never change status again
var terminalStatuses = map[ContractStatus]bool{
	StatusCompleted: true,
	StatusCancelled: true,
}

func (s ContractStatus) Completable() bool {
	return completableStatuses[s]
}

func (s ContractStatus) Terminal() bool {
	return terminalStatuses[s]
}

type Contract struct {
	ID                   string
	OfferID              string
	BrandID              string
	CreatorID            string
	Status               ContractStatus
	WorkflowStatus       WorkflowStatus
	CreatorAmount        float64
	StartedAt            time.Time
	ExpectedCompletionAt time.Time
	CompletedAt          *time.Time
	CompletedBy          string
	CompletionNotes      string
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Offer                *Offer
}

// CampaignID is resolved through the offer the contract was accepted from.
func (c *Contract) CampaignID() string {
	if c.Offer == nil {
		return ""
	}
	return c.Offer.CampaignID
}

type ContractFilters struct {
	Statuses   []ContractStatus
	CampaignID string
	DateFrom   time.Time
	DateTo     time.Time
}

type ContractStatistics struct {
	ActiveContracts    int64
	CompletedContracts int64
	CancelledContracts int64
	TotalEarnings      float64
}

// CompletionUpdate - fields written when a contract is completed
type CompletionUpdate struct {
	Status          ContractStatus
	WorkflowStatus  WorkflowStatus
	CompletedAt     time.Time
	CompletedBy     string
	CompletionNotes string
}
