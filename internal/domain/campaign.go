package domain

import "time"

type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignApproved  CampaignStatus = "approved"
	CampaignCompleted CampaignStatus = "completed"
	CampaignCancelled CampaignStatus = "cancelled"
)

type Campaign struct {
	ID          string
	BrandID     string
	Title       string
	Status      CampaignStatus
	Budget      float64
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CampaignReadyToComplete is the cascade decision: an approved campaign with
// at least one contract completes once every contract is terminal. Cancelled
// contracts count as resolved, so an all-cancelled campaign completes too.
func CampaignReadyToComplete(campaign *Campaign, contracts []*Contract) bool {
	if campaign == nil || campaign.Status != CampaignApproved {
		return false
	}
	if len(contracts) == 0 {
		return false
	}
	for _, contract := range contracts {
		if !contract.Status.Terminal() {
			return false
		}
	}
	return true
}

type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferDeclined OfferStatus = "declined"
)

// Offer links a creator to a campaign; an accepted offer produces a contract.
type Offer struct {
	ID         string
	CampaignID string
	BrandID    string
	CreatorID  string
	Amount     float64
	Status     OfferStatus
	CreatedAt  time.Time
}
