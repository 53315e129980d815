package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func contractWithStatus(status ContractStatus) *Contract {
	return &Contract{ID: "contract-" + string(status), Status: status}
}

func TestCampaignReadyToComplete(t *testing.T) {
	approved := &Campaign{ID: "campaign-1", Status: CampaignApproved}

	testCases := []struct {
		name      string
		campaign  *Campaign
		contracts []*Contract
		want      bool
	}{
		{
			name:     "all contracts completed",
			campaign: approved,
			contracts: []*Contract{
				contractWithStatus(StatusCompleted),
				contractWithStatus(StatusCompleted),
			},
			want: true,
		},
		{
			name:     "one contract still in progress",
			campaign: approved,
			contracts: []*Contract{
				contractWithStatus(StatusCompleted),
				contractWithStatus(StatusInProgress),
			},
			want: false,
		},
		{
			name:     "mix of completed and cancelled",
			campaign: approved,
			contracts: []*Contract{
				contractWithStatus(StatusCompleted),
				contractWithStatus(StatusCancelled),
			},
			want: true,
		},
		{
			name:     "all contracts cancelled",
			campaign: approved,
			contracts: []*Contract{
				contractWithStatus(StatusCancelled),
				contractWithStatus(StatusCancelled),
			},
			want: true,
		},
		{
			name:      "no contracts at all",
			campaign:  approved,
			contracts: nil,
			want:      false,
		},
		{
			name:     "disputed contract blocks completion",
			campaign: approved,
			contracts: []*Contract{
				contractWithStatus(StatusCompleted),
				contractWithStatus(StatusDisputed),
			},
			want: false,
		},
		{
			name:      "draft campaign never completes",
			campaign:  &Campaign{ID: "campaign-2", Status: CampaignDraft},
			contracts: []*Contract{contractWithStatus(StatusCompleted)},
			want:      false,
		},
		{
			name:      "already completed campaign",
			campaign:  &Campaign{ID: "campaign-3", Status: CampaignCompleted},
			contracts: []*Contract{contractWithStatus(StatusCompleted)},
			want:      false,
		},
		{
			name:      "nil campaign",
			campaign:  nil,
			contracts: []*Contract{contractWithStatus(StatusCompleted)},
			want:      false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CampaignReadyToComplete(tc.campaign, tc.contracts))
		})
	}
}

func TestContractStatusPredicates(t *testing.T) {
	completable := []ContractStatus{StatusInProgress, StatusPendingReview, StatusPendingCompletion, StatusActive}
	for _, status := range completable {
		assert.True(t, status.Completable(), "status %q should be completable", status)
		assert.False(t, status.Terminal(), "status %q should not be terminal", status)
	}

	assert.False(t, StatusPending.Completable())
	assert.False(t, StatusCompleted.Completable())
	assert.False(t, StatusCancelled.Completable())
	assert.False(t, StatusDisputed.Completable())

	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusDisputed.Terminal())
}

func TestContractCampaignID(t *testing.T) {
	withOffer := &Contract{Offer: &Offer{CampaignID: "campaign-1"}}
	assert.Equal(t, "campaign-1", withOffer.CampaignID())

	withoutOffer := &Contract{}
	assert.Equal(t, "", withoutOffer.CampaignID())
}
