package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marisanasser/nexa-contract-service/internal/domain"
)

func TestReconcileApprovedCampaigns(t *testing.T) {
	campaignRepo := newFakeCampaignRepo()

	// settled: approved with every contract terminal
	campaignRepo.campaigns["campaign-settled"] = &domain.Campaign{ID: "campaign-settled", Status: domain.CampaignApproved}
	campaignRepo.contracts["campaign-settled"] = []*domain.Contract{
		contractInStatus(domain.StatusCompleted),
		contractInStatus(domain.StatusCancelled),
	}

	// open: approved with work still running
	campaignRepo.campaigns["campaign-open"] = &domain.Campaign{ID: "campaign-open", Status: domain.CampaignApproved}
	campaignRepo.contracts["campaign-open"] = []*domain.Contract{
		contractInStatus(domain.StatusInProgress),
	}

	// empty: approved but no contracts yet
	campaignRepo.campaigns["campaign-empty"] = &domain.Campaign{ID: "campaign-empty", Status: domain.CampaignApproved}

	uc := NewDefaultContractUsecase(newFakeContractRepo(nil), campaignRepo, &fakePayments{}, nil, nil)

	err := uc.ReconcileApprovedCampaigns(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"campaign-settled"}, campaignRepo.completed)
	assert.Equal(t, domain.CampaignCompleted, campaignRepo.campaigns["campaign-settled"].Status)
	assert.Equal(t, domain.CampaignApproved, campaignRepo.campaigns["campaign-open"].Status)
	assert.Equal(t, domain.CampaignApproved, campaignRepo.campaigns["campaign-empty"].Status)
}

func TestReconcileApprovedCampaigns_Idempotent(t *testing.T) {
	campaignRepo := newFakeCampaignRepo()
	campaignRepo.campaigns["campaign-1"] = &domain.Campaign{ID: "campaign-1", Status: domain.CampaignApproved}
	campaignRepo.contracts["campaign-1"] = []*domain.Contract{contractInStatus(domain.StatusCompleted)}

	uc := NewDefaultContractUsecase(newFakeContractRepo(nil), campaignRepo, &fakePayments{}, nil, nil)

	require.NoError(t, uc.ReconcileApprovedCampaigns(context.Background()))
	require.NoError(t, uc.ReconcileApprovedCampaigns(context.Background()))

	assert.Equal(t, []string{"campaign-1"}, campaignRepo.completed, "a second sweep must not complete the campaign again")
}

func TestReconcileApprovedCampaigns_StopsOnCancelledContext(t *testing.T) {
	campaignRepo := newFakeCampaignRepo()
	campaignRepo.campaigns["campaign-1"] = &domain.Campaign{ID: "campaign-1", Status: domain.CampaignApproved}
	campaignRepo.contracts["campaign-1"] = []*domain.Contract{contractInStatus(domain.StatusCompleted)}

	uc := NewDefaultContractUsecase(newFakeContractRepo(nil), campaignRepo, &fakePayments{}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := uc.ReconcileApprovedCampaigns(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, campaignRepo.completed)
}

func contractInStatus(status domain.ContractStatus) *domain.Contract {
	contract := activeContract("contract-" + string(status))
	contract.Status = status
	return contract
}
