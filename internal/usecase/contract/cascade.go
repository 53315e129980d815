package usecase

import (
	"context"
	"log/slog"

	"github.com/marisanasser/nexa-contract-service/internal/domain"
	publisher "github.com/marisanasser/nexa-contract-service/internal/infrastructure/kafka"
)

// ReconcileApprovedCampaigns re-runs the cascade check for every approved
// campaign. The per-completion cascade already holds a campaign row lock, but
// the sweep guarantees no campaign stays stuck at approved if a completion and
// its cascade ever race or a node dies between commit and notification.
func (uc *DefaultContractUsecase) ReconcileApprovedCampaigns(ctx context.Context) error {
	uc.recordReconciliationRun()

	campaignIDs, err := uc.CampaignRepo.FindApprovedCampaignIDs()
	if err != nil {
		return err
	}

	for _, campaignID := range campaignIDs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		completed, err := uc.CampaignRepo.CompleteCampaignIfSettled(campaignID)
		if err != nil {
			slog.Error("campaign reconciliation failed", "campaign_id", campaignID, "error", err.Error())
			continue
		}
		if !completed {
			continue
		}

		uc.recordCampaignCascaded()
		slog.Info("campaign completed by reconciliation sweep", "campaign_id", campaignID)

		campaign, err := uc.CampaignRepo.GetCampaignByID(campaignID)
		if err != nil {
			continue
		}
		uc.notifyCampaignCompleted(campaign)
	}

	return nil
}

func (uc *DefaultContractUsecase) notifyCampaignCompleted(campaign *domain.Campaign) {
	if uc.Publisher == nil {
		return
	}

	go func(event publisher.CampaignEvent) {
		if err := uc.Publisher.PublishCampaign(event); err != nil {
			slog.Error("failed to publish CampaignEvent", "stage", "reconciliation",
				"campaign_id", event.CampaignID, "error", err.Error())
		}
	}(publisher.CampaignEvent{
		CampaignID: campaign.ID,
		BrandID:    campaign.BrandID,
		Status:     string(domain.CampaignCompleted),
	})
}
