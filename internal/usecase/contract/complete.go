package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/marisanasser/nexa-contract-service/internal/domain"
	publisher "github.com/marisanasser/nexa-contract-service/internal/infrastructure/kafka"
	contractdto "github.com/marisanasser/nexa-contract-service/internal/usecase/dto/contract"
)

// CompleteContract drives the whole completion transaction: status guard,
// atomic contract update + escrow release + campaign cascade, then best-effort
// notifications. Business failures come back as a result value; only the
// notification stage is allowed to fail silently.
func (uc *DefaultContractUsecase) CompleteContract(ctx context.Context, input *contractdto.CompleteContractInput) *contractdto.CompletionResult {
	started := time.Now()

	contract, err := uc.ContractRepo.GetContractByID(input.ContractID)
	if err != nil {
		if errors.Is(err, domain.ErrContractNotFound) {
			return invalidStateResult(nil, "contract not found")
		}
		slog.Error("failed to load contract for completion",
			"contract_id", input.ContractID, "completed_by", input.CompletedBy, "error", err.Error())
		return settlementResult(nil, err.Error())
	}

	if !contract.Status.Completable() {
		uc.recordCompletionRejected(contract)
		return invalidStateResult(contract,
			fmt.Sprintf("contract cannot be completed from status %q", contract.Status))
	}

	update := domain.CompletionUpdate{
		Status:          domain.StatusCompleted,
		WorkflowStatus:  domain.WorkflowPaymentAvailable,
		CompletedAt:     time.Now(),
		CompletedBy:     input.CompletedBy,
		CompletionNotes: input.Notes,
	}

	release := func(locked *domain.Contract) error {
		releaseCtx, cancel := context.WithTimeout(ctx, uc.releaseTimeout())
		defer cancel()
		return uc.Payments.ReleasePaymentToCreator(releaseCtx, locked)
	}

	updated, campaignCompleted, err := uc.ContractRepo.ProcessContractCompletion(input.ContractID, update, release)
	if err != nil {
		if errors.Is(err, domain.ErrContractNotCompletable) {
			// lost the race to another completion attempt
			uc.recordCompletionRejected(contract)
			return invalidStateResult(contract,
				fmt.Sprintf("contract cannot be completed from status %q", contract.Status))
		}
		slog.Error("contract completion rolled back",
			"contract_id", input.ContractID, "completed_by", input.CompletedBy, "error", err.Error())
		uc.recordSettlementFailure(contract)
		return settlementResult(contract, err.Error())
	}

	uc.recordContractCompleted(updated, time.Since(started))
	uc.notifyContractCompleted(updated, campaignCompleted)

	return &contractdto.CompletionResult{
		Success:               true,
		Contract:              updated,
		FundsReleasedFraction: 1.0,
		CampaignCompleted:     campaignCompleted,
	}
}

// notifyContractCompleted publishes contract and campaign events. Failures are
// logged and swallowed: the transaction is already committed and the caller's
// result must not change.
func (uc *DefaultContractUsecase) notifyContractCompleted(contract *domain.Contract, campaignCompleted bool) {
	if uc.Publisher == nil {
		return
	}

	go func(event publisher.ContractEvent) {
		if err := uc.Publisher.PublishContract(event); err != nil {
			slog.Error("failed to publish ContractEvent", "stage", "completion",
				"contract_id", event.ContractID, "error", err.Error())
		}
	}(publisher.ContractEvent{
		ContractID: contract.ID,
		CampaignID: contract.CampaignID(),
		CreatorID:  contract.CreatorID,
		BrandID:    contract.BrandID,
		Status:     string(contract.Status),
		Amount:     contract.CreatorAmount,
	})

	if campaignCompleted {
		go func(event publisher.CampaignEvent) {
			if err := uc.Publisher.PublishCampaign(event); err != nil {
				slog.Error("failed to publish CampaignEvent", "stage", "cascade",
					"campaign_id", event.CampaignID, "error", err.Error())
			}
		}(publisher.CampaignEvent{
			CampaignID: contract.CampaignID(),
			BrandID:    contract.BrandID,
			Status:     string(domain.CampaignCompleted),
		})
	}
}

func (uc *DefaultContractUsecase) releaseTimeout() time.Duration {
	if uc.ReleaseTimeout > 0 {
		return uc.ReleaseTimeout
	}
	return defaultReleaseTimeout
}

func invalidStateResult(contract *domain.Contract, message string) *contractdto.CompletionResult {
	return &contractdto.CompletionResult{
		Failure:      contractdto.FailureInvalidState,
		ErrorMessage: message,
		Contract:     contract,
	}
}

func settlementResult(contract *domain.Contract, message string) *contractdto.CompletionResult {
	return &contractdto.CompletionResult{
		Failure:      contractdto.FailureSettlement,
		ErrorMessage: message,
		Contract:     contract,
	}
}
