package usecase

import (
	"time"

	"github.com/marisanasser/nexa-contract-service/internal/domain"
)

func (uc *DefaultContractUsecase) recordContractCompleted(contract *domain.Contract, elapsed time.Duration) {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.ContractsCompletedTotal.WithLabelValues(contract.BrandID).Inc()
	uc.Metrics.ContractsCompletedAmountTotal.WithLabelValues(contract.BrandID).Add(contract.CreatorAmount)
	uc.Metrics.CompletionDuration.Observe(elapsed.Seconds())
}

func (uc *DefaultContractUsecase) recordCompletionRejected(contract *domain.Contract) {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.CompletionRejectedTotal.WithLabelValues(string(contract.Status)).Inc()
}

func (uc *DefaultContractUsecase) recordSettlementFailure(contract *domain.Contract) {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.SettlementFailuresTotal.WithLabelValues(contract.BrandID).Inc()
}

func (uc *DefaultContractUsecase) recordCampaignCascaded() {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.CampaignsCascadedTotal.Inc()
}

func (uc *DefaultContractUsecase) recordReconciliationRun() {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.ReconciliationRunsTotal.Inc()
}
