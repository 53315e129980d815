package usecase

import (
	"context"
	"time"

	"github.com/marisanasser/nexa-contract-service/internal/domain"
	publisher "github.com/marisanasser/nexa-contract-service/internal/infrastructure/kafka"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/metrics"
	contractdto "github.com/marisanasser/nexa-contract-service/internal/usecase/dto/contract"
)

type ContractUsecase interface {
	CompleteContract(ctx context.Context, input *contractdto.CompleteContractInput) *contractdto.CompletionResult
	ReconcileApprovedCampaigns(ctx context.Context) error

	GetContractByID(contractID string) (*domain.Contract, error)
	GetContractsByCreatorID(input *contractdto.GetContractsInput) (*contractdto.ContractListOutput, error)
	GetContractsByBrandID(input *contractdto.GetContractsInput) (*contractdto.ContractListOutput, error)
	GetContractsByCampaignID(campaignID string) ([]*domain.Contract, error)
	GetActiveContractsByUserID(userID string) ([]*domain.Contract, error)
	CountContractsByStatus(userID string) (map[domain.ContractStatus]int64, error)
	GetStatsForUser(userID string) (*domain.ContractStatistics, error)
}

const defaultReleaseTimeout = 15 * time.Second

type DefaultContractUsecase struct {
	ContractRepo   domain.ContractRepository
	CampaignRepo   domain.CampaignRepository
	Payments       domain.PaymentProvider
	Publisher      *publisher.EventPublisher
	Metrics        *metrics.ContractMetrics
	ReleaseTimeout time.Duration
}

func NewDefaultContractUsecase(
	contractRepo domain.ContractRepository,
	campaignRepo domain.CampaignRepository,
	payments domain.PaymentProvider,
	eventPublisher *publisher.EventPublisher,
	contractMetrics *metrics.ContractMetrics) *DefaultContractUsecase {

	return &DefaultContractUsecase{
		ContractRepo:   contractRepo,
		CampaignRepo:   campaignRepo,
		Payments:       payments,
		Publisher:      eventPublisher,
		Metrics:        contractMetrics,
		ReleaseTimeout: defaultReleaseTimeout,
	}
}
