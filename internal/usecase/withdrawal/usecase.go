package usecase

import (
	"context"

	"github.com/marisanasser/nexa-contract-service/internal/domain"
	publisher "github.com/marisanasser/nexa-contract-service/internal/infrastructure/kafka"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/metrics"
	withdrawaldto "github.com/marisanasser/nexa-contract-service/internal/usecase/dto/withdrawal"
)

type WithdrawalUsecase interface {
	CreateWithdrawal(ctx context.Context, creatorID string, payload *withdrawaldto.CreateWithdrawalPayload) (*withdrawaldto.CreateWithdrawalOutput, error)
	GetWithdrawalsByCreatorID(creatorID string, page, limit int64) (*withdrawaldto.WithdrawalListOutput, error)
	GetTransactionsByUserID(userID string, page, limit int64) ([]*domain.Transaction, int64, error)
}

type DefaultWithdrawalUsecase struct {
	WithdrawalRepo domain.WithdrawalRepository
	Payments       domain.PaymentProvider
	Publisher      *publisher.EventPublisher
	Metrics        *metrics.ContractMetrics
}

func NewDefaultWithdrawalUsecase(
	withdrawalRepo domain.WithdrawalRepository,
	payments domain.PaymentProvider,
	eventPublisher *publisher.EventPublisher,
	contractMetrics *metrics.ContractMetrics) *DefaultWithdrawalUsecase {

	return &DefaultWithdrawalUsecase{
		WithdrawalRepo: withdrawalRepo,
		Payments:       payments,
		Publisher:      eventPublisher,
		Metrics:        contractMetrics,
	}
}

func (uc *DefaultWithdrawalUsecase) GetWithdrawalsByCreatorID(creatorID string, page, limit int64) (*withdrawaldto.WithdrawalListOutput, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	withdrawals, total, err := uc.WithdrawalRepo.GetWithdrawalsByCreatorID(creatorID, page, limit)
	if err != nil {
		return nil, err
	}

	return &withdrawaldto.WithdrawalListOutput{
		Withdrawals: withdrawals,
		Total:       total,
	}, nil
}

func (uc *DefaultWithdrawalUsecase) GetTransactionsByUserID(userID string, page, limit int64) ([]*domain.Transaction, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	return uc.WithdrawalRepo.GetTransactionsByUserID(userID, page, limit)
}
