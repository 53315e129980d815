package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/marisanasser/nexa-contract-service/internal/domain"
	publisher "github.com/marisanasser/nexa-contract-service/internal/infrastructure/kafka"
	withdrawaldto "github.com/marisanasser/nexa-contract-service/internal/usecase/dto/withdrawal"
)

// CreateWithdrawal validates the request against the payout rules and the
// creator's settled balance, then persists the withdrawal together with its
// ledger entry. A non-empty violation list is a business outcome, not an
// error; errors are reserved for storage and provider faults.
func (uc *DefaultWithdrawalUsecase) CreateWithdrawal(ctx context.Context, creatorID string, payload *withdrawaldto.CreateWithdrawalPayload) (*withdrawaldto.CreateWithdrawalOutput, error) {
	req := RequestFromPayload(creatorID, payload)

	violations := Validate(req)
	if len(violations) == 0 {
		balance, err := uc.Payments.GetCreatorBalance(ctx, creatorID)
		if err != nil {
			slog.Error("failed to fetch creator balance", "creator_id", creatorID, "error", err.Error())
			return nil, fmt.Errorf("fetching creator balance: %w", err)
		}
		if req.Amount > balance {
			violations = append(violations, "withdrawal amount exceeds available balance")
		}
	}

	if len(violations) > 0 {
		uc.recordWithdrawalRejected()
		return &withdrawaldto.CreateWithdrawalOutput{Violations: violations}, nil
	}

	withdrawal := &domain.Withdrawal{
		ID:        uuid.New().String(),
		CreatorID: creatorID,
		Amount:    req.Amount,
		Method:    req.Method,
		Details:   req.Details,
		Status:    domain.WithdrawalPending,
		CreatedAt: time.Now(),
	}

	if err := uc.WithdrawalRepo.CreateWithdrawal(withdrawal); err != nil {
		return nil, fmt.Errorf("creating withdrawal: %w", err)
	}

	uc.recordWithdrawalCreated(withdrawal)
	uc.notifyWithdrawalCreated(withdrawal)

	return &withdrawaldto.CreateWithdrawalOutput{Withdrawal: withdrawal}, nil
}

func (uc *DefaultWithdrawalUsecase) notifyWithdrawalCreated(withdrawal *domain.Withdrawal) {
	if uc.Publisher == nil {
		return
	}

	go func(event publisher.WithdrawalEvent) {
		if err := uc.Publisher.PublishWithdrawal(event); err != nil {
			slog.Error("failed to publish WithdrawalEvent", "stage", "creating",
				"withdrawal_id", event.WithdrawalID, "error", err.Error())
		}
	}(publisher.WithdrawalEvent{
		WithdrawalID: withdrawal.ID,
		CreatorID:    withdrawal.CreatorID,
		Amount:       withdrawal.Amount,
		Method:       withdrawal.Method,
		Status:       string(withdrawal.Status),
	})
}

func (uc *DefaultWithdrawalUsecase) recordWithdrawalCreated(withdrawal *domain.Withdrawal) {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.WithdrawalsCreatedTotal.WithLabelValues(withdrawal.Method).Inc()
}

func (uc *DefaultWithdrawalUsecase) recordWithdrawalRejected() {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.WithdrawalsRejectedTotal.Inc()
}
