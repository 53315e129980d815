package mappers

import (
	"encoding/json"

	"github.com/marisanasser/nexa-contract-service/internal/domain"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/postgres/models"
)

func ToDomainWithdrawal(model *models.WithdrawalModel) *domain.Withdrawal {
	details := map[string]string{}
	if model.DetailsJSON != "" {
		// tolerate rows written before details were structured
		_ = json.Unmarshal([]byte(model.DetailsJSON), &details)
	}

	return &domain.Withdrawal{
		ID:          model.ID,
		CreatorID:   model.CreatorID,
		Amount:      model.Amount,
		Method:      model.Method,
		Details:     details,
		Status:      model.Status,
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func ToGORMWithdrawal(withdrawal *domain.Withdrawal) *models.WithdrawalModel {
	detailsJSON := "{}"
	if len(withdrawal.Details) > 0 {
		if raw, err := json.Marshal(withdrawal.Details); err == nil {
			detailsJSON = string(raw)
		}
	}

	return &models.WithdrawalModel{
		ID:          withdrawal.ID,
		CreatorID:   withdrawal.CreatorID,
		Amount:      withdrawal.Amount,
		Method:      withdrawal.Method,
		DetailsJSON: detailsJSON,
		Status:      withdrawal.Status,
		CreatedAt:   withdrawal.CreatedAt,
		ProcessedAt: withdrawal.ProcessedAt,
	}
}

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:           model.ID,
		UserID:       model.UserID,
		ContractID:   model.ContractID,
		WithdrawalID: model.WithdrawalID,
		Type:         model.Type,
		Amount:       model.Amount,
		CreatedAt:    model.CreatedAt,
	}
}
