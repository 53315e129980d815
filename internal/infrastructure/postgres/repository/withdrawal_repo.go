package repository

import (
	"errors"
	"fmt"

	"github.com/jaevor/go-nanoid"
	"github.com/marisanasser/nexa-contract-service/internal/domain"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/postgres/mappers"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultWithdrawalRepository struct {
	DB *gorm.DB
}

func NewDefaultWithdrawalRepository(db *gorm.DB) *DefaultWithdrawalRepository {
	return &DefaultWithdrawalRepository{DB: db}
}

func (r *DefaultWithdrawalRepository) CreateWithdrawal(withdrawal *domain.Withdrawal) error {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return err
	}

	withdrawalModel := mappers.ToGORMWithdrawal(withdrawal)

	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(withdrawalModel).Error; err != nil {
			return fmt.Errorf("creating withdrawal: %w", err)
		}

		entry := models.TransactionModel{
			ID:           idGenerator(),
			UserID:       withdrawal.CreatorID,
			WithdrawalID: withdrawal.ID,
			Type:         domain.TransactionWithdrawal,
			Amount:       withdrawal.Amount,
			CreatedAt:    withdrawal.CreatedAt,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("creating ledger entry: %w", err)
		}

		return nil
	})
}

func (r *DefaultWithdrawalRepository) GetWithdrawalByID(withdrawalID string) (*domain.Withdrawal, error) {
	var withdrawal models.WithdrawalModel
	if err := r.DB.First(&withdrawal, "id = ?", withdrawalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWithdrawalNotFound
		}
		return nil, err
	}

	return mappers.ToDomainWithdrawal(&withdrawal), nil
}

func (r *DefaultWithdrawalRepository) GetWithdrawalsByCreatorID(creatorID string, page, limit int64) ([]*domain.Withdrawal, int64, error) {
	var withdrawalModels []models.WithdrawalModel
	var total int64

	baseQuery := r.DB.Model(&models.WithdrawalModel{}).Where("creator_id = ?", creatorID)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count withdrawals: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&withdrawalModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find withdrawals: %w", err)
	}

	withdrawals := make([]*domain.Withdrawal, len(withdrawalModels))
	for i, withdrawalModel := range withdrawalModels {
		withdrawals[i] = mappers.ToDomainWithdrawal(&withdrawalModel)
	}

	return withdrawals, total, nil
}

func (r *DefaultWithdrawalRepository) UpdateWithdrawalStatus(withdrawalID string, status domain.WithdrawalStatus) error {
	result := r.DB.Model(&models.WithdrawalModel{}).
		Where("id = ?", withdrawalID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrWithdrawalNotFound
	}

	return nil
}

func (r *DefaultWithdrawalRepository) GetTransactionsByUserID(userID string, page, limit int64) ([]*domain.Transaction, int64, error) {
	var transactionModels []models.TransactionModel
	var total int64

	baseQuery := r.DB.Model(&models.TransactionModel{}).Where("user_id = ?", userID)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&transactionModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find transactions: %w", err)
	}

	transactions := make([]*domain.Transaction, len(transactionModels))
	for i, transactionModel := range transactionModels {
		transactions[i] = mappers.ToDomainTransaction(&transactionModel)
	}

	return transactions, total, nil
}
