package repository

import (
	"errors"
	"fmt"

	"github.com/jaevor/go-nanoid"
	"github.com/marisanasser/nexa-contract-service/internal/domain"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/postgres/mappers"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultContractRepository struct {
	DB *gorm.DB
}

func NewDefaultContractRepository(db *gorm.DB) *DefaultContractRepository {
	return &DefaultContractRepository{DB: db}
}

func (r *DefaultContractRepository) GetContractByID(contractID string) (*domain.Contract, error) {
	var contract models.ContractModel
	if err := r.DB.Preload("Offer").First(&contract, "id = ?", contractID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrContractNotFound
		}
		return nil, err
	}

	return mappers.ToDomainContract(&contract), nil
}

func (r *DefaultContractRepository) GetContractsByCreatorID(
	creatorID string,
	page, limit int64,
	filters domain.ContractFilters,
) ([]*domain.Contract, int64, error) {
	return r.listContracts("contract_models.creator_id = ?", creatorID, page, limit, filters)
}

func (r *DefaultContractRepository) GetContractsByBrandID(
	brandID string,
	page, limit int64,
	filters domain.ContractFilters,
) ([]*domain.Contract, int64, error) {
	return r.listContracts("contract_models.brand_id = ?", brandID, page, limit, filters)
}

func (r *DefaultContractRepository) listContracts(
	ownerCondition string,
	ownerID string,
	page, limit int64,
	filters domain.ContractFilters,
) ([]*domain.Contract, int64, error) {
	var contractModels []models.ContractModel
	var total int64

	baseQuery := r.DB.Model(&models.ContractModel{}).
		Preload("Offer").
		Where(ownerCondition, ownerID)

	if len(filters.Statuses) > 0 {
		baseQuery = baseQuery.Where("contract_models.status IN (?)", filters.Statuses)
	}

	if filters.CampaignID != "" {
		baseQuery = baseQuery.
			Joins("JOIN offer_models ON offer_models.id = contract_models.offer_id").
			Where("offer_models.campaign_id = ?", filters.CampaignID)
	}

	if !filters.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("contract_models.created_at >= ?", filters.DateFrom)
	}

	if !filters.DateTo.IsZero() {
		baseQuery = baseQuery.Where("contract_models.created_at <= ?", filters.DateTo)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contracts: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order("contract_models.created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&contractModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find contracts: %w", err)
	}

	contracts := make([]*domain.Contract, len(contractModels))
	for i, contractModel := range contractModels {
		contracts[i] = mappers.ToDomainContract(&contractModel)
	}

	return contracts, total, nil
}

func (r *DefaultContractRepository) GetContractsByCampaignID(campaignID string) ([]*domain.Contract, error) {
	return campaignContracts(r.DB, campaignID)
}

func campaignContracts(tx *gorm.DB, campaignID string) ([]*domain.Contract, error) {
	var contractModels []models.ContractModel
	err := tx.Model(&models.ContractModel{}).
		Joins("JOIN offer_models ON offer_models.id = contract_models.offer_id").
		Where("offer_models.campaign_id = ?", campaignID).
		Find(&contractModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find campaign contracts: %w", err)
	}

	contracts := make([]*domain.Contract, len(contractModels))
	for i, contractModel := range contractModels {
		contracts[i] = mappers.ToDomainContract(&contractModel)
	}

	return contracts, nil
}

func (r *DefaultContractRepository) GetActiveContractsByUserID(userID string) ([]*domain.Contract, error) {
	var contractModels []models.ContractModel
	err := r.DB.Preload("Offer").
		Where("(creator_id = ? OR brand_id = ?)", userID, userID).
		Where("status NOT IN (?)", []domain.ContractStatus{domain.StatusCompleted, domain.StatusCancelled}).
		Find(&contractModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find active contracts: %w", err)
	}

	contracts := make([]*domain.Contract, len(contractModels))
	for i, contractModel := range contractModels {
		contracts[i] = mappers.ToDomainContract(&contractModel)
	}

	return contracts, nil
}

func (r *DefaultContractRepository) CountContractsByStatus(userID string) (map[domain.ContractStatus]int64, error) {
	type statusCount struct {
		Status domain.ContractStatus
		Count  int64
	}

	var rows []statusCount
	err := r.DB.Model(&models.ContractModel{}).
		Select("status, COUNT(*) as count").
		Where("creator_id = ? OR brand_id = ?", userID, userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count contracts by status: %w", err)
	}

	counts := make(map[domain.ContractStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}

func (r *DefaultContractRepository) GetContractStatistics(userID string) (*domain.ContractStatistics, error) {
	var stats domain.ContractStatistics

	baseQuery := func() *gorm.DB {
		return r.DB.
			Model(&models.ContractModel{}).
			Where("creator_id = ? OR brand_id = ?", userID, userID)
	}

	if err := baseQuery().
		Where("status NOT IN (?)", []domain.ContractStatus{domain.StatusCompleted, domain.StatusCancelled}).
		Count(&stats.ActiveContracts).Error; err != nil {
		return nil, fmt.Errorf("count active contracts: %w", err)
	}

	type completedAgg struct {
		Count    int64
		Earnings float64
	}
	var completed completedAgg
	if err := baseQuery().
		Where("status = ?", domain.StatusCompleted).
		Select("COUNT(*) as count, COALESCE(SUM(creator_amount), 0) as earnings").
		Scan(&completed).Error; err != nil {
		return nil, fmt.Errorf("completed agg: %w", err)
	}

	stats.CompletedContracts = completed.Count
	stats.TotalEarnings = completed.Earnings

	if err := baseQuery().
		Where("status = ?", domain.StatusCancelled).
		Count(&stats.CancelledContracts).Error; err != nil {
		return nil, fmt.Errorf("count cancelled contracts: %w", err)
	}

	return &stats, nil
}

func (r *DefaultContractRepository) UpdateContract(contractID string, fields map[string]interface{}) error {
	result := r.DB.Model(&models.ContractModel{}).Where("id = ?", contractID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrContractNotFound
	}

	return nil
}

// ProcessContractCompletion is the completion critical section. The contract
// row lock serializes concurrent completion attempts; the re-check under lock
// makes the loser fail with ErrContractNotCompletable instead of releasing
// twice. The ledger entry, the release call and the campaign cascade all
// commit or roll back together with the status change.
func (r *DefaultContractRepository) ProcessContractCompletion(
	contractID string,
	update domain.CompletionUpdate,
	release func(*domain.Contract) error,
) (*domain.Contract, bool, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, false, err
	}

	var updated *domain.Contract
	cascaded := false

	err = r.DB.Transaction(func(tx *gorm.DB) error {
		var contractModel models.ContractModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&contractModel, "id = ?", contractID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrContractNotFound
			}
			return err
		}

		if !contractModel.Status.Completable() {
			return domain.ErrContractNotCompletable
		}

		fields := map[string]interface{}{
			"status":           update.Status,
			"workflow_status":  update.WorkflowStatus,
			"completed_at":     update.CompletedAt,
			"completed_by":     update.CompletedBy,
			"completion_notes": update.CompletionNotes,
		}
		if err := tx.Model(&models.ContractModel{}).Where("id = ?", contractID).Updates(fields).Error; err != nil {
			return fmt.Errorf("updating contract: %w", err)
		}

		if err := tx.Preload("Offer").First(&contractModel, "id = ?", contractID).Error; err != nil {
			return err
		}
		updated = mappers.ToDomainContract(&contractModel)

		entry := models.TransactionModel{
			ID:         idGenerator(),
			UserID:     contractModel.CreatorID,
			ContractID: contractModel.ID,
			Type:       domain.TransactionRelease,
			Amount:     contractModel.CreatorAmount,
			CreatedAt:  update.CompletedAt,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("creating ledger entry: %w", err)
		}

		if release != nil {
			if err := release(updated); err != nil {
				return err
			}
		}

		done, err := completeCampaignIfSettledTx(tx, updated.CampaignID())
		if err != nil {
			return err
		}
		cascaded = done

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return updated, cascaded, nil
}
