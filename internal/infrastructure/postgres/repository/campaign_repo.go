package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/marisanasser/nexa-contract-service/internal/domain"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/postgres/mappers"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultCampaignRepository struct {
	DB *gorm.DB
}

func NewDefaultCampaignRepository(db *gorm.DB) *DefaultCampaignRepository {
	return &DefaultCampaignRepository{DB: db}
}

func (r *DefaultCampaignRepository) GetCampaignByID(campaignID string) (*domain.Campaign, error) {
	var campaign models.CampaignModel
	if err := r.DB.First(&campaign, "id = ?", campaignID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, err
	}

	return mappers.ToDomainCampaign(&campaign), nil
}

func (r *DefaultCampaignRepository) CompleteCampaignIfSettled(campaignID string) (bool, error) {
	completed := false

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		done, err := completeCampaignIfSettledTx(tx, campaignID)
		if err != nil {
			return err
		}
		completed = done
		return nil
	})
	if err != nil {
		return false, err
	}

	return completed, nil
}

func (r *DefaultCampaignRepository) FindApprovedCampaignIDs() ([]string, error) {
	var ids []string
	err := r.DB.Model(&models.CampaignModel{}).
		Where("status = ?", domain.CampaignApproved).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find approved campaigns: %w", err)
	}

	return ids, nil
}

// completeCampaignIfSettledTx runs the cascade check inside the caller's
// transaction. The campaign row lock is what closes the race between two
// contracts of the same campaign completing at nearly the same time: the
// second scan waits for the first to commit and therefore sees its terminal
// status.
func completeCampaignIfSettledTx(tx *gorm.DB, campaignID string) (bool, error) {
	if campaignID == "" {
		return false, nil
	}

	var campaignModel models.CampaignModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&campaignModel, "id = ?", campaignID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if campaignModel.Status != domain.CampaignApproved {
		return false, nil
	}

	contracts, err := campaignContracts(tx, campaignID)
	if err != nil {
		return false, err
	}

	if !domain.CampaignReadyToComplete(mappers.ToDomainCampaign(&campaignModel), contracts) {
		return false, nil
	}

	now := time.Now()
	err = tx.Model(&models.CampaignModel{}).
		Where("id = ?", campaignID).
		Updates(map[string]interface{}{
			"status":       domain.CampaignCompleted,
			"completed_at": now,
		}).Error
	if err != nil {
		return false, fmt.Errorf("completing campaign: %w", err)
	}

	return true, nil
}
