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

type DefaultWebhookEventRepository struct {
	DB *gorm.DB
}

func NewDefaultWebhookEventRepository(db *gorm.DB) *DefaultWebhookEventRepository {
	return &DefaultWebhookEventRepository{DB: db}
}

// CreateIfNew relies on the unique index on provider_event_id: the insert is
// attempted with ON CONFLICT DO NOTHING, so under concurrent deliveries of
// the same event exactly one caller observes a new row.
func (r *DefaultWebhookEventRepository) CreateIfNew(event *domain.WebhookEvent) (*domain.WebhookEvent, bool, error) {
	eventModel := mappers.ToGORMWebhookEvent(event)

	result := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "provider_event_id"}},
		DoNothing: true,
	}).Create(eventModel)
	if result.Error != nil {
		return nil, false, fmt.Errorf("creating webhook event: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		existing, err := r.GetByProviderEventID(event.ProviderEventID)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	stored, err := r.GetByProviderEventID(event.ProviderEventID)
	if err != nil {
		return nil, false, err
	}

	return stored, true, nil
}

func (r *DefaultWebhookEventRepository) GetByProviderEventID(providerEventID string) (*domain.WebhookEvent, error) {
	var eventModel models.WebhookEventModel
	if err := r.DB.First(&eventModel, "provider_event_id = ?", providerEventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWebhookEventNotFound
		}
		return nil, err
	}

	return mappers.ToDomainWebhookEvent(&eventModel), nil
}

func (r *DefaultWebhookEventRepository) UpdateStatus(providerEventID string, status domain.WebhookEventStatus, errorMessage string) error {
	err := r.DB.Model(&models.WebhookEventModel{}).
		Where("provider_event_id = ?", providerEventID).
		Updates(map[string]interface{}{
			"status":        status,
			"error_message": errorMessage,
		}).Error
	if err != nil {
		return fmt.Errorf("updating webhook event status: %w", err)
	}

	// zero rows affected means the event was never recorded; a status update
	// must not create it
	return nil
}

func (r *DefaultWebhookEventRepository) FindStaleReceived(olderThan time.Time) ([]*domain.WebhookEvent, error) {
	var eventModels []models.WebhookEventModel
	err := r.DB.
		Where("status = ?", domain.WebhookReceived).
		Where("created_at < ?", olderThan).
		Find(&eventModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find stale webhook events: %w", err)
	}

	events := make([]*domain.WebhookEvent, len(eventModels))
	for i, eventModel := range eventModels {
		events[i] = mappers.ToDomainWebhookEvent(&eventModel)
	}

	return events, nil
}
