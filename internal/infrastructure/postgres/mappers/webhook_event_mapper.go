package mappers

import (
	"github.com/marisanasser/nexa-contract-service/internal/domain"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/postgres/models"
)

func ToDomainWebhookEvent(model *models.WebhookEventModel) *domain.WebhookEvent {
	return &domain.WebhookEvent{
		ID:              model.ID,
		ProviderEventID: model.ProviderEventID,
		EventType:       model.EventType,
		Payload:         model.Payload,
		Status:          model.Status,
		ErrorMessage:    model.ErrorMessage,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMWebhookEvent(event *domain.WebhookEvent) *models.WebhookEventModel {
	return &models.WebhookEventModel{
		ID:              event.ID,
		ProviderEventID: event.ProviderEventID,
		EventType:       event.EventType,
		Payload:         event.Payload,
		Status:          event.Status,
		ErrorMessage:    event.ErrorMessage,
		CreatedAt:       event.CreatedAt,
		UpdatedAt:       event.UpdatedAt,
	}
}
