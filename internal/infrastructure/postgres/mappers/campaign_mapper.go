package mappers

import (
	"github.com/marisanasser/nexa-contract-service/internal/domain"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/postgres/models"
)

func ToDomainCampaign(model *models.CampaignModel) *domain.Campaign {
	return &domain.Campaign{
		ID:          model.ID,
		BrandID:     model.BrandID,
		Title:       model.Title,
		Status:      model.Status,
		Budget:      model.Budget,
		CompletedAt: model.CompletedAt,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
