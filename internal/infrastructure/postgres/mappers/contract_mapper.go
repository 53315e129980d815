package mappers

import (
	"github.com/marisanasser/nexa-contract-service/internal/domain"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/postgres/models"
)

func ToDomainContract(model *models.ContractModel) *domain.Contract {
	contract := &domain.Contract{
		ID:                   model.ID,
		OfferID:              model.OfferID,
		BrandID:              model.BrandID,
		CreatorID:            model.CreatorID,
		Status:               model.Status,
		WorkflowStatus:       model.WorkflowStatus,
		CreatorAmount:        model.CreatorAmount,
		StartedAt:            model.StartedAt,
		ExpectedCompletionAt: model.ExpectedCompletionAt,
		CompletedAt:          model.CompletedAt,
		CompletedBy:          model.CompletedBy,
		CompletionNotes:      model.CompletionNotes,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}

	if model.Offer.ID != "" {
		contract.Offer = ToDomainOffer(&model.Offer)
	}

	return contract
}

func ToGORMContract(contract *domain.Contract) *models.ContractModel {
	return &models.ContractModel{
		ID:                   contract.ID,
		OfferID:              contract.OfferID,
		BrandID:              contract.BrandID,
		CreatorID:            contract.CreatorID,
		Status:               contract.Status,
		WorkflowStatus:       contract.WorkflowStatus,
		CreatorAmount:        contract.CreatorAmount,
		StartedAt:            contract.StartedAt,
		ExpectedCompletionAt: contract.ExpectedCompletionAt,
		CompletedAt:          contract.CompletedAt,
		CompletedBy:          contract.CompletedBy,
		CompletionNotes:      contract.CompletionNotes,
		CreatedAt:            contract.CreatedAt,
		UpdatedAt:            contract.UpdatedAt,
	}
}

func ToDomainOffer(model *models.OfferModel) *domain.Offer {
	return &domain.Offer{
		ID:         model.ID,
		CampaignID: model.CampaignID,
		BrandID:    model.BrandID,
		CreatorID:  model.CreatorID,
		Amount:     model.Amount,
		Status:     model.Status,
		CreatedAt:  model.CreatedAt,
	}
}
