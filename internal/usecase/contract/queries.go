package usecase

import (
	"github.com/marisanasser/nexa-contract-service/internal/domain"
	contractdto "github.com/marisanasser/nexa-contract-service/internal/usecase/dto/contract"
)

func (uc *DefaultContractUsecase) GetContractByID(contractID string) (*domain.Contract, error) {
	return uc.ContractRepo.GetContractByID(contractID)
}

func (uc *DefaultContractUsecase) GetContractsByCreatorID(input *contractdto.GetContractsInput) (*contractdto.ContractListOutput, error) {
	page, limit := normalizePagination(input.Page, input.Limit)

	contracts, total, err := uc.ContractRepo.GetContractsByCreatorID(input.UserID, page, limit, input.Filters)
	if err != nil {
		return nil, err
	}

	return &contractdto.ContractListOutput{
		Contracts: contracts,
		Total:     total,
		Page:      page,
		Limit:     limit,
	}, nil
}

func (uc *DefaultContractUsecase) GetContractsByBrandID(input *contractdto.GetContractsInput) (*contractdto.ContractListOutput, error) {
	page, limit := normalizePagination(input.Page, input.Limit)

	contracts, total, err := uc.ContractRepo.GetContractsByBrandID(input.UserID, page, limit, input.Filters)
	if err != nil {
		return nil, err
	}

	return &contractdto.ContractListOutput{
		Contracts: contracts,
		Total:     total,
		Page:      page,
		Limit:     limit,
	}, nil
}

func (uc *DefaultContractUsecase) GetContractsByCampaignID(campaignID string) ([]*domain.Contract, error) {
	return uc.ContractRepo.GetContractsByCampaignID(campaignID)
}

func (uc *DefaultContractUsecase) GetActiveContractsByUserID(userID string) ([]*domain.Contract, error) {
	return uc.ContractRepo.GetActiveContractsByUserID(userID)
}

func (uc *DefaultContractUsecase) CountContractsByStatus(userID string) (map[domain.ContractStatus]int64, error) {
	return uc.ContractRepo.CountContractsByStatus(userID)
}

func (uc *DefaultContractUsecase) GetStatsForUser(userID string) (*domain.ContractStatistics, error) {
	return uc.ContractRepo.GetContractStatistics(userID)
}

func normalizePagination(page, limit int64) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}
	return page, limit
}
