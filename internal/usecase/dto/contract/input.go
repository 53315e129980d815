package contractdto

import "github.com/marisanasser/nexa-contract-service/internal/domain"

type CompleteContractInput struct {
	ContractID  string
	CompletedBy string
	Notes       string
}

type GetContractsInput struct {
	UserID  string
	Page    int64
	Limit   int64
	Filters domain.ContractFilters
}
