package withdrawaldto

import "github.com/marisanasser/nexa-contract-service/internal/domain"

// CreateWithdrawalOutput carries either the persisted withdrawal or the full
// list of validation violations, never both.
type CreateWithdrawalOutput struct {
	Withdrawal *domain.Withdrawal
	Violations []string
}

func (o *CreateWithdrawalOutput) Valid() bool {
	return len(o.Violations) == 0
}

type WithdrawalListOutput struct {
	Withdrawals []*domain.Withdrawal
	Total       int64
}
