package domain

type WithdrawalRepository interface {
	// CreateWithdrawal persists the withdrawal together with its ledger
	// Transaction in one database transaction.
	CreateWithdrawal(withdrawal *Withdrawal) error
	GetWithdrawalByID(withdrawalID string) (*Withdrawal, error)
	GetWithdrawalsByCreatorID(creatorID string, page, limit int64) ([]*Withdrawal, int64, error)
	UpdateWithdrawalStatus(withdrawalID string, status WithdrawalStatus) error
	GetTransactionsByUserID(userID string, page, limit int64) ([]*Transaction, int64, error)
}
