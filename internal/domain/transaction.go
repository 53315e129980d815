package domain

import "time"

type TransactionType string

const (
	TransactionRelease    TransactionType = "escrow_release"
	TransactionWithdrawal TransactionType = "withdrawal"
)

// Transaction is the durable ledger record of funds moving. It is always
// created in the same database transaction as the state change it documents.
type Transaction struct {
	ID           string
	UserID       string
	ContractID   string
	WithdrawalID string
	Type         TransactionType
	Amount       float64
	CreatedAt    time.Time
}
