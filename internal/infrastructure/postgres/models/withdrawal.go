package models

import (
	"time"

	"github.com/marisanasser/nexa-contract-service/internal/domain"
)

type WithdrawalModel struct {
	ID          string                  `gorm:"primaryKey;type:uuid"`
	CreatorID   string                  `gorm:"type:uuid;index"`
	Amount      float64
	Method      string
	DetailsJSON string                  `gorm:"type:jsonb"`
	Status      domain.WithdrawalStatus `gorm:"index"`
	CreatedAt   time.Time               `gorm:"index"`
	ProcessedAt *time.Time
}

// TransactionModel rows are only ever written inside the same transaction as
// the contract completion or withdrawal they document.
type TransactionModel struct {
	ID           string `gorm:"primaryKey"`
	UserID       string `gorm:"type:uuid;index"`
	ContractID   string `gorm:"type:uuid"`
	WithdrawalID string `gorm:"type:uuid"`
	Type         domain.TransactionType
	Amount       float64
	CreatedAt    time.Time `gorm:"index"`
}
