package models

import (
	"time"

	"github.com/marisanasser/nexa-contract-service/internal/domain"
)

type ContractModel struct {
	ID                   string                `gorm:"primaryKey;type:uuid"`
	OfferID              string                `gorm:"type:uuid;index"`
	Offer                OfferModel            `gorm:"foreignKey:OfferID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	BrandID              string                `gorm:"type:uuid;index"`
	CreatorID            string                `gorm:"type:uuid;index"`
	Status               domain.ContractStatus `gorm:"index:idx_contract_status"`
	WorkflowStatus       domain.WorkflowStatus
	CreatorAmount        float64
	StartedAt            time.Time
	ExpectedCompletionAt time.Time
	CompletedAt          *time.Time
	CompletedBy          string
	CompletionNotes      string
	CreatedAt            time.Time `gorm:"index:idx_contract_created_at"`
	UpdatedAt            time.Time
}
