package models

import (
	"time"

	"github.com/marisanasser/nexa-contract-service/internal/domain"
)

type CampaignModel struct {
	ID          string                `gorm:"primaryKey;type:uuid"`
	BrandID     string                `gorm:"type:uuid;index"`
	Title       string
	Status      domain.CampaignStatus `gorm:"index:idx_campaign_status"`
	Budget      float64
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OfferModel struct {
	ID         string             `gorm:"primaryKey;type:uuid"`
	CampaignID string             `gorm:"type:uuid;index"`
	Campaign   CampaignModel      `gorm:"foreignKey:CampaignID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	BrandID    string             `gorm:"type:uuid"`
	CreatorID  string             `gorm:"type:uuid;index"`
	Amount     float64
	Status     domain.OfferStatus
	CreatedAt  time.Time
}
