package models

import (
	"time"

	"github.com/marisanasser/nexa-contract-service/internal/domain"
)

type WebhookEventModel struct {
	ID              string                    `gorm:"primaryKey;type:uuid"`
	ProviderEventID string                    `gorm:"uniqueIndex;not null"`
	EventType       string                    `gorm:"index"`
	Payload         string                    `gorm:"type:jsonb"`
	Status          domain.WebhookEventStatus `gorm:"index"`
	ErrorMessage    string
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}
