package postgres

import (
	"log"

	"github.com/marisanasser/nexa-contract-service/internal/config"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.ContractConfig) *gorm.DB {
	dsn := cfg.ContractDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.CampaignModel{},
		&models.OfferModel{},
		&models.ContractModel{},
		&models.WithdrawalModel{},
		&models.TransactionModel{},
		&models.WebhookEventModel{},
	)

	return db
}
