package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/marisanasser/nexa-contract-service/internal/app/background"
	"github.com/marisanasser/nexa-contract-service/internal/config"
	httpdelivery "github.com/marisanasser/nexa-contract-service/internal/delivery/http"
	"github.com/marisanasser/nexa-contract-service/internal/delivery/http/handlers"
	"github.com/marisanasser/nexa-contract-service/internal/domain"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/cache"
	publisher "github.com/marisanasser/nexa-contract-service/internal/infrastructure/kafka"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/metrics"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/migrate"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/payments"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/postgres"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/postgres/repository"
	contractuc "github.com/marisanasser/nexa-contract-service/internal/usecase/contract"
	webhookuc "github.com/marisanasser/nexa-contract-service/internal/usecase/webhook"
	withdrawaluc "github.com/marisanasser/nexa-contract-service/internal/usecase/withdrawal"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.ContractDB.MigrationPath != "" {
		if err := migrate.RunMigrations(db, cfg.ContractDB.MigrationPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	kafkaPublisher := publisher.NewDefaultKafkaPublisher(brokers)
	defer kafkaPublisher.Close()
	eventPublisher := publisher.NewEventPublisher(kafkaPublisher)

	contractMetrics := metrics.NewContractMetrics()

	// Init repos
	contractRepo := repository.NewDefaultContractRepository(db)
	campaignRepo := repository.NewDefaultCampaignRepository(db)
	withdrawalRepo := repository.NewDefaultWithdrawalRepository(db)
	webhookEventRepo := repository.NewDefaultWebhookEventRepository(db)

	// Init payments client
	paymentsClient := payments.NewHTTPPaymentsClient(
		cfg.PaymentsService.Address,
		time.Duration(cfg.PaymentsService.TimeoutSeconds)*time.Second,
	)

	// Redis is a fast path for webhook dedup; the unique index is the guarantee
	var dedupCache domain.WebhookDedupCache
	if cfg.RedisService.Addr != "" {
		redisClient, err := cache.Connect(cfg.RedisService.Addr)
		if err != nil {
			slog.Warn("redis unavailable, webhook dedup falls back to the ledger", "error", err.Error())
		} else {
			dedupCache = cache.NewRedisWebhookDedupStore(redisClient, 0)
		}
	}

	// Init usecases
	contractUsecase := contractuc.NewDefaultContractUsecase(
		contractRepo,
		campaignRepo,
		paymentsClient,
		eventPublisher,
		contractMetrics,
	)
	withdrawalUsecase := withdrawaluc.NewDefaultWithdrawalUsecase(
		withdrawalRepo,
		paymentsClient,
		eventPublisher,
		contractMetrics,
	)
	webhookUsecase := webhookuc.NewDefaultWebhookUsecase(
		webhookEventRepo,
		dedupCache,
		contractMetrics,
	)

	contractHandler := handlers.NewContractHandler(contractUsecase)
	withdrawalHandler := handlers.NewWithdrawalHandler(withdrawalUsecase)
	webhookHandler := handlers.NewWebhookHandler(webhookUsecase)

	router := httpdelivery.NewRouter(contractHandler, withdrawalHandler, webhookHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tasks := background.NewBackgroundTasks(
		contractUsecase,
		webhookUsecase,
		time.Duration(cfg.Reconciliation.IntervalSeconds)*time.Second,
		time.Duration(cfg.Reconciliation.StaleWebhookMinutes)*time.Minute,
	)
	tasks.StartAll(ctx)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Printf("HTTP server started on %s\n", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v\n", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err.Error())
		os.Exit(1)
	}
}
