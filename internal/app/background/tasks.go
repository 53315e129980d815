package background

import (
	"context"
	"log/slog"
	"time"

	contractuc "github.com/marisanasser/nexa-contract-service/internal/usecase/contract"
	webhookuc "github.com/marisanasser/nexa-contract-service/internal/usecase/webhook"
)

type BackgroundTasks struct {
	ContractUsecase contractuc.ContractUsecase
	WebhookUsecase  webhookuc.WebhookUsecase

	ReconcileInterval time.Duration
	StaleWebhookAge   time.Duration
}

func NewBackgroundTasks(
	contractUC contractuc.ContractUsecase,
	webhookUC webhookuc.WebhookUsecase,
	reconcileInterval, staleWebhookAge time.Duration) *BackgroundTasks {

	if reconcileInterval <= 0 {
		reconcileInterval = 30 * time.Second
	}
	if staleWebhookAge <= 0 {
		staleWebhookAge = 15 * time.Minute
	}

	return &BackgroundTasks{
		ContractUsecase:   contractUC,
		WebhookUsecase:    webhookUC,
		ReconcileInterval: reconcileInterval,
		StaleWebhookAge:   staleWebhookAge,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startCampaignReconciliation(ctx)
	go bt.startStaleWebhookCheck(ctx)
}

func (bt *BackgroundTasks) startCampaignReconciliation(ctx context.Context) {
	ticker := time.NewTicker(bt.ReconcileInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.ContractUsecase.ReconcileApprovedCampaigns(ctx); err != nil {
				slog.Error("campaign reconciliation failed", "error", err.Error())
			}
		}
	}
}

func (bt *BackgroundTasks) startStaleWebhookCheck(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			failed, err := bt.WebhookUsecase.MarkStaleReceivedFailed(bt.StaleWebhookAge)
			if err != nil {
				slog.Error("stale webhook check failed", "error", err.Error())
				continue
			}
			if failed > 0 {
				slog.Warn("stale webhook events failed", "count", failed)
			}
		}
	}
}
