package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/marisanasser/nexa-contract-service/internal/domain"
	"github.com/marisanasser/nexa-contract-service/internal/infrastructure/metrics"
)

type WebhookUsecase interface {
	RecordIfNew(ctx context.Context, providerEventID, eventType, payload string) (*domain.WebhookEvent, bool, error)
	MarkStatus(providerEventID string, status domain.WebhookEventStatus, errorMessage string) error
	MarkStaleReceivedFailed(olderThan time.Duration) (int, error)
}

type DefaultWebhookUsecase struct {
	EventRepo  domain.WebhookEventRepository
	DedupCache domain.WebhookDedupCache
	Metrics    *metrics.ContractMetrics
}

func NewDefaultWebhookUsecase(
	eventRepo domain.WebhookEventRepository,
	dedupCache domain.WebhookDedupCache,
	contractMetrics *metrics.ContractMetrics) *DefaultWebhookUsecase {

	return &DefaultWebhookUsecase{
		EventRepo:  eventRepo,
		DedupCache: dedupCache,
		Metrics:    contractMetrics,
	}
}

// RecordIfNew registers a provider delivery. The first sight of an event id
// creates the ledger record and returns true; every redelivery returns the
// existing record and false. Callers must not re-apply financial effects when
// the second value is false.
func (uc *DefaultWebhookUsecase) RecordIfNew(ctx context.Context, providerEventID, eventType, payload string) (*domain.WebhookEvent, bool, error) {
	if uc.DedupCache != nil {
		seen, err := uc.DedupCache.MarkSeen(ctx, providerEventID)
		if err != nil {
			slog.Warn("webhook dedup cache unavailable, falling back to ledger",
				"provider_event_id", providerEventID, "error", err.Error())
		} else if seen {
			existing, err := uc.EventRepo.GetByProviderEventID(providerEventID)
			if err == nil {
				uc.recordDuplicate()
				return existing, false, nil
			}
			// cache marker without a ledger row: an earlier insert failed
			// after the marker was set, so fall through and insert
		}
	}

	event := &domain.WebhookEvent{
		ID:              uuid.New().String(),
		ProviderEventID: providerEventID,
		EventType:       eventType,
		Payload:         payload,
		Status:          domain.WebhookReceived,
	}

	stored, isNew, err := uc.EventRepo.CreateIfNew(event)
	if err != nil {
		return nil, false, err
	}
	if !isNew {
		uc.recordDuplicate()
	}

	return stored, isNew, nil
}

// MarkStatus updates the ledger record for an event. It is idempotent and a
// no-op for unknown ids; it never creates records.
func (uc *DefaultWebhookUsecase) MarkStatus(providerEventID string, status domain.WebhookEventStatus, errorMessage string) error {
	if err := uc.EventRepo.UpdateStatus(providerEventID, status, errorMessage); err != nil {
		return err
	}

	uc.recordStatus(status)
	return nil
}

// MarkStaleReceivedFailed fails events stuck in received. A handler crash
// between RecordIfNew and MarkStatus leaves such rows behind; failing them
// makes the provider's retry visible as a fresh processing attempt.
func (uc *DefaultWebhookUsecase) MarkStaleReceivedFailed(olderThan time.Duration) (int, error) {
	stale, err := uc.EventRepo.FindStaleReceived(time.Now().Add(-olderThan))
	if err != nil {
		return 0, err
	}

	failed := 0
	for _, event := range stale {
		if err := uc.EventRepo.UpdateStatus(event.ProviderEventID, domain.WebhookFailed, "processing timed out"); err != nil {
			slog.Error("failed to mark stale webhook event",
				"provider_event_id", event.ProviderEventID, "error", err.Error())
			continue
		}
		failed++
	}

	return failed, nil
}

func (uc *DefaultWebhookUsecase) recordDuplicate() {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.WebhookDuplicatesTotal.Inc()
}

func (uc *DefaultWebhookUsecase) recordStatus(status domain.WebhookEventStatus) {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.WebhookEventsTotal.WithLabelValues(string(status)).Inc()
}
