package domain

import (
	"context"
	"time"
)

type WebhookEventRepository interface {
	// CreateIfNew inserts the event when its provider event id has not been
	// seen before. On a duplicate delivery it returns the existing record and
	// false without touching it.
	CreateIfNew(event *WebhookEvent) (*WebhookEvent, bool, error)
	GetByProviderEventID(providerEventID string) (*WebhookEvent, error)

	// UpdateStatus is a no-op when the event does not exist; it never creates
	// records as a side effect.
	UpdateStatus(providerEventID string, status WebhookEventStatus, errorMessage string) error

	FindStaleReceived(olderThan time.Time) ([]*WebhookEvent, error)
}

// WebhookDedupCache is a best-effort fast path in front of the ledger's
// unique constraint. Correctness never depends on it: any cache error is
// treated as a miss and the database constraint decides.
type WebhookDedupCache interface {
	MarkSeen(ctx context.Context, providerEventID string) (bool, error)
}
