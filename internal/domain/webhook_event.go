package domain

import "time"

type WebhookEventStatus string

const (
	WebhookReceived  WebhookEventStatus = "received"
	WebhookProcessed WebhookEventStatus = "processed"
	WebhookFailed    WebhookEventStatus = "failed"
)

// WebhookEvent is the idempotency record for provider deliveries. The unique
// constraint on ProviderEventID is what makes effects apply exactly once.
type WebhookEvent struct {
	ID              string
	ProviderEventID string
	EventType       string
	Payload         string
	Status          WebhookEventStatus
	ErrorMessage    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
