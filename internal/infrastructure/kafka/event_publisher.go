package kafka

import (
	"encoding/json"

	"github.com/marisanasser/nexa-contract-service/internal/domain"
)

const (
	ContractEventsTopic   = "contract-events"
	CampaignEventsTopic   = "campaign-events"
	WithdrawalEventsTopic = "withdrawal-events"
)

// EventPublisher marshals domain events onto their topics through any
// PublisherPort, keyed by the owning user so per-user ordering holds.
type EventPublisher struct {
	publisher domain.PublisherPort
}

func NewEventPublisher(publisher domain.PublisherPort) *EventPublisher {
	return &EventPublisher{publisher: publisher}
}

func (e *EventPublisher) PublishContract(event ContractEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return e.publisher.Publish(ContractEventsTopic, domain.Message{Key: []byte(event.CreatorID), Value: v})
}

func (e *EventPublisher) PublishCampaign(event CampaignEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return e.publisher.Publish(CampaignEventsTopic, domain.Message{Key: []byte(event.BrandID), Value: v})
}

func (e *EventPublisher) PublishWithdrawal(event WithdrawalEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return e.publisher.Publish(WithdrawalEventsTopic, domain.Message{Key: []byte(event.CreatorID), Value: v})
}
