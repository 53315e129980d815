package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ContractMetrics holds the settlement-core Prometheus collectors.
type ContractMetrics struct {
	ContractsCompletedTotal       prometheus.CounterVec
	ContractsCompletedAmountTotal prometheus.CounterVec
	CompletionRejectedTotal       prometheus.CounterVec
	SettlementFailuresTotal       prometheus.CounterVec
	CampaignsCascadedTotal        prometheus.Counter
	ReconciliationRunsTotal       prometheus.Counter
	WithdrawalsCreatedTotal       prometheus.CounterVec
	WithdrawalsRejectedTotal      prometheus.Counter
	WebhookEventsTotal            prometheus.CounterVec
	WebhookDuplicatesTotal        prometheus.Counter
	CompletionDuration            prometheus.Histogram
}

func NewContractMetrics() *ContractMetrics {
	return &ContractMetrics{
		ContractsCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contracts_completed_total",
				Help: "Contracts moved to completed status",
			},
			[]string{"brand_id"},
		),

		ContractsCompletedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contracts_completed_amount_total",
				Help: "Creator amounts released on completion",
			},
			[]string{"brand_id"},
		),

		CompletionRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contract_completion_rejected_total",
				Help: "Completion attempts rejected by the status guard",
			},
			[]string{"status"},
		),

		SettlementFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contract_settlement_failures_total",
				Help: "Escrow releases that failed and rolled back",
			},
			[]string{"brand_id"},
		),

		CampaignsCascadedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "campaigns_cascade_completed_total",
				Help: "Campaigns auto-completed by the cascade rule",
			},
		),

		ReconciliationRunsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "campaign_reconciliation_runs_total",
				Help: "Campaign reconciliation sweep executions",
			},
		),

		WithdrawalsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "withdrawals_created_total",
				Help: "Withdrawal requests accepted",
			},
			[]string{"method"},
		),

		WithdrawalsRejectedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "withdrawals_rejected_total",
				Help: "Withdrawal requests rejected by validation",
			},
		),

		WebhookEventsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_events_total",
				Help: "Provider webhook events by final status",
			},
			[]string{"status"},
		),

		WebhookDuplicatesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "webhook_duplicate_deliveries_total",
				Help: "Webhook deliveries recognized as duplicates",
			},
		),

		CompletionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "contract_completion_duration_seconds",
				Help:    "Duration of the completion critical section",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}
