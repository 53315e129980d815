package domain

import "time"

type WithdrawalStatus string

const (
	WithdrawalPending    WithdrawalStatus = "pending"
	WithdrawalProcessing WithdrawalStatus = "processing"
	WithdrawalCompleted  WithdrawalStatus = "completed"
	WithdrawalRejected   WithdrawalStatus = "rejected"
)

// MinWithdrawalAmount - platform minimum for a single payout request
const MinWithdrawalAmount = 20.00

// creatorPayoutMethods - payout rails the settlement backend supports for
// creators. Brand-side card-on-file methods are deliberately not listed.
var creatorPayoutMethods = map[string]bool{
	"stripe_connect": true,
	"bank_transfer":  true,
	"wise":           true,
}

func IsCreatorPayoutMethod(method string) bool {
	return creatorPayoutMethods[method]
}

type Withdrawal struct {
	ID          string
	CreatorID   string
	Amount      float64
	Method      string
	Details     map[string]string
	Status      WithdrawalStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}
