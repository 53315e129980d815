package withdrawaldto

// CreateWithdrawalPayload is the loosely-typed request body as it arrives from
// the controller. Coercion into a WithdrawalRequest never fails; malformed
// fields surface as validation violations instead.
type CreateWithdrawalPayload struct {
	Amount            interface{} `json:"amount"`
	WithdrawalMethod  string      `json:"withdrawal_method"`
	WithdrawalDetails interface{} `json:"withdrawal_details,omitempty"`
}

type WithdrawalRequest struct {
	CreatorID string
	Amount    float64
	Method    string
	Details   map[string]string
}
