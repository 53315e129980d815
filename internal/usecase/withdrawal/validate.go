package usecase

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/marisanasser/nexa-contract-service/internal/domain"
	withdrawaldto "github.com/marisanasser/nexa-contract-service/internal/usecase/dto/withdrawal"
)

// RequestFromPayload coerces the untyped controller payload into a typed
// request. It never fails: an unreadable amount becomes 0 and non-map details
// become empty, so malformed input falls out as validation violations.
func RequestFromPayload(creatorID string, payload *withdrawaldto.CreateWithdrawalPayload) withdrawaldto.WithdrawalRequest {
	req := withdrawaldto.WithdrawalRequest{
		CreatorID: creatorID,
		Details:   map[string]string{},
	}
	if payload == nil {
		return req
	}

	req.Amount = coerceAmount(payload.Amount)
	req.Method = payload.WithdrawalMethod

	if details, ok := payload.WithdrawalDetails.(map[string]interface{}); ok {
		for key, value := range details {
			req.Details[key] = fmt.Sprint(value)
		}
	}

	return req
}

func coerceAmount(raw interface{}) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		amount, err := v.Float64()
		if err != nil {
			return 0
		}
		return amount
	case string:
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return amount
	default:
		return 0
	}
}

// Validate evaluates every rule and returns all violations at once, so the
// caller can surface the full list to the user in one round trip.
func Validate(req withdrawaldto.WithdrawalRequest) []string {
	var violations []string

	if req.Amount <= 0 {
		violations = append(violations, "withdrawal amount must be positive")
	}
	if req.Amount < domain.MinWithdrawalAmount {
		violations = append(violations, fmt.Sprintf("withdrawal amount is below the %.2f minimum", domain.MinWithdrawalAmount))
	}
	if req.Method == "" {
		violations = append(violations, "withdrawal method is required")
	} else if !domain.IsCreatorPayoutMethod(req.Method) {
		violations = append(violations, fmt.Sprintf("withdrawal method %q is not allowed for creator payouts", req.Method))
	}

	return violations
}
