package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	withdrawaldto "github.com/marisanasser/nexa-contract-service/internal/usecase/dto/withdrawal"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name       string
		amount     float64
		method     string
		violations []string
	}{
		{
			name:   "valid request at the minimum",
			amount: 20.00,
			method: "stripe_connect",
		},
		{
			name:   "zero amount fails both amount rules",
			amount: 0,
			method: "stripe_connect",
			violations: []string{
				"withdrawal amount must be positive",
				"withdrawal amount is below the 20.00 minimum",
			},
		},
		{
			name:       "below minimum",
			amount:     15.00,
			method:     "bank_transfer",
			violations: []string{"withdrawal amount is below the 20.00 minimum"},
		},
		{
			name:       "missing method",
			amount:     50.00,
			method:     "",
			violations: []string{"withdrawal method is required"},
		},
		{
			name:       "method not allowed for creators",
			amount:     50.00,
			method:     "paypal",
			violations: []string{`withdrawal method "paypal" is not allowed for creator payouts`},
		},
		{
			name:   "negative amount with bad method reports everything",
			amount: -5,
			method: "card",
			violations: []string{
				"withdrawal amount must be positive",
				"withdrawal amount is below the 20.00 minimum",
				`withdrawal method "card" is not allowed for creator payouts`,
			},
		},
		{
			name:   "wise is an allowed rail",
			amount: 100.00,
			method: "wise",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			violations := Validate(withdrawaldto.WithdrawalRequest{
				CreatorID: "creator-1",
				Amount:    tc.amount,
				Method:    tc.method,
			})
			assert.Equal(t, tc.violations, violations)
		})
	}
}

func TestRequestFromPayload_AmountCoercion(t *testing.T) {
	testCases := []struct {
		name   string
		amount interface{}
		want   float64
	}{
		{"float64", 42.5, 42.5},
		{"int", 30, 30},
		{"int64", int64(25), 25},
		{"numeric string", "25.50", 25.50},
		{"json number", json.Number("19.99"), 19.99},
		{"garbage string", "lots of money", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := RequestFromPayload("creator-1", &withdrawaldto.CreateWithdrawalPayload{
				Amount:           tc.amount,
				WithdrawalMethod: "wise",
			})
			assert.Equal(t, tc.want, req.Amount)
			assert.Equal(t, "creator-1", req.CreatorID)
			assert.Equal(t, "wise", req.Method)
		})
	}
}

func TestRequestFromPayload_Details(t *testing.T) {
	req := RequestFromPayload("creator-1", &withdrawaldto.CreateWithdrawalPayload{
		Amount:           50.0,
		WithdrawalMethod: "bank_transfer",
		WithdrawalDetails: map[string]interface{}{
			"iban":   "DE89370400440532013000",
			"branch": 42,
		},
	})

	assert.Equal(t, map[string]string{
		"iban":   "DE89370400440532013000",
		"branch": "42",
	}, req.Details)
}

func TestRequestFromPayload_NonMapDetails(t *testing.T) {
	req := RequestFromPayload("creator-1", &withdrawaldto.CreateWithdrawalPayload{
		Amount:            50.0,
		WithdrawalMethod:  "wise",
		WithdrawalDetails: "not a map",
	})
	assert.Empty(t, req.Details)

	nilPayload := RequestFromPayload("creator-1", nil)
	assert.Zero(t, nilPayload.Amount)
	assert.Empty(t, nilPayload.Details)
}
