package domain

import "errors"

var (
	ErrContractNotFound     = errors.New("contract not found")
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrWithdrawalNotFound   = errors.New("withdrawal not found")
	ErrWebhookEventNotFound = errors.New("webhook event not found")
	ErrReleaseFailed        = errors.New("escrow release failed")
	ErrInvalidWithdrawal    = errors.New("invalid withdrawal request")
)
