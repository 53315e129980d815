package kafka

type ContractEvent struct {
	ContractID string  `json:"contract_id"`
	CampaignID string  `json:"campaign_id"`
	CreatorID  string  `json:"creator_id"`
	BrandID    string  `json:"brand_id"`
	Status     string  `json:"status"`
	Amount     float64 `json:"amount"`
}

type CampaignEvent struct {
	CampaignID string `json:"campaign_id"`
	BrandID    string `json:"brand_id"`
	Status     string `json:"status"`
}

type WithdrawalEvent struct {
	WithdrawalID string  `json:"withdrawal_id"`
	CreatorID    string  `json:"creator_id"`
	Amount       float64 `json:"amount"`
	Method       string  `json:"method"`
	Status       string  `json:"status"`
}
