package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/marisanasser/nexa-contract-service/internal/domain"
)

// HTTPPaymentsClient implements domain.PaymentProvider against the payments
// backend. Every call carries the client timeout, so a hung provider surfaces
// as a settlement failure instead of holding the completion transaction open.
type HTTPPaymentsClient struct {
	address string
	client  *http.Client
}

func NewHTTPPaymentsClient(address string, timeout time.Duration) *HTTPPaymentsClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPPaymentsClient{
		address: address,
		client:  &http.Client{Timeout: timeout},
	}
}

type releaseRequest struct {
	ContractID string  `json:"contract_id"`
	CreatorID  string  `json:"creator_id"`
	BrandID    string  `json:"brand_id"`
	Amount     float64 `json:"amount"`
}

type balanceResponse struct {
	Balance float64 `json:"balance"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *HTTPPaymentsClient) ReleasePaymentToCreator(ctx context.Context, contract *domain.Contract) error {
	body := releaseRequest{
		ContractID: contract.ID,
		CreatorID:  contract.CreatorID,
		BrandID:    contract.BrandID,
		Amount:     contract.CreatorAmount,
	}

	return c.post(ctx, "/escrow/release", body, nil)
}

func (c *HTTPPaymentsClient) GetCreatorBalance(ctx context.Context, creatorID string) (float64, error) {
	var out balanceResponse
	if err := c.get(ctx, fmt.Sprintf("/creators/%s/balance", creatorID), &out); err != nil {
		return 0, err
	}

	return out.Balance, nil
}

func (c *HTTPPaymentsClient) CreateCustomer(ctx context.Context, userID, email string) (*domain.ProviderCustomer, error) {
	body := map[string]string{"user_id": userID, "email": email}

	var out domain.ProviderCustomer
	if err := c.post(ctx, "/customers", body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *HTTPPaymentsClient) CreateCheckoutSession(ctx context.Context, req domain.CheckoutSessionRequest) (*domain.CheckoutSession, error) {
	body := map[string]string{
		"customer_id": req.CustomerID,
		"price_id":    req.PriceID,
		"success_url": req.SuccessURL,
		"cancel_url":  req.CancelURL,
	}

	var out domain.CheckoutSession
	if err := c.post(ctx, "/checkout/sessions", body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *HTTPPaymentsClient) RetrieveCheckoutSession(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	var out domain.CheckoutSession
	if err := c.get(ctx, fmt.Sprintf("/checkout/sessions/%s", sessionID), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *HTTPPaymentsClient) RetrieveSubscription(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	var out domain.Subscription
	if err := c.get(ctx, fmt.Sprintf("/subscriptions/%s", subscriptionID), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *HTTPPaymentsClient) UpdateSubscription(ctx context.Context, subscriptionID string, update domain.SubscriptionUpdate) (*domain.Subscription, error) {
	body := map[string]interface{}{}
	if update.PriceID != "" {
		body["price_id"] = update.PriceID
	}
	if update.CancelAtPeriodEnd != nil {
		body["cancel_at_period_end"] = *update.CancelAtPeriodEnd
	}

	var out domain.Subscription
	if err := c.post(ctx, fmt.Sprintf("/subscriptions/%s", subscriptionID), body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *HTTPPaymentsClient) RetrievePaymentMethod(ctx context.Context, paymentMethodID string) (*domain.PaymentMethod, error) {
	var out domain.PaymentMethod
	if err := c.get(ctx, fmt.Sprintf("/payment_methods/%s", paymentMethodID), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *HTTPPaymentsClient) RetrievePaymentIntent(ctx context.Context, paymentIntentID string) (*domain.PaymentIntent, error) {
	var out domain.PaymentIntent
	if err := c.get(ctx, fmt.Sprintf("/payment_intents/%s", paymentIntentID), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *HTTPPaymentsClient) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	requestBodyBytes, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.address+path, bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *HTTPPaymentsClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.address+path, nil)
	if err != nil {
		return err
	}

	return c.do(req, out)
}

func (c *HTTPPaymentsClient) do(req *http.Request, out interface{}) error {
	response, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		if out == nil {
			return nil
		}
		return json.Unmarshal(responseBodyBytes, out)
	}

	var errResponse errorResponse
	if err := json.Unmarshal(responseBodyBytes, &errResponse); err != nil || errResponse.Error == "" {
		return fmt.Errorf("payments backend returned status %d", response.StatusCode)
	}

	return errors.New(errResponse.Error)
}
