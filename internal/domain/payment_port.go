package domain

import "context"

type ProviderCustomer struct {
	ID    string
	Email string
}

type CheckoutSession struct {
	ID              string
	URL             string
	Status          string
	PaymentIntentID string
}

type CheckoutSessionRequest struct {
	CustomerID string
	PriceID    string
	SuccessURL string
	CancelURL  string
}

type Subscription struct {
	ID                string
	CustomerID        string
	Status            string
	PriceID           string
	CancelAtPeriodEnd bool
}

type SubscriptionUpdate struct {
	PriceID           string
	CancelAtPeriodEnd *bool
}

type PaymentMethod struct {
	ID        string
	Type      string
	CardBrand string
	CardLast4 string
}

type PaymentIntent struct {
	ID       string
	Status   string
	Amount   float64
	Currency string
}

// PaymentProvider is the settlement port. ReleasePaymentToCreator either
// moves the full contract amount to the creator's payable balance or returns
// an error having moved nothing; it must be called at most once per completed
// contract.
type PaymentProvider interface {
	ReleasePaymentToCreator(ctx context.Context, contract *Contract) error
	GetCreatorBalance(ctx context.Context, creatorID string) (float64, error)

	CreateCustomer(ctx context.Context, userID, email string) (*ProviderCustomer, error)
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSession, error)
	RetrieveCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
	RetrieveSubscription(ctx context.Context, subscriptionID string) (*Subscription, error)
	UpdateSubscription(ctx context.Context, subscriptionID string, update SubscriptionUpdate) (*Subscription, error)
	RetrievePaymentMethod(ctx context.Context, paymentMethodID string) (*PaymentMethod, error)
	RetrievePaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error)
}
