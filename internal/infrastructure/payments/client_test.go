package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marisanasser/nexa-contract-service/internal/domain"
)

func TestReleasePaymentToCreator(t *testing.T) {
	var got releaseRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/escrow/release", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewHTTPPaymentsClient(server.URL, time.Second)
	err := client.ReleasePaymentToCreator(context.Background(), &domain.Contract{
		ID:            "contract-1",
		CreatorID:     "creator-1",
		BrandID:       "brand-1",
		CreatorAmount: 150.00,
	})
	require.NoError(t, err)

	assert.Equal(t, "contract-1", got.ContractID)
	assert.Equal(t, "creator-1", got.CreatorID)
	assert.Equal(t, "brand-1", got.BrandID)
	assert.Equal(t, 150.00, got.Amount)
}

func TestReleasePaymentToCreator_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "insufficient escrow"})
	}))
	defer server.Close()

	client := NewHTTPPaymentsClient(server.URL, time.Second)
	err := client.ReleasePaymentToCreator(context.Background(), &domain.Contract{ID: "contract-1"})

	require.Error(t, err)
	assert.EqualError(t, err, "insufficient escrow")
}

func TestReleasePaymentToCreator_OpaqueError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := NewHTTPPaymentsClient(server.URL, time.Second)
	err := client.ReleasePaymentToCreator(context.Background(), &domain.Contract{ID: "contract-1"})

	require.Error(t, err)
	assert.EqualError(t, err, "payments backend returned status 502")
}

func TestGetCreatorBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/creators/creator-1/balance", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]float64{"balance": 320.50})
	}))
	defer server.Close()

	client := NewHTTPPaymentsClient(server.URL, time.Second)
	balance, err := client.GetCreatorBalance(context.Background(), "creator-1")

	require.NoError(t, err)
	assert.Equal(t, 320.50, balance)
}

func TestReleasePaymentToCreator_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer server.Close()

	client := NewHTTPPaymentsClient(server.URL, time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := client.ReleasePaymentToCreator(ctx, &domain.Contract{ID: "contract-1"})
	require.Error(t, err)
}

func TestCreateCheckoutSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/checkout/sessions", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{
			"ID":     "cs_123",
			"URL":    "https://pay.example.com/cs_123",
			"Status": "open",
		})
	}))
	defer server.Close()

	client := NewHTTPPaymentsClient(server.URL, time.Second)
	session, err := client.CreateCheckoutSession(context.Background(), domain.CheckoutSessionRequest{
		CustomerID: "cus_1",
		PriceID:    "price_1",
	})

	require.NoError(t, err)
	assert.Equal(t, "cs_123", session.ID)
	assert.Equal(t, "open", session.Status)
}
