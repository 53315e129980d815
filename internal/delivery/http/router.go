package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marisanasser/nexa-contract-service/internal/delivery/http/handlers"
)

// NewRouter wires the HTTP surface of the service.
func NewRouter(
	contractHandler *handlers.ContractHandler,
	withdrawalHandler *handlers.WithdrawalHandler,
	webhookHandler *handlers.WebhookHandler) http.Handler {

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/contracts", func(r chi.Router) {
			r.Get("/{contractID}", contractHandler.GetContract)
			r.Post("/{contractID}/complete", contractHandler.CompleteContract)
			r.Get("/creator/{creatorID}", contractHandler.GetCreatorContracts)
			r.Get("/brand/{brandID}", contractHandler.GetBrandContracts)
			r.Get("/campaign/{campaignID}", contractHandler.GetCampaignContracts)
			r.Get("/user/{userID}/active", contractHandler.GetActiveContracts)
			r.Get("/user/{userID}/status-counts", contractHandler.GetStatusCounts)
			r.Get("/user/{userID}/stats", contractHandler.GetStats)
		})

		r.Route("/withdrawals", func(r chi.Router) {
			r.Post("/creator/{creatorID}", withdrawalHandler.CreateWithdrawal)
			r.Get("/creator/{creatorID}", withdrawalHandler.GetWithdrawals)
		})
		r.Get("/transactions/user/{userID}", withdrawalHandler.GetTransactions)

		r.Post("/webhooks/payments", webhookHandler.ReceiveEvent)
	})

	return r
}
