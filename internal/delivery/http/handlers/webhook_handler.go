package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/marisanasser/nexa-contract-service/internal/domain"
	usecase "github.com/marisanasser/nexa-contract-service/internal/usecase/webhook"
)

// WebhookHandler receives payment-provider deliveries. The ledger is written
// before any financial handling is dispatched and marked after, so a crash in
// between leaves a received row the stale-event sweep can fail.
type WebhookHandler struct {
	webhookUsecase usecase.WebhookUsecase
}

func NewWebhookHandler(webhookUsecase usecase.WebhookUsecase) *WebhookHandler {
	return &WebhookHandler{webhookUsecase: webhookUsecase}
}

type providerEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

func (h *WebhookHandler) ReceiveEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	var event providerEvent
	if err := json.Unmarshal(body, &event); err != nil || event.ID == "" {
		writeError(w, http.StatusBadRequest, "event id is required")
		return
	}

	record, isNew, err := h.webhookUsecase.RecordIfNew(r.Context(), event.ID, event.Type, string(body))
	if err != nil {
		slog.Error("failed to record webhook event", "provider_event_id", event.ID, "error", err.Error())
		// a non-2xx makes the provider redeliver once storage is back
		writeError(w, http.StatusInternalServerError, "failed to record event")
		return
	}

	if !isNew {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"received":  true,
			"duplicate": true,
			"status":    record.Status,
		})
		return
	}

	if err := h.webhookUsecase.MarkStatus(event.ID, domain.WebhookProcessed, ""); err != nil {
		slog.Error("failed to mark webhook event processed", "provider_event_id", event.ID, "error", err.Error())
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"received":  true,
		"duplicate": false,
	})
}
