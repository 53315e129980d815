package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	withdrawaldto "github.com/marisanasser/nexa-contract-service/internal/usecase/dto/withdrawal"
	usecase "github.com/marisanasser/nexa-contract-service/internal/usecase/withdrawal"
)

type WithdrawalHandler struct {
	withdrawalUsecase usecase.WithdrawalUsecase
}

func NewWithdrawalHandler(withdrawalUsecase usecase.WithdrawalUsecase) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalUsecase: withdrawalUsecase}
}

func (h *WithdrawalHandler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	creatorID := chi.URLParam(r, "creatorID")

	var payload withdrawaldto.CreateWithdrawalPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	out, err := h.withdrawalUsecase.CreateWithdrawal(r.Context(), creatorID, &payload)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !out.Valid() {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"violations": out.Violations})
		return
	}

	writeJSON(w, http.StatusCreated, out.Withdrawal)
}

func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	out, err := h.withdrawalUsecase.GetWithdrawalsByCreatorID(chi.URLParam(r, "creatorID"), page, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *WithdrawalHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	transactions, total, err := h.withdrawalUsecase.GetTransactionsByUserID(chi.URLParam(r, "userID"), page, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": transactions,
		"total":        total,
	})
}
