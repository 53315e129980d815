package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/marisanasser/nexa-contract-service/internal/domain"
	usecase "github.com/marisanasser/nexa-contract-service/internal/usecase/contract"
	contractdto "github.com/marisanasser/nexa-contract-service/internal/usecase/dto/contract"
)

type ContractHandler struct {
	contractUsecase usecase.ContractUsecase
}

func NewContractHandler(contractUsecase usecase.ContractUsecase) *ContractHandler {
	return &ContractHandler{contractUsecase: contractUsecase}
}

type completeContractRequest struct {
	CompletedBy string `json:"completed_by"`
	Notes       string `json:"notes,omitempty"`
}

func (h *ContractHandler) CompleteContract(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "contractID")

	var req completeContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.CompletedBy == "" {
		writeError(w, http.StatusBadRequest, "completed_by is required")
		return
	}

	result := h.contractUsecase.CompleteContract(r.Context(), &contractdto.CompleteContractInput{
		ContractID:  contractID,
		CompletedBy: req.CompletedBy,
		Notes:       req.Notes,
	})

	if !result.Success {
		status := http.StatusUnprocessableEntity
		if result.Failure == contractdto.FailureSettlement {
			status = http.StatusBadGateway
		}
		writeJSON(w, status, map[string]interface{}{
			"success": false,
			"failure": string(result.Failure),
			"error":   result.ErrorMessage,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":                 true,
		"contract":                result.Contract,
		"funds_released_fraction": result.FundsReleasedFraction,
		"campaign_completed":      result.CampaignCompleted,
	})
}

func (h *ContractHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	contract, err := h.contractUsecase.GetContractByID(chi.URLParam(r, "contractID"))
	if err != nil {
		if err == domain.ErrContractNotFound {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, contract)
}

func (h *ContractHandler) GetCreatorContracts(w http.ResponseWriter, r *http.Request) {
	h.listContracts(w, r, chi.URLParam(r, "creatorID"), h.contractUsecase.GetContractsByCreatorID)
}

func (h *ContractHandler) GetBrandContracts(w http.ResponseWriter, r *http.Request) {
	h.listContracts(w, r, chi.URLParam(r, "brandID"), h.contractUsecase.GetContractsByBrandID)
}

func (h *ContractHandler) listContracts(
	w http.ResponseWriter,
	r *http.Request,
	userID string,
	list func(*contractdto.GetContractsInput) (*contractdto.ContractListOutput, error),
) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	filters := domain.ContractFilters{CampaignID: r.URL.Query().Get("campaign_id")}
	if status := r.URL.Query().Get("status"); status != "" {
		filters.Statuses = []domain.ContractStatus{domain.ContractStatus(status)}
	}

	out, err := list(&contractdto.GetContractsInput{
		UserID:  userID,
		Page:    page,
		Limit:   limit,
		Filters: filters,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *ContractHandler) GetCampaignContracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.contractUsecase.GetContractsByCampaignID(chi.URLParam(r, "campaignID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, contracts)
}

func (h *ContractHandler) GetActiveContracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.contractUsecase.GetActiveContractsByUserID(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, contracts)
}

func (h *ContractHandler) GetStatusCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.contractUsecase.CountContractsByStatus(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, counts)
}

func (h *ContractHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.contractUsecase.GetStatsForUser(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"active":         stats.ActiveContracts,
		"completed":      stats.CompletedContracts,
		"cancelled":      stats.CancelledContracts,
		"total_earnings": stats.TotalEarnings,
	})
}
