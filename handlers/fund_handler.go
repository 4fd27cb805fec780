package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"pacifictrucking/models"
	"pacifictrucking/repository"
)

type FundHandler struct {
	Repo repository.FundRepository
}

// CreateContribution handler
func (h *FundHandler) CreateContribution(w http.ResponseWriter, r *http.Request) {
	var contribution models.RevolvingFundContribution
	if err := json.NewDecoder(r.Body).Decode(&contribution); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if contribution.Contributor == "" {
		writeError(w, http.StatusBadRequest, "contributor is required")
		return
	}
	if contribution.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}
	if contribution.Date.IsZero() {
		contribution.Date = time.Now().UTC()
	}

	if err := h.Repo.CreateContribution(&contribution); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Fund contribution recorded",
		Data:    contribution,
	})
}

// GetAllContributions handler
func (h *FundHandler) GetAllContributions(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	list, err := h.Repo.GetContributions(filters)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if list == nil {
		list = []*models.RevolvingFundContribution{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "OK", Data: list})
}
