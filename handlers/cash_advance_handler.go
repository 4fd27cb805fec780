package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pacifictrucking/finance"
	"pacifictrucking/models"
	"pacifictrucking/repository"
)

type CashAdvanceHandler struct {
	Repo      repository.CashAdvanceRepository
	ReimbRepo repository.ReimbursementRepository
}

// CreateCashAdvance routes a driver advance: credit-funded advances are
// parked as pending reimbursements until liquidated.
func (h *CashAdvanceHandler) CreateCashAdvance(w http.ResponseWriter, r *http.Request) {
	var advance models.CashAdvance
	if err := json.NewDecoder(r.Body).Decode(&advance); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if advance.DriverID == "" || advance.DriverName == "" {
		writeError(w, http.StatusBadRequest, "driver_id and driver_name are required")
		return
	}
	if advance.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}
	if !advance.PaidBy.Valid() {
		writeError(w, http.StatusBadRequest, "invalid paid_by")
		return
	}
	if advance.Date.IsZero() {
		advance.Date = time.Now().UTC()
	}

	routed, err := finance.RouteCashAdvance(&advance)
	if err != nil {
		if errors.Is(err, finance.ErrCreditedToRequired) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if routed.Reimbursement != nil {
		if err := h.ReimbRepo.CreateReimbursement(routed.Reimbursement); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, ApiResponse{
			Success: true,
			Message: "Cash advance recorded as reimbursement",
			Data:    routed.Reimbursement,
		})
		return
	}

	if err := h.Repo.CreateCashAdvance(routed.CashAdvance); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Cash advance recorded",
		Data:    routed.CashAdvance,
	})
}

// GetAllCashAdvances handler
func (h *CashAdvanceHandler) GetAllCashAdvances(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	list, err := h.Repo.GetCashAdvances(filters)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if list == nil {
		list = []*models.CashAdvance{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "OK", Data: list})
}
