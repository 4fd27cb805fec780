package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pacifictrucking/config"
	"pacifictrucking/models"
	"pacifictrucking/repository"
)

type ReimbursementHandler struct {
	Repo repository.ReimbursementRepository
}

// GetAllReimbursements handler
func (h *ReimbursementHandler) GetAllReimbursements(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	list, err := h.Repo.GetReimbursements(filters)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if list == nil {
		list = []*models.Reimbursement{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "OK", Data: list})
}

// Liquidate settles a pending reimbursement. Admin only: the official
// expense or cash-advance record and the status flip land in one
// transaction.
func (h *ReimbursementHandler) Liquidate(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing reimbursement id")
		return
	}

	role := models.UserRole(r.Header.Get("X-User-Role"))
	if role != models.RoleAdmin {
		writeError(w, http.StatusForbidden, "only admins can liquidate reimbursements")
		return
	}

	var body struct {
		LiquidatedBy string `json:"liquidated_by"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if body.LiquidatedBy == "" {
		writeError(w, http.StatusBadRequest, "liquidated_by is required")
		return
	}

	reimb, err := h.Repo.Liquidate(id, body.LiquidatedBy, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrReimbursementNotFound) {
			writeError(w, http.StatusNotFound, "Reimbursement not found")
			return
		}
		if errors.Is(err, repository.ErrReimbursementNotPending) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		config.LogError(config.GetLogger(), "handlers", "Liquidate", "liquidate reimbursement", id, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Reimbursement liquidated",
		Data:    reimb,
	})
}
