package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"pacifictrucking/finance"
	"pacifictrucking/models"
	"pacifictrucking/repository"
	"pacifictrucking/utils"
)

var validate = validator.New()

type ExpenseHandler struct {
	Repo      repository.ExpenseRepository
	ReimbRepo repository.ReimbursementRepository
}

type expenseRequest struct {
	Category    models.ExpenseCategory `json:"category" validate:"required,oneof=driver_rate toll_fee fuel client_representation cash_advance others"`
	Description string                 `json:"description"`
	Amount      float64                `json:"amount" validate:"required,gt=0"`
	VATIncluded bool                   `json:"vat_included"`
	PaidBy      models.PaymentMethod   `json:"paid_by" validate:"required,oneof=cash bank credit PTS"`
	CreditedTo  string                 `json:"credited_to"`
	BookingID   string                 `json:"booking_id"`
	Date        time.Time              `json:"date"`
}

// CreateExpense routes a manual cost entry: credit-funded costs land as
// pending reimbursements, everything else as a direct expense.
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Validation failed",
			Data:    utils.ProcessValidationErrors(err),
		})
		return
	}
	if req.Date.IsZero() {
		req.Date = time.Now().UTC()
	}

	routed, err := finance.RouteCost(finance.CostEntry{
		Category:    req.Category,
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
		VATIncluded: req.VATIncluded,
		PaidBy:      req.PaidBy,
		CreditedTo:  req.CreditedTo,
		BookingID:   req.BookingID,
		Date:        req.Date,
	})
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
			Message: "Reimbursement recorded",
			Data:    routed.Reimbursement,
		})
		return
	}

	if err := h.Repo.CreateExpense(routed.Expense); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Expense recorded",
		Data:    routed.Expense,
	})
}

// GetAllExpenses handler
func (h *ExpenseHandler) GetAllExpenses(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	list, err := h.Repo.GetExpenses(filters)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if list == nil {
		list = []*models.Expense{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "OK", Data: list})
}

func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing expense id")
		return
	}

	if err := h.Repo.DeleteExpense(id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete expense: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Expense deleted successfully"})
}
