package handlers

import (
	"net/http"
	"time"

	"pacifictrucking/finance"
	"pacifictrucking/models"
	"pacifictrucking/repository"
)

type PayrollHandler struct {
	BookingRepo repository.BookingRepository
	AdvanceRepo repository.CashAdvanceRepository
}

// GetPayslips returns the weekly driver payslips for the week containing
// ?week=YYYY-MM-DD (default: the current week). Weeks start on Monday.
func (h *PayrollHandler) GetPayslips(w http.ResponseWriter, r *http.Request) {
	ref := time.Now().UTC()
	if weekStr := r.URL.Query().Get("week"); weekStr != "" {
		parsed, err := time.Parse("2006-01-02", weekStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid week date, expected YYYY-MM-DD")
			return
		}
		ref = parsed
	}

	bookings, err := h.BookingRepo.GetBookings(map[string]interface{}{
		"status": string(models.BookingDelivered),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	advances, err := h.AdvanceRepo.GetCashAdvances(nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	payslips := finance.BuildPayslips(bookings, advances, ref)
	if payslips == nil {
		payslips = []finance.Payslip{}
	}

	weekStart, weekEnd := finance.WeekBounds(ref)
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "OK",
		Data: map[string]interface{}{
			"week_start": weekStart.Format("2006-01-02"),
			"week_end":   weekEnd.AddDate(0, 0, -1).Format("2006-01-02"),
			"payslips":   payslips,
		},
	})
}
