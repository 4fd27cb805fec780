package handlers

import (
	"net/http"
	"time"

	"pacifictrucking/finance"
	"pacifictrucking/models"
	"pacifictrucking/repository"
)

// ReportsHandler serves the dashboard rollups. Every report accepts a
// ?filter= of Overall, Annual, Monthly, or Weekly; figures are recomputed
// from the source records on each request.
type ReportsHandler struct {
	BookingRepo repository.BookingRepository
	InvoiceRepo repository.InvoiceRepository
	ExpenseRepo repository.ExpenseRepository
	FundRepo    repository.FundRepository
}

func periodStart(r *http.Request, now time.Time) (time.Time, bool) {
	period, err := finance.ParsePeriod(r.URL.Query().Get("filter"))
	if err != nil {
		return time.Time{}, false
	}
	return period.Start(now), true
}

// ProfitByClient handler
func (h *ReportsHandler) ProfitByClient(w http.ResponseWriter, r *http.Request) {
	since, ok := periodStart(r, time.Now().UTC())
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid period filter")
		return
	}

	bookings, err := h.BookingRepo.GetBookings(nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "OK",
		Data:    finance.ProfitByClient(bookings, since),
	})
}

// ProfitByVehicleType handler
func (h *ReportsHandler) ProfitByVehicleType(w http.ResponseWriter, r *http.Request) {
	since, ok := periodStart(r, time.Now().UTC())
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid period filter")
		return
	}

	bookings, err := h.BookingRepo.GetBookings(nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "OK",
		Data:    finance.ProfitByVehicleType(bookings, since),
	})
}

// CashOnHand handler
func (h *ReportsHandler) CashOnHand(w http.ResponseWriter, r *http.Request) {
	since, ok := periodStart(r, time.Now().UTC())
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid period filter")
		return
	}

	invoices, err := h.InvoiceRepo.GetInvoices(nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	funds, err := h.FundRepo.GetContributions(nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	expenses, err := h.ExpenseRepo.GetExpenses(nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "OK",
		Data: map[string]interface{}{
			"cash_on_hand": finance.CashOnHand(invoices, funds, expenses, since),
		},
	})
}

// OutstandingPayments handler
func (h *ReportsHandler) OutstandingPayments(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.InvoiceRepo.GetInvoices(nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	outstanding := finance.OutstandingPayments(invoices, time.Now().UTC())
	if outstanding == nil {
		outstanding = []finance.OutstandingInvoice{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "OK", Data: outstanding})
}

// UpcomingBillings handler
func (h *ReportsHandler) UpcomingBillings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.BookingRepo.GetBookings(nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	invoices, err := h.InvoiceRepo.GetInvoices(nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	upcoming := finance.UpcomingBillings(bookings, invoices, time.Now().UTC())
	if upcoming == nil {
		upcoming = []*models.Booking{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "OK", Data: upcoming})
}

// TaxSummary handler
func (h *ReportsHandler) TaxSummary(w http.ResponseWriter, r *http.Request) {
	since, ok := periodStart(r, time.Now().UTC())
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid period filter")
		return
	}

	invoices, err := h.InvoiceRepo.GetInvoices(nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	expenses, err := h.ExpenseRepo.GetExpenses(nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "OK",
		Data:    finance.TaxSummary(invoices, expenses, since),
	})
}
