package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pacifictrucking/config"
	"pacifictrucking/finance"
	"pacifictrucking/models"
	"pacifictrucking/repository"
)

type BookingHandler struct {
	Repo        repository.BookingRepository
	InvoiceRepo repository.InvoiceRepository
	TaxDefaults finance.TaxDefaults
	Now         func() time.Time
}

func (h *BookingHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().UTC()
}

// routeMobilization expands the booking's cost estimates into routed
// expense/reimbursement documents. A credit booking without a creditor is
// rejected before anything is written.
func routeMobilization(b *models.Booking) ([]finance.RoutedCost, error) {
	var costs []finance.RoutedCost
	for _, entry := range finance.MobilizationEntries(b) {
		routed, err := finance.RouteCost(entry)
		if err != nil {
			return nil, err
		}
		costs = append(costs, routed)
	}
	return costs, nil
}

func validateBooking(b *models.Booking) string {
	switch {
	case b.ClientName == "":
		return "client_name is required"
	case b.DriverID == "" || b.DriverName == "":
		return "driver_id and driver_name are required"
	case b.BookingRate <= 0:
		return "booking_rate must be positive"
	case !b.ExpensePaymentMethod.Valid():
		return "invalid expense_payment_method"
	}
	return ""
}

// CreateBooking handler
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var booking models.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if msg := validateBooking(&booking); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if booking.Status == "" {
		booking.Status = models.BookingPending
	}
	if !booking.Status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid booking status")
		return
	}

	costs, err := routeMobilization(&booking)
	if err != nil {
		if errors.Is(err, finance.ErrCreditedToRequired) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.Repo.CreateBooking(&booking, costs); err != nil {
		config.LogError(config.GetLogger(), "handlers", "CreateBooking", "create booking", booking.ClientName, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Booking created",
		Data:    booking,
	})
}

// UpdateBooking rewrites the booking and regenerates its mobilization cost
// documents from the new figures.
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	var booking models.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if booking.ID == "" {
		writeError(w, http.StatusBadRequest, "missing booking id")
		return
	}

	existing, err := h.Repo.GetBookingByID(booking.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Booking not found")
		return
	}

	if msg := validateBooking(&booking); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	// Status changes go through the dedicated endpoint
	booking.Status = existing.Status
	booking.CompletionDate = existing.CompletionDate
	booking.CreatedAt = existing.CreatedAt
	now := h.now()
	booking.UpdatedAt = &now

	costs, err := routeMobilization(&booking)
	if err != nil {
		if errors.Is(err, finance.ErrCreditedToRequired) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.Repo.UpdateBooking(&booking, costs); err != nil {
		config.LogError(config.GetLogger(), "handlers", "UpdateBooking", "update booking", booking.ID, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Booking updated",
		Data:    booking,
	})
}

// GetAllBookings handler
func (h *BookingHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	list, err := h.Repo.GetBookings(filters)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if list == nil {
		list = []*models.Booking{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "OK", Data: list})
}

// GetBookingByID handler
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request, id string) {
	booking, err := h.Repo.GetBookingByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if booking == nil {
		writeError(w, http.StatusNotFound, "Booking not found")
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "OK", Data: booking})
}

// UpdateStatus advances the booking lifecycle. Illegal jumps are allowed
// only as corrections by a dispatcher or admin. Reaching delivered stamps
// the completion date and generates the invoice exactly once.
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing booking id")
		return
	}

	var body struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if !body.Status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid booking status")
		return
	}

	booking, err := h.Repo.GetBookingByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if booking == nil {
		writeError(w, http.StatusNotFound, "Booking not found")
		return
	}

	if !booking.Status.CanAdvanceTo(body.Status) {
		role := models.UserRole(r.Header.Get("X-User-Role"))
		if role != models.RoleDispatcher && role != models.RoleAdmin {
			writeError(w, http.StatusConflict, "illegal status transition from "+string(booking.Status))
			return
		}
	}

	var completion *time.Time
	if body.Status == models.BookingDelivered {
		now := h.now()
		completion = &now
	}

	if err := h.Repo.UpdateStatus(id, body.Status, completion); err != nil {
		config.LogError(config.GetLogger(), "handlers", "UpdateStatus", "update booking status", id, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	booking.Status = body.Status
	if completion != nil {
		booking.CompletionDate = completion
	}

	message := "Booking status updated"
	if body.Status == models.BookingDelivered {
		invoice := finance.GenerateInvoice(booking, h.TaxDefaults, h.now())
		created, err := h.InvoiceRepo.CreateForBooking(invoice)
		if err != nil {
			config.LogError(config.GetLogger(), "handlers", "UpdateStatus", "generate invoice", id, err)
			writeError(w, http.StatusInternalServerError, "booking delivered but invoice failed: "+err.Error())
			return
		}
		if created {
			message = "Booking delivered, invoice generated"
		} else {
			message = "Booking delivered, invoice already exists"
		}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: message, Data: booking})
}

// DeleteBooking removes the booking and its mobilization expense and
// reimbursement documents.
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing booking id")
		return
	}

	if err := h.Repo.DeleteBooking(id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete booking: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Booking deleted successfully"})
}
