package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"pacifictrucking/config"
	"pacifictrucking/models"
	"pacifictrucking/repository"
)

type InvoiceHandler struct {
	Repo repository.InvoiceRepository
}

// GetAllInvoices handler
func (h *InvoiceHandler) GetAllInvoices(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	list, err := h.Repo.GetInvoices(filters)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if list == nil {
		list = []*models.Invoice{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "OK", Data: list})
}

// GetInvoiceByID handler
func (h *InvoiceHandler) GetInvoiceByID(w http.ResponseWriter, r *http.Request, id string) {
	invoice, err := h.Repo.GetInvoiceByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if invoice == nil {
		writeError(w, http.StatusNotFound, "Invoice not found")
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "OK", Data: invoice})
}

// UpdateStatus moves an invoice between Unpaid, Paid, and Overdue. Marking
// an invoice Paid stamps the payment date used by the cash-on-hand rollup.
func (h *InvoiceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing invoice id")
		return
	}

	var body struct {
		Status models.InvoiceStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if !body.Status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid invoice status")
		return
	}

	var paidAt *time.Time
	if body.Status == models.InvoicePaid {
		now := time.Now().UTC()
		paidAt = &now
	}

	if err := h.Repo.UpdateStatus(id, body.Status, paidAt); err != nil {
		config.LogError(config.GetLogger(), "handlers", "UpdateStatus", "update invoice status", id, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Invoice status updated"})
}
