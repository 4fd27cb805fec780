package repository

import (
	"time"

	"pacifictrucking/models"
)

type InvoiceRepository interface {
	// CreateForBooking inserts the invoice unless one already exists for
	// its booking. Returns false when an existing invoice was found, so a
	// re-fired delivered transition is a no-op.
	CreateForBooking(inv *models.Invoice) (bool, error)
	GetInvoices(filters map[string]interface{}) ([]*models.Invoice, error)
	GetInvoiceByID(id string) (*models.Invoice, error)
	UpdateStatus(id string, status models.InvoiceStatus, paidAt *time.Time) error
	UpdatePDF(id string, url string, at time.Time) error
}
