package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pacifictrucking/models"
)

func TestGenerateInvoice(t *testing.T) {
	due := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, time.February, 20, 10, 0, 0, 0, time.UTC)
	booking := &models.Booking{
		ID:          "bk-1",
		ClientName:  "San Miguel Foods",
		BookingRate: 300000,
		DueDate:     due,
		Status:      models.BookingDelivered,
	}

	inv := GenerateInvoice(booking, TaxDefaults{VATRegistered: false, IncomeTaxOption: models.IncomeTaxFlat8}, now)

	assert.Empty(t, inv.ID, "repository assigns the ID")
	assert.Equal(t, "bk-1", inv.BookingID)
	assert.Equal(t, "San Miguel Foods", inv.ClientName)
	assert.Equal(t, 300000.0, inv.GrossSales)
	assert.False(t, inv.VATRegistered)
	assert.Equal(t, models.IncomeTaxFlat8, inv.IncomeTaxOption)
	assert.Equal(t, 0.0, inv.VATAmount)
	assert.Equal(t, 0.0, inv.PercentageTaxAmount)
	assert.Equal(t, 4000.0, inv.IncomeTaxAmount)
	assert.Equal(t, 296000.0, inv.NetRevenue)
	assert.Equal(t, 0.0, inv.EWTAmount)
	assert.Equal(t, models.InvoiceUnpaid, inv.Status)
	assert.Equal(t, due, inv.DueDate)
	assert.Equal(t, now, inv.CreatedAt)
}

func TestGenerateInvoiceEWTApplied(t *testing.T) {
	booking := &models.Booking{ID: "bk-2", BookingRate: 100000, EWTApplied: true}

	inv := GenerateInvoice(booking, TaxDefaults{VATRegistered: false, IncomeTaxOption: models.IncomeTaxFlat8}, time.Now())

	// EWT is reported but never deducted from net revenue.
	assert.Equal(t, 2000.0, inv.EWTAmount)
	assert.Equal(t, 100000.0, inv.NetRevenue)
}

func TestGenerateInvoiceVATDefaults(t *testing.T) {
	booking := &models.Booking{ID: "bk-3", BookingRate: 100000}

	inv := GenerateInvoice(booking, TaxDefaults{VATRegistered: true, IncomeTaxOption: models.IncomeTaxGraduated}, time.Now())

	assert.True(t, inv.VATRegistered)
	assert.Equal(t, 12000.0, inv.VATAmount)
	assert.Equal(t, 0.0, inv.PercentageTaxAmount, "vat-registered invoices carry no percentage tax")
	assert.Equal(t, 0.0, inv.IncomeTaxAmount, "100k is under the first graduated bracket")
	assert.Equal(t, 88000.0, inv.NetRevenue)
}
