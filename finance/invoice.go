package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"pacifictrucking/models"
)

// TaxDefaults are the company-wide tax settings applied to generated
// invoices. They come from configuration, not from the booking.
type TaxDefaults struct {
	VATRegistered   bool
	IncomeTaxOption models.IncomeTaxOption
}

// GenerateInvoice derives the invoice for a delivered booking. The returned
// invoice carries no ID; the repository assigns one on insert, and
// InvoiceRepository.CreateForBooking guarantees at most one invoice per
// booking even when the delivered transition fires twice.
func GenerateInvoice(b *models.Booking, defaults TaxDefaults, now time.Time) *models.Invoice {
	gross := decimal.NewFromFloat(b.BookingRate)
	breakdown := ComputeTax(TaxInput{
		GrossSales:      gross,
		VATRegistered:   defaults.VATRegistered,
		IncomeTaxOption: defaults.IncomeTaxOption,
	})

	return &models.Invoice{
		BookingID:           b.ID,
		ClientName:          b.ClientName,
		GrossSales:          gross.InexactFloat64(),
		VATRegistered:       defaults.VATRegistered,
		IncomeTaxOption:     defaults.IncomeTaxOption,
		VATAmount:           breakdown.VATAmount.InexactFloat64(),
		PercentageTaxAmount: breakdown.PercentageTaxAmount.InexactFloat64(),
		IncomeTaxAmount:     breakdown.IncomeTaxAmount.InexactFloat64(),
		EWTAmount:           EWT(gross, b.EWTApplied).InexactFloat64(),
		NetRevenue:          breakdown.NetRevenue.InexactFloat64(),
		Status:              models.InvoiceUnpaid,
		DueDate:             b.DueDate,
		CreatedAt:           now,
	}
}
