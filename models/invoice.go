package models

import "time"

// Invoice is derived one-to-one from a delivered booking. Tax amounts are
// mutually exclusive: a VAT-registered invoice never carries percentage tax
// and vice versa. EWTAmount is informational and never deducted.
type Invoice struct {
	ID                  string          `json:"id" bson:"_id,omitempty" db:"id"`
	BookingID           string          `json:"booking_id" bson:"booking_id" db:"booking_id"`
	ClientName          string          `json:"client_name" bson:"client_name" db:"client_name"`
	GrossSales          float64         `json:"gross_sales" bson:"gross_sales" db:"gross_sales"`
	VATRegistered       bool            `json:"vat_registered" bson:"vat_registered" db:"vat_registered"`
	IncomeTaxOption     IncomeTaxOption `json:"income_tax_option" bson:"income_tax_option" db:"income_tax_option"`
	VATAmount           float64         `json:"vat_amount" bson:"vat_amount" db:"vat_amount"`
	PercentageTaxAmount float64         `json:"percentage_tax_amount" bson:"percentage_tax_amount" db:"percentage_tax_amount"`
	IncomeTaxAmount     float64         `json:"income_tax_amount" bson:"income_tax_amount" db:"income_tax_amount"`
	EWTAmount           float64         `json:"ewt_amount" bson:"ewt_amount" db:"ewt_amount"`
	NetRevenue          float64         `json:"net_revenue" bson:"net_revenue" db:"net_revenue"`
	Status              InvoiceStatus   `json:"status" bson:"status" db:"status"`
	DueDate             time.Time       `json:"due_date" bson:"due_date" db:"due_date"`
	PaidAt              *time.Time      `json:"paid_at,omitempty" bson:"paid_at,omitempty" db:"paid_at"`
	PDFURL              *string         `json:"pdf_url,omitempty" bson:"pdf_url,omitempty" db:"pdf_url"`
	PDFCreatedAt        *time.Time      `json:"pdf_created_at,omitempty" bson:"pdf_created_at,omitempty" db:"pdf_created_at"`
	CreatedAt           time.Time       `json:"created_at" bson:"created_at" db:"created_at"`
}
