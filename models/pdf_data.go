package models

type InvoicePDFData struct {
	Company    *CompanyProfile // company header block
	Invoice    *Invoice
	Booking    *Booking
	Contacts   string // formatted mobile numbers
	Date       string // formatted invoice date
	DueDate    string
	GrossSales string // ₱-formatted figures
	VAT        string
	Percentage string
	IncomeTax  string
	EWT        string
	NetRevenue string
	TotalWords string
	EWTApplied bool
}
