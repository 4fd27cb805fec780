package repository

import "pacifictrucking/models"

// PDFRepository gathers everything the invoice PDF needs in one place.
type PDFRepository struct {
	InvoiceRepo InvoiceRepository
	BookingRepo BookingRepository
	CompanyRepo CompanyRepository
}

func (r *PDFRepository) GetInvoiceForPDF(id string) (*models.Invoice, *models.Booking, error) {
	inv, err := r.InvoiceRepo.GetInvoiceByID(id)
	if err != nil || inv == nil {
		return nil, nil, err
	}
	booking, err := r.BookingRepo.GetBookingByID(inv.BookingID)
	if err != nil {
		return nil, nil, err
	}
	return inv, booking, nil
}

func (r *PDFRepository) GetCompanyForPDF() (*models.CompanyProfile, error) {
	return r.CompanyRepo.GetProfile()
}
