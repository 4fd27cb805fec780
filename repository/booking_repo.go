package repository

import (
	"time"

	"pacifictrucking/finance"
	"pacifictrucking/models"
)

// BookingRepository persists bookings together with their mobilization cost
// documents. Create and Update take the already-routed costs so the whole
// save lands in one transaction; Update uses delete-then-recreate for the
// mobilization docs rather than diffing them.
type BookingRepository interface {
	CreateBooking(b *models.Booking, costs []finance.RoutedCost) error
	UpdateBooking(b *models.Booking, costs []finance.RoutedCost) error
	GetBookings(filters map[string]interface{}) ([]*models.Booking, error)
	GetBookingByID(id string) (*models.Booking, error)
	UpdateStatus(id string, status models.BookingStatus, completion *time.Time) error
	// DeleteBooking cascades to the booking's expenses and reimbursements.
	DeleteBooking(id string) error
}
