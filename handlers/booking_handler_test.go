package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacifictrucking/finance"
	"pacifictrucking/models"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	costs    []finance.RoutedCost
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*models.Booking{}}
}

func (r *fakeBookingRepo) CreateBooking(b *models.Booking, costs []finance.RoutedCost) error {
	if b.ID == "" {
		b.ID = "bk-1"
	}
	r.bookings[b.ID] = b
	r.costs = append(r.costs, costs...)
	return nil
}

func (r *fakeBookingRepo) UpdateBooking(b *models.Booking, costs []finance.RoutedCost) error {
	r.bookings[b.ID] = b
	r.costs = costs
	return nil
}

func (r *fakeBookingRepo) GetBookings(filters map[string]interface{}) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) GetBookingByID(id string) (*models.Booking, error) {
	return r.bookings[id], nil
}

func (r *fakeBookingRepo) UpdateStatus(id string, status models.BookingStatus, completion *time.Time) error {
	b := r.bookings[id]
	b.Status = status
	if completion != nil {
		b.CompletionDate = completion
	}
	return nil
}

func (r *fakeBookingRepo) DeleteBooking(id string) error {
	delete(r.bookings, id)
	return nil
}

type fakeInvoiceRepo struct {
	byBooking map[string]*models.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{byBooking: map[string]*models.Invoice{}}
}

func (r *fakeInvoiceRepo) CreateForBooking(inv *models.Invoice) (bool, error) {
	if _, ok := r.byBooking[inv.BookingID]; ok {
		return false, nil
	}
	inv.ID = "inv-" + inv.BookingID
	r.byBooking[inv.BookingID] = inv
	return true, nil
}

func (r *fakeInvoiceRepo) GetInvoices(filters map[string]interface{}) ([]*models.Invoice, error) {
	var out []*models.Invoice
	for _, inv := range r.byBooking {
		out = append(out, inv)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) GetInvoiceByID(id string) (*models.Invoice, error) { return nil, nil }

func (r *fakeInvoiceRepo) UpdateStatus(id string, status models.InvoiceStatus, paidAt *time.Time) error {
	return nil
}

func (r *fakeInvoiceRepo) UpdatePDF(id string, url string, at time.Time) error { return nil }

func testBooking() *models.Booking {
	return &models.Booking{
		ID:          "bk-1",
		ClientName:  "Acme Mills",
		VehicleType: "10-wheeler",
		Origin:      "Manila",
		Destination: "Batangas",
		BookingDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		BillingDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DueDate:     time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		DriverID:    "drv-1",
		DriverName:  "Ramon Cruz",
		BookingRate: 50000,
		DriverRate:  5000,
		ExpectedExpenses: models.ExpectedExpenses{
			TollFee: 1200,
			Fuel:    6000,
		},
		ExpensePaymentMethod: models.PaymentCash,
		Status:               models.BookingPendingVerification,
	}
}

func newTestHandler(repo *fakeBookingRepo, invRepo *fakeInvoiceRepo) *BookingHandler {
	return &BookingHandler{
		Repo:        repo,
		InvoiceRepo: invRepo,
		TaxDefaults: finance.TaxDefaults{
			VATRegistered:   true,
			IncomeTaxOption: models.IncomeTaxFlat8,
		},
		Now: func() time.Time { return time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC) },
	}
}

func patchStatus(h *BookingHandler, id string, status models.BookingStatus, role string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"status": string(status)})
	req := httptest.NewRequest(http.MethodPatch, "/bookings/status?id="+id, bytes.NewReader(body))
	if role != "" {
		req.Header.Set("X-User-Role", role)
	}
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)
	return rec
}

func TestCreateBookingRoutesMobilizationCosts(t *testing.T) {
	repo := newFakeBookingRepo()
	h := newTestHandler(repo, newFakeInvoiceRepo())

	b := testBooking()
	b.Status = ""
	body, _ := json.Marshal(b)
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateBooking(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	// driver rate, toll fee, fuel; others is zero and skipped
	assert.Len(t, repo.costs, 3)
	for _, c := range repo.costs {
		assert.NotNil(t, c.Expense)
		assert.Nil(t, c.Reimbursement)
	}
	assert.Equal(t, models.BookingPending, repo.bookings["bk-1"].Status)
}

func TestCreateBookingCreditWithoutCreditorRejected(t *testing.T) {
	repo := newFakeBookingRepo()
	h := newTestHandler(repo, newFakeInvoiceRepo())

	b := testBooking()
	b.ExpensePaymentMethod = models.PaymentCredit
	b.CreditedTo = ""
	body, _ := json.Marshal(b)
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateBooking(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.bookings)
}

func TestDeliveredTransitionGeneratesInvoiceOnce(t *testing.T) {
	repo := newFakeBookingRepo()
	invRepo := newFakeInvoiceRepo()
	h := newTestHandler(repo, invRepo)
	repo.bookings["bk-1"] = testBooking()

	rec := patchStatus(h, "bk-1", models.BookingDelivered, "")
	require.Equal(t, http.StatusOK, rec.Code)

	inv := invRepo.byBooking["bk-1"]
	require.NotNil(t, inv)
	assert.Equal(t, models.InvoiceUnpaid, inv.Status)
	assert.Equal(t, 50000.0, inv.GrossSales)
	assert.Equal(t, 6000.0, inv.VATAmount)
	assert.NotNil(t, repo.bookings["bk-1"].CompletionDate)

	// Re-firing the delivered transition as an admin correction must not
	// create a second invoice.
	rec = patchStatus(h, "bk-1", models.BookingDelivered, "admin")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, invRepo.byBooking, 1)
}

func TestIllegalTransitionRequiresDispatcherRole(t *testing.T) {
	repo := newFakeBookingRepo()
	h := newTestHandler(repo, newFakeInvoiceRepo())
	b := testBooking()
	b.Status = models.BookingPending
	repo.bookings["bk-1"] = b

	// pending cannot jump straight to delivered
	rec := patchStatus(h, "bk-1", models.BookingDelivered, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = patchStatus(h, "bk-1", models.BookingDelivered, "accounting")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = patchStatus(h, "bk-1", models.BookingDelivered, "dispatcher")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.BookingDelivered, repo.bookings["bk-1"].Status)
}

func TestUpdateBookingPreservesStatusAndReroutesCosts(t *testing.T) {
	repo := newFakeBookingRepo()
	h := newTestHandler(repo, newFakeInvoiceRepo())
	existing := testBooking()
	existing.Status = models.BookingEnRoute
	repo.bookings["bk-1"] = existing

	updated := testBooking()
	updated.Status = models.BookingDelivered // ignored; status is not editable here
	updated.ExpectedExpenses.Fuel = 7000
	updated.ExpectedExpenses.TollFee = 0
	body, _ := json.Marshal(updated)
	req := httptest.NewRequest(http.MethodPut, "/bookings", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.UpdateBooking(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.BookingEnRoute, repo.bookings["bk-1"].Status)
	// driver rate and fuel only; toll fee dropped to zero
	assert.Len(t, repo.costs, 2)
}
