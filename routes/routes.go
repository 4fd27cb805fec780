package routes

import (
	"net/http"

	"pacifictrucking/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-User-Role")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func handle(pattern string, h http.HandlerFunc) {
	http.Handle(pattern, withCORS(http.HandlerFunc(handlers.RecoverWrapper(h))))
}

func SetupRoutes(
	userHandler *handlers.UserHandler,
	bookingHandler *handlers.BookingHandler,
	invoiceHandler *handlers.InvoiceHandler,
	expenseHandler *handlers.ExpenseHandler,
	advanceHandler *handlers.CashAdvanceHandler,
	reimbursementHandler *handlers.ReimbursementHandler,
	fundHandler *handlers.FundHandler,
	companyHandler *handlers.CompanyHandler,
	payrollHandler *handlers.PayrollHandler,
	reportsHandler *handlers.ReportsHandler,
	pdfHandler *handlers.PDFHandler,
) {
	// User routes
	handle("/signup", userHandler.Signup)
	handle("/login", userHandler.Login)

	// Booking routes
	handle("/bookings", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			bookingHandler.CreateBooking(w, r)
		case http.MethodGet:
			bookingHandler.GetAllBookings(w, r)
		case http.MethodPut:
			bookingHandler.UpdateBooking(w, r)
		case http.MethodDelete:
			bookingHandler.DeleteBooking(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/bookings/status", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		bookingHandler.UpdateStatus(w, r)
	})
	handle("/bookings/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/bookings/"):]
		if id != "" {
			bookingHandler.GetBookingByID(w, r, id)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	// Invoice routes
	handle("/invoices", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		invoiceHandler.GetAllInvoices(w, r)
	})
	handle("/invoices/status", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		invoiceHandler.UpdateStatus(w, r)
	})
	handle("/invoices/pdf", pdfHandler.InvoicePDF)
	handle("/invoices/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/invoices/"):]
		if id != "" {
			invoiceHandler.GetInvoiceByID(w, r, id)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	// Expense routes
	handle("/expenses", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			expenseHandler.CreateExpense(w, r)
		case http.MethodGet:
			expenseHandler.GetAllExpenses(w, r)
		case http.MethodDelete:
			expenseHandler.DeleteExpense(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Cash advance routes
	handle("/cash-advances", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			advanceHandler.CreateCashAdvance(w, r)
		case http.MethodGet:
			advanceHandler.GetAllCashAdvances(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Reimbursement routes
	handle("/reimbursements", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		reimbursementHandler.GetAllReimbursements(w, r)
	})
	handle("/reimbursements/liquidate", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		reimbursementHandler.Liquidate(w, r)
	})

	// Revolving fund routes
	handle("/funds", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			fundHandler.CreateContribution(w, r)
		case http.MethodGet:
			fundHandler.GetAllContributions(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Company profile routes
	handle("/company", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			companyHandler.SaveProfile(w, r)
		case http.MethodGet:
			companyHandler.GetProfile(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Payroll
	handle("/payroll", payrollHandler.GetPayslips)

	// Dashboard reports
	handle("/reports/profit-by-client", reportsHandler.ProfitByClient)
	handle("/reports/profit-by-vehicle-type", reportsHandler.ProfitByVehicleType)
	handle("/reports/cash-on-hand", reportsHandler.CashOnHand)
	handle("/reports/outstanding-payments", reportsHandler.OutstandingPayments)
	handle("/reports/upcoming-billings", reportsHandler.UpcomingBillings)
	handle("/reports/tax-summary", reportsHandler.TaxSummary)
}
