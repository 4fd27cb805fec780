package models

// BookingStatus is the delivery lifecycle of a booking. Transitions move
// forward only; dispatcher corrections are the single exception and are
// enforced at the handler level, not here.
type BookingStatus string

const (
	BookingPending             BookingStatus = "pending"
	BookingEnRoute             BookingStatus = "en-route"
	BookingPendingVerification BookingStatus = "pending-verification"
	BookingDelivered           BookingStatus = "delivered"
	BookingCancelled           BookingStatus = "cancelled"
)

var forwardTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:             {BookingEnRoute, BookingCancelled},
	BookingEnRoute:             {BookingPendingVerification, BookingCancelled},
	BookingPendingVerification: {BookingDelivered, BookingCancelled},
	BookingDelivered:           {},
	BookingCancelled:           {},
}

func (s BookingStatus) Valid() bool {
	_, ok := forwardTransitions[s]
	return ok
}

// CanAdvanceTo reports whether next is a legal forward transition from s.
func (s BookingStatus) CanAdvanceTo(next BookingStatus) bool {
	for _, t := range forwardTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

type InvoiceStatus string

const (
	InvoiceUnpaid  InvoiceStatus = "Unpaid"
	InvoicePaid    InvoiceStatus = "Paid"
	InvoiceOverdue InvoiceStatus = "Overdue"
)

func (s InvoiceStatus) Valid() bool {
	return s == InvoiceUnpaid || s == InvoicePaid || s == InvoiceOverdue
}

type ReimbursementStatus string

const (
	ReimbursementPending    ReimbursementStatus = "Pending"
	ReimbursementLiquidated ReimbursementStatus = "Liquidated"
)

// PaymentMethod says how a cost was funded. Credit-funded costs become
// reimbursement requests instead of direct expenses.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentBank   PaymentMethod = "bank"
	PaymentCredit PaymentMethod = "credit"
	PaymentPTS    PaymentMethod = "PTS"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentBank || m == PaymentCredit || m == PaymentPTS
}

type ExpenseCategory string

const (
	CategoryDriverRate           ExpenseCategory = "driver_rate"
	CategoryTollFee              ExpenseCategory = "toll_fee"
	CategoryFuel                 ExpenseCategory = "fuel"
	CategoryClientRepresentation ExpenseCategory = "client_representation"
	CategoryCashAdvance          ExpenseCategory = "cash_advance"
	CategoryOthers               ExpenseCategory = "others"
)

// Mobilization reports whether the category is auto-logged on booking save.
func (c ExpenseCategory) Mobilization() bool {
	switch c {
	case CategoryDriverRate, CategoryTollFee, CategoryFuel, CategoryClientRepresentation:
		return true
	}
	return false
}

type IncomeTaxOption string

const (
	IncomeTaxFlat8     IncomeTaxOption = "8_percent_flat"
	IncomeTaxGraduated IncomeTaxOption = "graduated"
)

func (o IncomeTaxOption) Valid() bool {
	return o == IncomeTaxFlat8 || o == IncomeTaxGraduated
}

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleDispatcher UserRole = "dispatcher"
	RoleAccounting UserRole = "accounting"
)
