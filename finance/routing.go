package finance

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"pacifictrucking/models"
)

// ErrCreditedToRequired aborts credit-funded entries that name no owner to
// credit. Nothing is written when this is returned.
var ErrCreditedToRequired = errors.New("credited_to is required when paid by credit")

// CostEntry is a cost about to be recorded: a manual expense, a mobilization
// line item, or a cash advance. Routing decides whether it lands as a direct
// Expense or as a Pending Reimbursement.
type CostEntry struct {
	Category    models.ExpenseCategory
	Description string
	Amount      decimal.Decimal
	VATIncluded bool
	PaidBy      models.PaymentMethod
	CreditedTo  string
	BookingID   string
	Date        time.Time
}

// RoutedCost holds exactly one of Expense or Reimbursement.
type RoutedCost struct {
	Expense       *models.Expense
	Reimbursement *models.Reimbursement
}

// RouteCost applies the payment-method bifurcation: credit-funded entries
// become Pending reimbursements, everything else is written as an expense
// with input VAT computed when the amount is VAT-inclusive.
func RouteCost(e CostEntry) (RoutedCost, error) {
	if e.PaidBy == models.PaymentCredit {
		if e.CreditedTo == "" {
			return RoutedCost{}, ErrCreditedToRequired
		}
		return RoutedCost{Reimbursement: &models.Reimbursement{
			Category:    e.Category,
			Description: e.Description,
			Amount:      e.Amount.InexactFloat64(),
			CreditedTo:  e.CreditedTo,
			BookingID:   e.BookingID,
			Status:      models.ReimbursementPending,
			Date:        e.Date,
		}}, nil
	}

	exp := &models.Expense{
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount.InexactFloat64(),
		VATIncluded: e.VATIncluded,
		PaidBy:      e.PaidBy,
		BookingID:   e.BookingID,
		Date:        e.Date,
	}
	if e.VATIncluded {
		exp.InputVAT = e.Amount.Mul(vatRate).InexactFloat64()
	}
	return RoutedCost{Expense: exp}, nil
}

// MobilizationEntries expands a booking into its per-category cost line
// items (driver rate, toll fee, fuel, others), all funded by the booking's
// payment method. Zero-amount lines are skipped.
func MobilizationEntries(b *models.Booking) []CostEntry {
	lines := []struct {
		category models.ExpenseCategory
		amount   float64
	}{
		{models.CategoryDriverRate, b.DriverRate},
		{models.CategoryTollFee, b.ExpectedExpenses.TollFee},
		{models.CategoryFuel, b.ExpectedExpenses.Fuel},
		{models.CategoryClientRepresentation, b.ExpectedExpenses.Others},
	}

	var out []CostEntry
	for _, l := range lines {
		if l.amount == 0 {
			continue
		}
		out = append(out, CostEntry{
			Category:    l.category,
			Description: b.ClientName + " / " + b.Destination,
			Amount:      decimal.NewFromFloat(l.amount),
			PaidBy:      b.ExpensePaymentMethod,
			CreditedTo:  b.CreditedTo,
			BookingID:   b.ID,
			Date:        b.BookingDate,
		})
	}
	return out
}

// RoutedAdvance holds exactly one of CashAdvance or Reimbursement.
type RoutedAdvance struct {
	CashAdvance   *models.CashAdvance
	Reimbursement *models.Reimbursement
}

// RouteCashAdvance applies the same bifurcation to driver advances: a
// credit-funded advance is not stored as a CashAdvance but parked as a
// Pending reimbursement carrying the driver identity, so liquidation can
// reconstruct the advance later.
func RouteCashAdvance(a *models.CashAdvance) (RoutedAdvance, error) {
	if a.PaidBy == models.PaymentCredit {
		if a.CreditedTo == "" {
			return RoutedAdvance{}, ErrCreditedToRequired
		}
		return RoutedAdvance{Reimbursement: &models.Reimbursement{
			Category:   models.CategoryCashAdvance,
			Amount:     a.Amount,
			CreditedTo: a.CreditedTo,
			DriverID:   a.DriverID,
			DriverName: a.DriverName,
			Status:     models.ReimbursementPending,
			Date:       a.Date,
		}}, nil
	}
	return RoutedAdvance{CashAdvance: a}, nil
}

// Liquidated is the record produced by liquidating a pending reimbursement.
type Liquidated struct {
	Expense     *models.Expense
	CashAdvance *models.CashAdvance
}

// Liquidate converts a Pending reimbursement into its official record: a
// CashAdvance when the category is cash_advance, an Expense otherwise. The
// reimbursement itself is mutated to Liquidated in place; persisting both
// writes atomically is the repository's job.
func Liquidate(r *models.Reimbursement, liquidatedBy string, now time.Time) Liquidated {
	r.Status = models.ReimbursementLiquidated
	r.LiquidatedBy = &liquidatedBy
	r.LiquidatedAt = &now

	if r.Category == models.CategoryCashAdvance {
		return Liquidated{CashAdvance: &models.CashAdvance{
			DriverID:   r.DriverID,
			DriverName: r.DriverName,
			Amount:     r.Amount,
			Date:       r.Date,
			PaidBy:     models.PaymentCredit,
			CreditedTo: r.CreditedTo,
		}}
	}

	return Liquidated{Expense: &models.Expense{
		Category:    r.Category,
		Description: r.Description,
		Amount:      r.Amount,
		PaidBy:      models.PaymentCredit,
		BookingID:   r.BookingID,
		Date:        r.Date,
	}}
}
