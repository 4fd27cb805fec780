package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacifictrucking/models"
)

func TestRouteCostCreditRequiresCreditedTo(t *testing.T) {
	_, err := RouteCost(CostEntry{
		Category: models.CategoryFuel,
		Amount:   decimal.NewFromInt(1500),
		PaidBy:   models.PaymentCredit,
	})
	require.ErrorIs(t, err, ErrCreditedToRequired)
}

func TestRouteCostCreditBecomesReimbursement(t *testing.T) {
	date := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	routed, err := RouteCost(CostEntry{
		Category:   models.CategoryTollFee,
		Amount:     decimal.NewFromInt(800),
		PaidBy:     models.PaymentCredit,
		CreditedTo: "R. Villanueva",
		BookingID:  "bk-9",
		Date:       date,
	})
	require.NoError(t, err)
	require.Nil(t, routed.Expense)
	require.NotNil(t, routed.Reimbursement)

	r := routed.Reimbursement
	assert.Equal(t, models.ReimbursementPending, r.Status)
	assert.Equal(t, "R. Villanueva", r.CreditedTo)
	assert.Equal(t, 800.0, r.Amount)
	assert.Equal(t, "bk-9", r.BookingID)
	assert.Equal(t, date, r.Date)
}

func TestRouteCostDirectExpense(t *testing.T) {
	for _, method := range []models.PaymentMethod{models.PaymentCash, models.PaymentBank, models.PaymentPTS} {
		routed, err := RouteCost(CostEntry{
			Category:    models.CategoryFuel,
			Amount:      decimal.NewFromInt(5600),
			VATIncluded: true,
			PaidBy:      method,
		})
		require.NoError(t, err)
		require.Nil(t, routed.Reimbursement)
		require.NotNil(t, routed.Expense, "method %s writes a direct expense", method)
		assert.Equal(t, 672.0, routed.Expense.InputVAT, "input vat is 12%% when vat-included")
	}
}

func TestRouteCostNoInputVATWhenNotIncluded(t *testing.T) {
	routed, err := RouteCost(CostEntry{
		Category: models.CategoryOthers,
		Amount:   decimal.NewFromInt(1000),
		PaidBy:   models.PaymentCash,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, routed.Expense.InputVAT)
}

func TestMobilizationEntries(t *testing.T) {
	b := &models.Booking{
		ID:          "bk-4",
		ClientName:  "Del Monte",
		Destination: "Cagayan de Oro",
		DriverRate:  5000,
		ExpectedExpenses: models.ExpectedExpenses{
			TollFee: 200,
			Fuel:    300,
			Others:  0,
		},
		ExpensePaymentMethod: models.PaymentCash,
		BookingDate:          time.Date(2026, time.January, 6, 0, 0, 0, 0, time.UTC),
	}

	entries := MobilizationEntries(b)
	require.Len(t, entries, 3, "zero-amount lines are skipped")

	categories := []models.ExpenseCategory{entries[0].Category, entries[1].Category, entries[2].Category}
	assert.Equal(t, []models.ExpenseCategory{models.CategoryDriverRate, models.CategoryTollFee, models.CategoryFuel}, categories)
	for _, e := range entries {
		assert.Equal(t, models.PaymentCash, e.PaidBy)
		assert.Equal(t, "bk-4", e.BookingID)
		assert.True(t, e.Category.Mobilization())
	}
	assert.True(t, entries[0].Amount.Equal(decimal.NewFromInt(5000)))
}

func TestRouteCashAdvanceCredit(t *testing.T) {
	adv := &models.CashAdvance{
		DriverID:   "drv-1",
		DriverName: "E. Santos",
		Amount:     2000,
		Date:       time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC),
		PaidBy:     models.PaymentCredit,
		CreditedTo: "R. Villanueva",
	}

	routed, err := RouteCashAdvance(adv)
	require.NoError(t, err)
	require.Nil(t, routed.CashAdvance, "credit-funded advances are never stored directly")
	require.NotNil(t, routed.Reimbursement)

	r := routed.Reimbursement
	assert.Equal(t, models.CategoryCashAdvance, r.Category)
	assert.Equal(t, "drv-1", r.DriverID)
	assert.Equal(t, "E. Santos", r.DriverName)
	assert.Equal(t, models.ReimbursementPending, r.Status)
}

func TestRouteCashAdvanceCreditWithoutCreditedTo(t *testing.T) {
	_, err := RouteCashAdvance(&models.CashAdvance{PaidBy: models.PaymentCredit, Amount: 500})
	require.ErrorIs(t, err, ErrCreditedToRequired)
}

func TestRouteCashAdvancePTS(t *testing.T) {
	adv := &models.CashAdvance{DriverID: "drv-2", Amount: 1000, PaidBy: models.PaymentPTS}
	routed, err := RouteCashAdvance(adv)
	require.NoError(t, err)
	assert.Same(t, adv, routed.CashAdvance)
	assert.Nil(t, routed.Reimbursement)
}

func TestLiquidateExpenseCategory(t *testing.T) {
	now := time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC)
	r := &models.Reimbursement{
		ID:         "rb-1",
		Category:   models.CategoryFuel,
		Amount:     3200,
		CreditedTo: "R. Villanueva",
		BookingID:  "bk-5",
		Status:     models.ReimbursementPending,
		Date:       time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC),
	}

	out := Liquidate(r, "admin@pacifictrucking.ph", now)

	require.NotNil(t, out.Expense)
	require.Nil(t, out.CashAdvance)
	assert.Equal(t, models.CategoryFuel, out.Expense.Category)
	assert.Equal(t, 3200.0, out.Expense.Amount)
	assert.Equal(t, models.PaymentCredit, out.Expense.PaidBy)
	assert.Equal(t, "bk-5", out.Expense.BookingID)

	assert.Equal(t, models.ReimbursementLiquidated, r.Status)
	require.NotNil(t, r.LiquidatedBy)
	assert.Equal(t, "admin@pacifictrucking.ph", *r.LiquidatedBy)
	require.NotNil(t, r.LiquidatedAt)
	assert.Equal(t, now, *r.LiquidatedAt)
}

func TestLiquidateCashAdvanceCategory(t *testing.T) {
	r := &models.Reimbursement{
		ID:         "rb-2",
		Category:   models.CategoryCashAdvance,
		Amount:     2000,
		CreditedTo: "R. Villanueva",
		DriverID:   "drv-1",
		DriverName: "E. Santos",
		Status:     models.ReimbursementPending,
		Date:       time.Date(2026, time.January, 21, 0, 0, 0, 0, time.UTC),
	}

	out := Liquidate(r, "admin@pacifictrucking.ph", time.Now())

	require.Nil(t, out.Expense)
	require.NotNil(t, out.CashAdvance)
	assert.Equal(t, "drv-1", out.CashAdvance.DriverID)
	assert.Equal(t, 2000.0, out.CashAdvance.Amount)
	assert.Equal(t, models.PaymentCredit, out.CashAdvance.PaidBy)
	assert.Equal(t, models.ReimbursementLiquidated, r.Status)
}
