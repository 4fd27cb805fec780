package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacifictrucking/models"
)

func delivered(client, vehicle string, rate, driverRate, toll, fuel, others float64, completed time.Time) *models.Booking {
	return &models.Booking{
		ClientName:  client,
		VehicleType: vehicle,
		BookingRate: rate,
		DriverRate:  driverRate,
		ExpectedExpenses: models.ExpectedExpenses{
			TollFee: toll,
			Fuel:    fuel,
			Others:  others,
		},
		Status:         models.BookingDelivered,
		CompletionDate: &completed,
	}
}

func TestBookingProfit(t *testing.T) {
	b := delivered("Del Monte", "10-wheeler", 8000, 5000, 200, 300, 0, day(2026, time.January, 10))
	assert.True(t, BookingProfit(b).Equal(decimal.NewFromInt(2500)), "profit = %s", BookingProfit(b))
}

func TestProfitByClient(t *testing.T) {
	jan10 := day(2026, time.January, 10)
	bookings := []*models.Booking{
		delivered("Del Monte", "10-wheeler", 8000, 5000, 200, 300, 0, jan10),
		delivered("Del Monte", "6-wheeler", 10000, 6000, 0, 1000, 0, jan10),
		delivered("San Miguel", "10-wheeler", 9000, 5000, 0, 0, 0, jan10),
		// Not delivered: excluded entirely.
		{ClientName: "San Miguel", BookingRate: 99999, Status: models.BookingEnRoute},
	}

	report := ProfitByClient(bookings, time.Time{})
	require.Len(t, report.Rows, 2)

	assert.Equal(t, "Del Monte", report.Rows[0].Label)
	assert.Equal(t, 2, report.Rows[0].Bookings)
	assert.True(t, report.Rows[0].Profit.Equal(decimal.NewFromInt(5500)))
	assert.Equal(t, "San Miguel", report.Rows[1].Label)
	assert.True(t, report.Rows[1].Profit.Equal(decimal.NewFromInt(4000)))
	assert.True(t, report.Total.Equal(decimal.NewFromInt(9500)))
}

func TestProfitByClientPeriodFilter(t *testing.T) {
	bookings := []*models.Booking{
		delivered("Del Monte", "10-wheeler", 8000, 5000, 200, 300, 0, day(2025, time.December, 20)),
		delivered("Del Monte", "10-wheeler", 8000, 5000, 200, 300, 0, day(2026, time.January, 10)),
	}

	report := ProfitByClient(bookings, day(2026, time.January, 1))
	require.Len(t, report.Rows, 1)
	assert.Equal(t, 1, report.Rows[0].Bookings, "completions before the period start are excluded")
}

func TestProfitByVehicleType(t *testing.T) {
	jan10 := day(2026, time.January, 10)
	bookings := []*models.Booking{
		delivered("A", "10-wheeler", 8000, 5000, 200, 300, 0, jan10),
		delivered("B", "10-wheeler", 9000, 5000, 0, 0, 0, jan10),
		delivered("C", "6-wheeler", 5000, 3000, 0, 500, 0, jan10),
	}

	report := ProfitByVehicleType(bookings, time.Time{})
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "10-wheeler", report.Rows[0].Label)
	assert.True(t, report.Rows[0].Profit.Equal(decimal.NewFromInt(6500)))
	assert.Equal(t, "6-wheeler", report.Rows[1].Label)
	assert.True(t, report.Rows[1].Profit.Equal(decimal.NewFromInt(1500)))
}

func TestCashOnHand(t *testing.T) {
	jan10 := day(2026, time.January, 10)
	invoices := []*models.Invoice{
		{GrossSales: 50000, Status: models.InvoicePaid, PaidAt: &jan10},
		{GrossSales: 30000, Status: models.InvoiceUnpaid}, // not collected
	}
	funds := []*models.RevolvingFundContribution{
		{Amount: 20000, Date: day(2026, time.January, 3)},
	}
	expenses := []*models.Expense{
		{Amount: 15000, Date: day(2026, time.January, 5)},
	}

	total := CashOnHand(invoices, funds, expenses, time.Time{})
	assert.True(t, total.Equal(decimal.NewFromInt(55000)), "cash on hand = %s", total)
}

func TestCashOnHandPeriodFilter(t *testing.T) {
	dec20 := day(2025, time.December, 20)
	invoices := []*models.Invoice{
		{GrossSales: 50000, Status: models.InvoicePaid, PaidAt: &dec20},
	}
	expenses := []*models.Expense{
		{Amount: 5000, Date: day(2026, time.January, 5)},
	}

	total := CashOnHand(invoices, nil, expenses, day(2026, time.January, 1))
	assert.True(t, total.Equal(decimal.NewFromInt(-5000)), "payment collected before the period is excluded")
}

func TestOutstandingPayments(t *testing.T) {
	now := day(2026, time.January, 20)
	invoices := []*models.Invoice{
		{ID: "inv-late", Status: models.InvoiceUnpaid, DueDate: day(2026, time.January, 10)},
		{ID: "inv-later", Status: models.InvoiceOverdue, DueDate: day(2026, time.January, 5)},
		{ID: "inv-future", Status: models.InvoiceUnpaid, DueDate: day(2026, time.February, 1)},
		{ID: "inv-paid", Status: models.InvoicePaid, DueDate: day(2026, time.January, 2)},
	}

	out := OutstandingPayments(invoices, now)
	require.Len(t, out, 2)
	assert.Equal(t, "inv-later", out[0].Invoice.ID, "sorted ascending by due date")
	assert.Equal(t, 15, out[0].DaysOverdue)
	assert.Equal(t, "inv-late", out[1].Invoice.ID)
	assert.Equal(t, 10, out[1].DaysOverdue)
}

func TestUpcomingBillings(t *testing.T) {
	now := day(2026, time.January, 20)
	bookings := []*models.Booking{
		{ID: "bk-soon", BillingDate: day(2026, time.January, 22)},
		{ID: "bk-today", BillingDate: day(2026, time.January, 20)},
		{ID: "bk-far", BillingDate: day(2026, time.February, 10)},
		{ID: "bk-past", BillingDate: day(2026, time.January, 10)},
		{ID: "bk-settled", BillingDate: day(2026, time.January, 23)},
	}
	invoices := []*models.Invoice{
		{BookingID: "bk-settled", Status: models.InvoicePaid},
	}

	out := UpcomingBillings(bookings, invoices, now)
	require.Len(t, out, 2)
	assert.Equal(t, "bk-today", out[0].ID)
	assert.Equal(t, "bk-soon", out[1].ID)
}

func TestTaxSummary(t *testing.T) {
	jan := day(2026, time.January, 10)
	invoices := []*models.Invoice{
		{VATRegistered: true, VATAmount: 12000, IncomeTaxAmount: 4000, CreatedAt: jan},
		{VATRegistered: false, PercentageTaxAmount: 3000, IncomeTaxAmount: 8000, CreatedAt: jan},
	}
	expenses := []*models.Expense{
		{VATIncluded: true, InputVAT: 672, Date: jan},
		{VATIncluded: false, Amount: 9999, Date: jan}, // no input VAT
	}

	r := TaxSummary(invoices, expenses, time.Time{})
	assert.True(t, r.OutputVAT.Equal(decimal.NewFromInt(12000)))
	assert.True(t, r.InputVAT.Equal(decimal.NewFromInt(672)))
	assert.True(t, r.VATPayable.Equal(decimal.NewFromInt(11328)), "vat payable = output - input")
	assert.True(t, r.PercentageTax.Equal(decimal.NewFromInt(3000)))
	assert.True(t, r.IncomeTax.Equal(decimal.NewFromInt(12000)))
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2026, time.August, 28, 15, 30, 0, 0, time.UTC)

	assert.True(t, PeriodOverall.Start(now).IsZero())
	assert.Equal(t, day(2026, time.January, 1), PeriodAnnual.Start(now))
	assert.Equal(t, day(2026, time.August, 1), PeriodMonthly.Start(now))
	assert.Equal(t, day(2026, time.August, 24), PeriodWeekly.Start(now))
	assert.Equal(t, time.Monday, PeriodWeekly.Start(now).Weekday())
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("Monthly")
	require.NoError(t, err)
	assert.Equal(t, PeriodMonthly, p)

	p, err = ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, PeriodOverall, p)

	_, err = ParsePeriod("Quarterly")
	assert.Error(t, err)
}
