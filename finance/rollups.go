package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"pacifictrucking/models"
)

// Rollups are recomputed from scratch on every read. Volumes are small
// enough that an O(n) pass over the full collection per request is fine.

// BookingProfit is the margin left on a booking after driver pay and the
// expected mobilization costs.
func BookingProfit(b *models.Booking) decimal.Decimal {
	costs := decimal.NewFromFloat(b.DriverRate).
		Add(decimal.NewFromFloat(b.ExpectedExpenses.TollFee)).
		Add(decimal.NewFromFloat(b.ExpectedExpenses.Fuel)).
		Add(decimal.NewFromFloat(b.ExpectedExpenses.Others))
	return decimal.NewFromFloat(b.BookingRate).Sub(costs)
}

type ProfitRow struct {
	Label    string          `json:"label"`
	Bookings int             `json:"bookings"`
	Profit   decimal.Decimal `json:"profit"`
}

type ProfitReport struct {
	Rows  []ProfitRow     `json:"rows"`
	Total decimal.Decimal `json:"total"`
}

// ProfitByClient aggregates delivered-booking profit per client since the
// period start. Bookings are bucketed by completion date, the point the
// revenue is realized.
func ProfitByClient(bookings []*models.Booking, since time.Time) ProfitReport {
	return profitBy(bookings, since, func(b *models.Booking) string { return b.ClientName })
}

// ProfitByVehicleType is the same cost model grouped by vehicle type.
func ProfitByVehicleType(bookings []*models.Booking, since time.Time) ProfitReport {
	return profitBy(bookings, since, func(b *models.Booking) string { return b.VehicleType })
}

func profitBy(bookings []*models.Booking, since time.Time, key func(*models.Booking) string) ProfitReport {
	rows := map[string]*ProfitRow{}
	total := decimal.Zero

	for _, b := range bookings {
		if b.Status != models.BookingDelivered || b.CompletionDate == nil || b.CompletionDate.Before(since) {
			continue
		}
		k := key(b)
		row, ok := rows[k]
		if !ok {
			row = &ProfitRow{Label: k, Profit: decimal.Zero}
			rows[k] = row
		}
		p := BookingProfit(b)
		row.Bookings++
		row.Profit = row.Profit.Add(p)
		total = total.Add(p)
	}

	out := make([]ProfitRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return ProfitReport{Rows: out, Total: total}
}

// CashOnHand is collected revenue plus owner fund contributions minus
// expenses, all since the period start. Invoices count when they were paid,
// not when they were issued.
func CashOnHand(invoices []*models.Invoice, funds []*models.RevolvingFundContribution, expenses []*models.Expense, since time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if inv.Status != models.InvoicePaid || inv.PaidAt == nil || inv.PaidAt.Before(since) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(inv.GrossSales))
	}
	for _, f := range funds {
		if f.Date.Before(since) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(f.Amount))
	}
	for _, e := range expenses {
		if e.Date.Before(since) {
			continue
		}
		total = total.Sub(decimal.NewFromFloat(e.Amount))
	}
	return total
}

type OutstandingInvoice struct {
	Invoice     *models.Invoice `json:"invoice"`
	DaysOverdue int             `json:"days_overdue"`
}

// OutstandingPayments lists unpaid and overdue invoices whose due date has
// passed, oldest due date first.
func OutstandingPayments(invoices []*models.Invoice, now time.Time) []OutstandingInvoice {
	var out []OutstandingInvoice
	for _, inv := range invoices {
		if inv.Status == models.InvoicePaid || !inv.DueDate.Before(now) {
			continue
		}
		out = append(out, OutstandingInvoice{
			Invoice:     inv,
			DaysOverdue: int(now.Sub(inv.DueDate).Hours() / 24),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Invoice.DueDate.Before(out[j].Invoice.DueDate)
	})
	return out
}

// UpcomingBillings lists bookings whose billing date falls within the next
// seven days, skipping any already settled by a Paid invoice. Sorted by
// billing date.
func UpcomingBillings(bookings []*models.Booking, invoices []*models.Invoice, now time.Time) []*models.Booking {
	paid := map[string]bool{}
	for _, inv := range invoices {
		if inv.Status == models.InvoicePaid {
			paid[inv.BookingID] = true
		}
	}

	horizon := now.AddDate(0, 0, 7)
	var out []*models.Booking
	for _, b := range bookings {
		if b.BillingDate.Before(now) || !b.BillingDate.Before(horizon) {
			continue
		}
		if paid[b.ID] {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BillingDate.Before(out[j].BillingDate) })
	return out
}

type TaxSummaryReport struct {
	OutputVAT     decimal.Decimal `json:"output_vat"`
	InputVAT      decimal.Decimal `json:"input_vat"`
	VATPayable    decimal.Decimal `json:"vat_payable"`
	PercentageTax decimal.Decimal `json:"percentage_tax"`
	IncomeTax     decimal.Decimal `json:"income_tax"`
}

// TaxSummary sums the period's tax positions: output VAT from
// VAT-registered invoices, input VAT from VAT-included expenses, percentage
// tax from non-VAT invoices, and income tax across all invoices.
// VATPayable nets output against input.
func TaxSummary(invoices []*models.Invoice, expenses []*models.Expense, since time.Time) TaxSummaryReport {
	r := TaxSummaryReport{
		OutputVAT:     decimal.Zero,
		InputVAT:      decimal.Zero,
		PercentageTax: decimal.Zero,
		IncomeTax:     decimal.Zero,
	}

	for _, inv := range invoices {
		if inv.CreatedAt.Before(since) {
			continue
		}
		if inv.VATRegistered {
			r.OutputVAT = r.OutputVAT.Add(decimal.NewFromFloat(inv.VATAmount))
		} else {
			r.PercentageTax = r.PercentageTax.Add(decimal.NewFromFloat(inv.PercentageTaxAmount))
		}
		r.IncomeTax = r.IncomeTax.Add(decimal.NewFromFloat(inv.IncomeTaxAmount))
	}
	for _, e := range expenses {
		if e.Date.Before(since) || !e.VATIncluded {
			continue
		}
		r.InputVAT = r.InputVAT.Add(decimal.NewFromFloat(e.InputVAT))
	}

	r.VATPayable = r.OutputVAT.Sub(r.InputVAT)
	return r
}
