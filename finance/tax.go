// Package finance holds the company's financial computations: tax and
// invoice derivation, expense/reimbursement routing, weekly payroll netting,
// and the dashboard rollups. Everything here is a pure function over plain
// records; persistence stays in the repository layer.
package finance

import (
	"github.com/shopspring/decimal"

	"pacifictrucking/models"
)

var (
	vatRate           = decimal.NewFromFloat(0.12)
	percentageTaxRate = decimal.NewFromFloat(0.03)
	flatIncomeTaxRate = decimal.NewFromFloat(0.08)
	ewtRate           = decimal.NewFromFloat(0.02)

	// Income below this is exempt under the flat 8% election.
	flatExemption = decimal.NewFromInt(250000)
)

type TaxInput struct {
	GrossSales      decimal.Decimal
	VATRegistered   bool
	IncomeTaxOption models.IncomeTaxOption
}

type TaxBreakdown struct {
	VATAmount           decimal.Decimal
	PercentageTaxAmount decimal.Decimal
	IncomeTaxAmount     decimal.Decimal
	NetRevenue          decimal.Decimal
}

// taxBracket is one row of the graduated income tax table. A zero ceiling
// marks the open-ended top bracket.
type taxBracket struct {
	ceiling decimal.Decimal
	floor   decimal.Decimal
	base    decimal.Decimal
	rate    decimal.Decimal
}

var graduatedBrackets = []taxBracket{
	{ceiling: decimal.NewFromInt(250000)},
	{ceiling: decimal.NewFromInt(400000), floor: decimal.NewFromInt(250000), rate: decimal.NewFromFloat(0.15)},
	{ceiling: decimal.NewFromInt(800000), floor: decimal.NewFromInt(400000), base: decimal.NewFromInt(22500), rate: decimal.NewFromFloat(0.20)},
	{ceiling: decimal.NewFromInt(2000000), floor: decimal.NewFromInt(800000), base: decimal.NewFromInt(102500), rate: decimal.NewFromFloat(0.25)},
	{ceiling: decimal.NewFromInt(8000000), floor: decimal.NewFromInt(2000000), base: decimal.NewFromInt(402500), rate: decimal.NewFromFloat(0.30)},
	{floor: decimal.NewFromInt(8000000), base: decimal.NewFromInt(2202500), rate: decimal.NewFromFloat(0.35)},
}

// ComputeTax derives the VAT, percentage tax, income tax, and net revenue for
// a gross sales figure.
//
// VAT (12%) and percentage tax (3%) are mutually exclusive on registration
// status, and percentage tax is additionally waived when the flat 8% income
// tax option is elected. Graduated income tax is computed on gross sales, not
// net of deductions; that simplification is carried over deliberately from
// how the books have always been kept.
func ComputeTax(in TaxInput) TaxBreakdown {
	gross := clampZero(in.GrossSales)

	out := TaxBreakdown{
		VATAmount:           decimal.Zero,
		PercentageTaxAmount: decimal.Zero,
	}

	if in.VATRegistered {
		out.VATAmount = gross.Mul(vatRate)
	} else if in.IncomeTaxOption == models.IncomeTaxGraduated {
		out.PercentageTaxAmount = gross.Mul(percentageTaxRate)
	}

	if in.IncomeTaxOption == models.IncomeTaxFlat8 {
		out.IncomeTaxAmount = clampZero(gross.Sub(flatExemption)).Mul(flatIncomeTaxRate)
	} else {
		out.IncomeTaxAmount = graduatedIncomeTax(gross)
	}

	out.NetRevenue = gross.Sub(out.VATAmount).Sub(out.PercentageTaxAmount).Sub(out.IncomeTaxAmount)
	return out
}

func graduatedIncomeTax(taxable decimal.Decimal) decimal.Decimal {
	for _, b := range graduatedBrackets {
		if b.ceiling.IsZero() || taxable.LessThanOrEqual(b.ceiling) {
			return b.base.Add(clampZero(taxable.Sub(b.floor)).Mul(b.rate))
		}
	}
	return decimal.Zero
}

// EWT returns the 2% expanded withholding tax for a booking that has the
// flag set. Reported alongside the invoice but never deducted from net
// revenue.
func EWT(grossSales decimal.Decimal, applied bool) decimal.Decimal {
	if !applied {
		return decimal.Zero
	}
	return clampZero(grossSales).Mul(ewtRate)
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
