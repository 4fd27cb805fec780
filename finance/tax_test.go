package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacifictrucking/models"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestComputeTaxFlatOption(t *testing.T) {
	// 300k gross, non-VAT, flat 8%: tax only on the excess over 250k.
	out := ComputeTax(TaxInput{
		GrossSales:      dec(300000),
		VATRegistered:   false,
		IncomeTaxOption: models.IncomeTaxFlat8,
	})

	assert.True(t, out.VATAmount.IsZero(), "vat = %s", out.VATAmount)
	assert.True(t, out.PercentageTaxAmount.IsZero(), "percentage tax = %s", out.PercentageTaxAmount)
	assert.True(t, out.IncomeTaxAmount.Equal(dec(4000)), "income tax = %s", out.IncomeTaxAmount)
	assert.True(t, out.NetRevenue.Equal(dec(296000)), "net = %s", out.NetRevenue)
}

func TestComputeTaxGraduatedOption(t *testing.T) {
	// 1M gross, non-VAT, graduated: 102,500 + 25% over 800k, plus 3%
	// percentage tax.
	out := ComputeTax(TaxInput{
		GrossSales:      dec(1000000),
		VATRegistered:   false,
		IncomeTaxOption: models.IncomeTaxGraduated,
	})

	assert.True(t, out.VATAmount.IsZero())
	assert.True(t, out.PercentageTaxAmount.Equal(dec(30000)), "percentage tax = %s", out.PercentageTaxAmount)
	assert.True(t, out.IncomeTaxAmount.Equal(dec(152500)), "income tax = %s", out.IncomeTaxAmount)
	assert.True(t, out.NetRevenue.Equal(dec(817500)), "net = %s", out.NetRevenue)
}

func TestVATExclusivity(t *testing.T) {
	for _, gross := range []int64{0, 1, 249999, 250000, 300000, 1000000, 9000000} {
		for _, option := range []models.IncomeTaxOption{models.IncomeTaxFlat8, models.IncomeTaxGraduated} {
			out := ComputeTax(TaxInput{GrossSales: dec(gross), VATRegistered: true, IncomeTaxOption: option})
			assert.True(t, out.PercentageTaxAmount.IsZero(),
				"vat-registered must never carry percentage tax (gross=%d option=%s)", gross, option)
			assert.True(t, out.VATAmount.Equal(dec(gross).Mul(decimal.NewFromFloat(0.12))),
				"vat must be 12%% of gross (gross=%d)", gross)
		}
	}
}

func TestPercentageTaxWaivedUnderFlatOption(t *testing.T) {
	for _, gross := range []int64{0, 100000, 250000, 500000, 3000000} {
		out := ComputeTax(TaxInput{GrossSales: dec(gross), VATRegistered: false, IncomeTaxOption: models.IncomeTaxFlat8})
		assert.True(t, out.VATAmount.IsZero())
		assert.True(t, out.PercentageTaxAmount.IsZero(),
			"flat 8%% election waives percentage tax (gross=%d)", gross)
	}
}

func TestConservationIdentity(t *testing.T) {
	grosses := []int64{0, 1, 12345, 249999, 250000, 250001, 400000, 799999, 800000, 2000000, 7999999, 8000000, 8000001, 25000000}
	for _, gross := range grosses {
		for _, vat := range []bool{true, false} {
			for _, option := range []models.IncomeTaxOption{models.IncomeTaxFlat8, models.IncomeTaxGraduated} {
				out := ComputeTax(TaxInput{GrossSales: dec(gross), VATRegistered: vat, IncomeTaxOption: option})
				sum := out.NetRevenue.Add(out.VATAmount).Add(out.PercentageTaxAmount).Add(out.IncomeTaxAmount)
				require.True(t, sum.Equal(dec(gross)),
					"net+taxes must equal gross (gross=%d vat=%v option=%s got=%s)", gross, vat, option, sum)
			}
		}
	}
}

func TestGraduatedBracketContinuity(t *testing.T) {
	// At each bracket boundary the lower formula must land exactly on the
	// next bracket's base constant.
	cases := []struct {
		income int64
		tax    int64
	}{
		{250000, 0},
		{400000, 22500},
		{800000, 102500},
		{2000000, 402500},
		{8000000, 2202500},
	}
	for _, tc := range cases {
		got := graduatedIncomeTax(dec(tc.income))
		assert.True(t, got.Equal(dec(tc.tax)), "graduated(%d) = %s, want %d", tc.income, got, tc.tax)
	}
}

func TestGraduatedTopBracket(t *testing.T) {
	// 10M: 2,202,500 + 35% of the 2M over 8M.
	got := graduatedIncomeTax(dec(10000000))
	assert.True(t, got.Equal(dec(2902500)), "graduated(10M) = %s", got)
}

func TestNegativeGrossClampsToZero(t *testing.T) {
	out := ComputeTax(TaxInput{
		GrossSales:      dec(-5000),
		VATRegistered:   false,
		IncomeTaxOption: models.IncomeTaxGraduated,
	})
	assert.True(t, out.VATAmount.IsZero())
	assert.True(t, out.PercentageTaxAmount.IsZero())
	assert.True(t, out.IncomeTaxAmount.IsZero())
	assert.True(t, out.NetRevenue.IsZero())
}

func TestEWT(t *testing.T) {
	assert.True(t, EWT(dec(100000), true).Equal(dec(2000)))
	assert.True(t, EWT(dec(100000), false).IsZero())
	assert.True(t, EWT(dec(-100), true).IsZero())
}
