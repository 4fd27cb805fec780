package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPHP(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₱0.00"},
		{5, "₱5.00"},
		{999.99, "₱999.99"},
		{1000, "₱1,000.00"},
		{250000, "₱250,000.00"},
		{1234567.89, "₱1,234,567.89"},
		{2202500, "₱2,202,500.00"},
		{-4500.5, "-₱4,500.50"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatPHP(decimal.NewFromFloat(c.amount)))
	}
}
