package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	assert.Equal(t, "", NumberToWords(0))
	assert.Equal(t, "Seven", NumberToWords(7))
	assert.Equal(t, "Nineteen", NumberToWords(19))
	assert.Equal(t, "Forty Two", NumberToWords(42))
	assert.Equal(t, "One Hundred", NumberToWords(100))
	assert.Equal(t, "Three Hundred Fifteen", NumberToWords(315))
	assert.Equal(t, "Two Thousand Five Hundred", NumberToWords(2500))
	assert.Equal(t, "Two Hundred Fifty Thousand", NumberToWords(250000))
	assert.Equal(t, "One Million Two Hundred Thirty Four Thousand Five Hundred Sixty Seven", NumberToWords(1234567))
}

func TestAmountInWords(t *testing.T) {
	assert.Equal(t, "Zero Pesos Only", AmountInWords(0))
	assert.Equal(t, "Five Thousand Pesos Only", AmountInWords(5000))
	assert.Equal(t, "One Thousand Five Hundred Pesos and Fifty Centavos Only", AmountInWords(1500.50))
	assert.Equal(t, "Twenty Five Centavos Only", AmountInWords(0.25))
	assert.Equal(t, "Two Million Two Hundred Two Thousand Five Hundred Pesos Only", AmountInWords(2202500))

	// rounding the centavos must carry into pesos, never spell 100 centavos
	assert.Equal(t, "Two Pesos Only", AmountInWords(1.999))
	assert.Equal(t, "Three Pesos Only", AmountInWords(2.999))
}
