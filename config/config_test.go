package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"pacifictrucking/models"
)

func TestTaxDefaultsUnconfigured(t *testing.T) {
	os.Unsetenv("VAT_REGISTERED")
	os.Unsetenv("INCOME_TAX_OPTION")

	defaults := loadTaxDefaults()

	assert.False(t, defaults.VATRegistered)
	assert.Equal(t, models.IncomeTaxFlat8, defaults.IncomeTaxOption)
}

func TestTaxDefaultsFromEnv(t *testing.T) {
	t.Setenv("VAT_REGISTERED", "true")
	t.Setenv("INCOME_TAX_OPTION", "graduated")

	defaults := loadTaxDefaults()

	assert.True(t, defaults.VATRegistered)
	assert.Equal(t, models.IncomeTaxGraduated, defaults.IncomeTaxOption)
}

func TestTaxDefaultsIgnoreInvalidOption(t *testing.T) {
	t.Setenv("VAT_REGISTERED", "yes") // anything but "true" stays opt-out
	t.Setenv("INCOME_TAX_OPTION", "quarterly")

	defaults := loadTaxDefaults()

	assert.False(t, defaults.VATRegistered)
	assert.Equal(t, models.IncomeTaxFlat8, defaults.IncomeTaxOption)
}
