package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"pacifictrucking/finance"
	"pacifictrucking/models"
)

type Config struct {
	PostgresURL string
	MongoURL    string
	DBType      string
	Port        string
	PDFSavePath string
	TaxDefaults finance.TaxDefaults
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL: os.Getenv("POSTGRES_URL"),
		MongoURL:    os.Getenv("MONGO_URL"),
		DBType:      os.Getenv("DB_TYPE"),
		Port:        os.Getenv("PORT"),
		PDFSavePath: os.Getenv("PDF_SAVE_PATH"),
		TaxDefaults: loadTaxDefaults(),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}

// loadTaxDefaults reads the company tax settings applied to every generated
// invoice. Unconfigured, the company is not VAT-registered and elects the 8%
// flat income tax; VAT registration is opt-in via VAT_REGISTERED=true.
func loadTaxDefaults() finance.TaxDefaults {
	defaults := finance.TaxDefaults{
		VATRegistered:   false,
		IncomeTaxOption: models.IncomeTaxFlat8,
	}
	if v := os.Getenv("VAT_REGISTERED"); v == "true" {
		defaults.VATRegistered = true
	}
	if opt := models.IncomeTaxOption(os.Getenv("INCOME_TAX_OPTION")); opt.Valid() {
		defaults.IncomeTaxOption = opt
	}
	return defaults
}
