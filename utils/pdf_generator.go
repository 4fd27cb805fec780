package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"pacifictrucking/models"
	"pacifictrucking/repository"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/shopspring/decimal"
)

// GenerateInvoicePDF renders a billing invoice to PDF with headless Chrome.
func GenerateInvoicePDF(repo *repository.PDFRepository, invoiceID string) ([]byte, error) {
	company, err := repo.GetCompanyForPDF()
	if err != nil {
		return nil, err
	}
	if company == nil {
		company = &models.CompanyProfile{}
	}

	invoice, booking, err := repo.GetInvoiceForPDF(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}

	formattedDate := "-"
	if !invoice.CreatedAt.IsZero() {
		formattedDate = invoice.CreatedAt.Format("02-Jan-2006")
	}
	formattedDueDate := "-"
	if !invoice.DueDate.IsZero() {
		formattedDueDate = invoice.DueDate.Format("02-Jan-2006")
	}

	// Contact numbers for the header
	contacts := ""
	for _, m := range company.Mobile {
		contacts += m.Number + "(" + m.Label + "), "
	}
	if len(contacts) > 2 {
		contacts = contacts[:len(contacts)-2]
	}

	tmpl, err := template.ParseFiles("templates/invoice_template.html")
	if err != nil {
		return nil, err
	}

	data := models.InvoicePDFData{
		Company:    company,
		Invoice:    invoice,
		Booking:    booking,
		Contacts:   contacts,
		Date:       formattedDate,
		DueDate:    formattedDueDate,
		GrossSales: FormatPHP(decimal.NewFromFloat(invoice.GrossSales)),
		VAT:        FormatPHP(decimal.NewFromFloat(invoice.VATAmount)),
		Percentage: FormatPHP(decimal.NewFromFloat(invoice.PercentageTaxAmount)),
		IncomeTax:  FormatPHP(decimal.NewFromFloat(invoice.IncomeTaxAmount)),
		EWT:        FormatPHP(decimal.NewFromFloat(invoice.EWTAmount)),
		NetRevenue: FormatPHP(decimal.NewFromFloat(invoice.NetRevenue)),
		TotalWords: AmountInWords(invoice.GrossSales),
		EWTApplied: invoice.EWTAmount > 0,
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, err
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		.invoice-sheet {
			page-break-inside: avoid;
			border: none;
		}
		</style>
		</head>
		<body><div class='invoice-sheet'>` + body.String() + `</div></body></html>`

	// Create temp HTML file
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "invoice_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	// Generate PDF with headless Chrome
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
