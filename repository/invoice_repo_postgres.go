package repository

import (
	"database/sql"
	"errors"
	"time"

	"pacifictrucking/models"
)

type PostgresInvoiceRepo struct {
	DB *sql.DB
}

func NewPostgresInvoiceRepo(db *sql.DB) *PostgresInvoiceRepo {
	return &PostgresInvoiceRepo{DB: db}
}

var invoiceFilterColumns = map[string]bool{
	"booking_id":  true,
	"client_name": true,
	"status":      true,
}

const invoiceColumns = `id, booking_id, client_name, gross_sales, vat_registered,
	income_tax_option, vat_amount, percentage_tax_amount, income_tax_amount,
	ewt_amount, net_revenue, status, due_date, paid_at, pdf_url, pdf_created_at, created_at`

func scanInvoice(row interface{ Scan(...interface{}) error }) (*models.Invoice, error) {
	var inv models.Invoice
	var paidAt, pdfAt sql.NullTime
	var pdfURL sql.NullString
	err := row.Scan(
		&inv.ID, &inv.BookingID, &inv.ClientName, &inv.GrossSales, &inv.VATRegistered,
		&inv.IncomeTaxOption, &inv.VATAmount, &inv.PercentageTaxAmount, &inv.IncomeTaxAmount,
		&inv.EWTAmount, &inv.NetRevenue, &inv.Status, &inv.DueDate, &paidAt, &pdfURL, &pdfAt, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.PaidAt = timePtr(paidAt)
	inv.PDFURL = stringPtr(pdfURL)
	inv.PDFCreatedAt = timePtr(pdfAt)
	return &inv, nil
}

func (r *PostgresInvoiceRepo) CreateForBooking(inv *models.Invoice) (bool, error) {
	if inv.ID == "" {
		inv.ID = newDocID()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = nowUTC()
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var existing string
	err = tx.QueryRow(`SELECT id FROM invoice WHERE booking_id=$1 LIMIT 1`, inv.BookingID).Scan(&existing)
	if err == nil {
		return false, tx.Commit()
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}

	_, err = tx.Exec(`
		INSERT INTO invoice(
			id, booking_id, client_name, gross_sales, vat_registered,
			income_tax_option, vat_amount, percentage_tax_amount, income_tax_amount,
			ewt_amount, net_revenue, status, due_date, created_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		inv.ID, inv.BookingID, inv.ClientName, inv.GrossSales, inv.VATRegistered,
		inv.IncomeTaxOption, inv.VATAmount, inv.PercentageTaxAmount, inv.IncomeTaxAmount,
		inv.EWTAmount, inv.NetRevenue, inv.Status, inv.DueDate, inv.CreatedAt,
	)
	if err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func (r *PostgresInvoiceRepo) GetInvoices(filters map[string]interface{}) ([]*models.Invoice, error) {
	where, args := buildWhere(filters, invoiceFilterColumns)

	rows, err := r.DB.Query(`SELECT `+invoiceColumns+` FROM invoice`+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *PostgresInvoiceRepo) GetInvoiceByID(id string) (*models.Invoice, error) {
	inv, err := scanInvoice(r.DB.QueryRow(`SELECT `+invoiceColumns+` FROM invoice WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return inv, nil
}

func (r *PostgresInvoiceRepo) UpdateStatus(id string, status models.InvoiceStatus, paidAt *time.Time) error {
	res, err := r.DB.Exec(`
		UPDATE invoice SET status=$2, paid_at=COALESCE($3, paid_at) WHERE id=$1
	`, id, status, nullTime(paidAt))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("invoice not found")
	}
	return nil
}

func (r *PostgresInvoiceRepo) UpdatePDF(id string, url string, at time.Time) error {
	res, err := r.DB.Exec(`UPDATE invoice SET pdf_url=$2, pdf_created_at=$3 WHERE id=$1`, id, url, at)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("invoice not found")
	}
	return nil
}
