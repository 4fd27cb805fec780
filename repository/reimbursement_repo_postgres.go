package repository

import (
	"database/sql"
	"errors"
	"time"

	"pacifictrucking/finance"
	"pacifictrucking/models"
)

type PostgresReimbursementRepo struct {
	DB *sql.DB
}

func NewPostgresReimbursementRepo(db *sql.DB) *PostgresReimbursementRepo {
	return &PostgresReimbursementRepo{DB: db}
}

var reimbursementFilterColumns = map[string]bool{
	"category":    true,
	"credited_to": true,
	"booking_id":  true,
	"status":      true,
}

const reimbursementColumns = `id, category, description, amount, credited_to,
	booking_id, driver_id, driver_name, status, date, liquidated_by, liquidated_at, created_at`

func scanReimbursement(row interface{ Scan(...interface{}) error }) (*models.Reimbursement, error) {
	var rb models.Reimbursement
	var liqBy sql.NullString
	var liqAt sql.NullTime
	err := row.Scan(
		&rb.ID, &rb.Category, &rb.Description, &rb.Amount, &rb.CreditedTo,
		&rb.BookingID, &rb.DriverID, &rb.DriverName, &rb.Status, &rb.Date,
		&liqBy, &liqAt, &rb.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	rb.LiquidatedBy = stringPtr(liqBy)
	rb.LiquidatedAt = timePtr(liqAt)
	return &rb, nil
}

func (r *PostgresReimbursementRepo) CreateReimbursement(rb *models.Reimbursement) error {
	if rb.ID == "" {
		rb.ID = newDocID()
	}
	if rb.CreatedAt.IsZero() {
		rb.CreatedAt = nowUTC()
	}
	_, err := r.DB.Exec(`
		INSERT INTO reimbursement(id,category,description,amount,credited_to,booking_id,driver_id,driver_name,status,date,created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`, rb.ID, rb.Category, rb.Description, rb.Amount, rb.CreditedTo, rb.BookingID, rb.DriverID, rb.DriverName, rb.Status, rb.Date, rb.CreatedAt)
	return err
}

func (r *PostgresReimbursementRepo) GetReimbursements(filters map[string]interface{}) ([]*models.Reimbursement, error) {
	where, args := buildWhere(filters, reimbursementFilterColumns)

	rows, err := r.DB.Query(`SELECT `+reimbursementColumns+` FROM reimbursement`+where+` ORDER BY date DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Reimbursement
	for rows.Next() {
		rb, err := scanReimbursement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rb)
	}
	return out, rows.Err()
}

func (r *PostgresReimbursementRepo) Liquidate(id string, liquidatedBy string, now time.Time) (*models.Reimbursement, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Row lock keeps two concurrent liquidations of the same
	// reimbursement from both passing the Pending check.
	rb, err := scanReimbursement(tx.QueryRow(`SELECT `+reimbursementColumns+` FROM reimbursement WHERE id=$1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReimbursementNotFound
		}
		return nil, err
	}
	if rb.Status != models.ReimbursementPending {
		return nil, ErrReimbursementNotPending
	}

	out := finance.Liquidate(rb, liquidatedBy, now)
	switch {
	case out.CashAdvance != nil:
		a := out.CashAdvance
		a.ID = newDocID()
		a.CreatedAt = now
		if _, err := tx.Exec(`
			INSERT INTO cash_advance(id,driver_id,driver_name,amount,date,paid_by,credited_to,created_at)
			VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		`, a.ID, a.DriverID, a.DriverName, a.Amount, a.Date, a.PaidBy, a.CreditedTo, a.CreatedAt); err != nil {
			return nil, err
		}
	case out.Expense != nil:
		e := out.Expense
		e.ID = newDocID()
		e.CreatedAt = now
		if _, err := tx.Exec(`
			INSERT INTO expense(id,category,description,amount,vat_included,input_vat,paid_by,booking_id,date,created_at)
			VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		`, e.ID, e.Category, e.Description, e.Amount, e.VATIncluded, e.InputVAT, e.PaidBy, e.BookingID, e.Date, e.CreatedAt); err != nil {
			return nil, err
		}
	}

	if _, err := tx.Exec(`
		UPDATE reimbursement SET status=$2, liquidated_by=$3, liquidated_at=$4 WHERE id=$1
	`, rb.ID, rb.Status, nullString(rb.LiquidatedBy), nullTime(rb.LiquidatedAt)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rb, nil
}
