package repository

import (
	"database/sql"

	"pacifictrucking/models"
)

type PostgresCashAdvanceRepo struct {
	DB *sql.DB
}

func NewPostgresCashAdvanceRepo(db *sql.DB) *PostgresCashAdvanceRepo {
	return &PostgresCashAdvanceRepo{DB: db}
}

var cashAdvanceFilterColumns = map[string]bool{
	"driver_id": true,
	"paid_by":   true,
}

func (r *PostgresCashAdvanceRepo) CreateCashAdvance(a *models.CashAdvance) error {
	if a.ID == "" {
		a.ID = newDocID()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = nowUTC()
	}
	_, err := r.DB.Exec(`
		INSERT INTO cash_advance(id,driver_id,driver_name,amount,date,paid_by,credited_to,created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
	`, a.ID, a.DriverID, a.DriverName, a.Amount, a.Date, a.PaidBy, a.CreditedTo, a.CreatedAt)
	return err
}

func (r *PostgresCashAdvanceRepo) GetCashAdvances(filters map[string]interface{}) ([]*models.CashAdvance, error) {
	where, args := buildWhere(filters, cashAdvanceFilterColumns)

	rows, err := r.DB.Query(`
		SELECT id,driver_id,driver_name,amount,date,paid_by,credited_to,created_at
		FROM cash_advance`+where+` ORDER BY date DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.CashAdvance
	for rows.Next() {
		var a models.CashAdvance
		if err := rows.Scan(&a.ID, &a.DriverID, &a.DriverName, &a.Amount, &a.Date, &a.PaidBy, &a.CreditedTo, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
