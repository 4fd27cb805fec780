package repository

import (
	"database/sql"
	"errors"

	"pacifictrucking/models"
)

type PostgresExpenseRepo struct {
	DB *sql.DB
}

func NewPostgresExpenseRepo(db *sql.DB) *PostgresExpenseRepo {
	return &PostgresExpenseRepo{DB: db}
}

var expenseFilterColumns = map[string]bool{
	"category":   true,
	"paid_by":    true,
	"booking_id": true,
}

func (r *PostgresExpenseRepo) CreateExpense(e *models.Expense) error {
	if e.ID == "" {
		e.ID = newDocID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = nowUTC()
	}
	_, err := r.DB.Exec(`
		INSERT INTO expense(id,category,description,amount,vat_included,input_vat,paid_by,booking_id,date,created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`, e.ID, e.Category, e.Description, e.Amount, e.VATIncluded, e.InputVAT, e.PaidBy, e.BookingID, e.Date, e.CreatedAt)
	return err
}

func (r *PostgresExpenseRepo) GetExpenses(filters map[string]interface{}) ([]*models.Expense, error) {
	where, args := buildWhere(filters, expenseFilterColumns)

	rows, err := r.DB.Query(`
		SELECT id,category,description,amount,vat_included,input_vat,paid_by,booking_id,date,created_at
		FROM expense`+where+` ORDER BY date DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Category, &e.Description, &e.Amount, &e.VATIncluded,
			&e.InputVAT, &e.PaidBy, &e.BookingID, &e.Date, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (r *PostgresExpenseRepo) DeleteExpense(id string) error {
	res, err := r.DB.Exec(`DELETE FROM expense WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("expense not found")
	}
	return nil
}
