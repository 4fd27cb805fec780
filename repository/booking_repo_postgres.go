package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"pacifictrucking/finance"
	"pacifictrucking/models"
)

type PostgresBookingRepo struct {
	DB *sql.DB
}

func NewPostgresBookingRepo(db *sql.DB) *PostgresBookingRepo {
	return &PostgresBookingRepo{DB: db}
}

var bookingFilterColumns = map[string]bool{
	"client_name":  true,
	"vehicle_type": true,
	"driver_id":    true,
	"status":       true,
	"created_by":   true,
}

const bookingColumns = `id, client_name, vehicle_type, origin, destination,
	booking_date, billing_date, due_date, driver_id, driver_name,
	booking_rate, driver_rate, toll_fee, fuel, others,
	expense_payment_method, credited_to, ewt_applied, status,
	completion_date, created_by, created_at, updated_at`

func scanBooking(row interface{ Scan(...interface{}) error }) (*models.Booking, error) {
	var b models.Booking
	var completion, updated sql.NullTime
	err := row.Scan(
		&b.ID, &b.ClientName, &b.VehicleType, &b.Origin, &b.Destination,
		&b.BookingDate, &b.BillingDate, &b.DueDate, &b.DriverID, &b.DriverName,
		&b.BookingRate, &b.DriverRate,
		&b.ExpectedExpenses.TollFee, &b.ExpectedExpenses.Fuel, &b.ExpectedExpenses.Others,
		&b.ExpensePaymentMethod, &b.CreditedTo, &b.EWTApplied, &b.Status,
		&completion, &b.CreatedBy, &b.CreatedAt, &updated,
	)
	if err != nil {
		return nil, err
	}
	b.CompletionDate = timePtr(completion)
	b.UpdatedAt = timePtr(updated)
	return &b, nil
}

func insertRoutedCostsTx(tx *sql.Tx, costs []finance.RoutedCost) error {
	for _, c := range costs {
		switch {
		case c.Expense != nil:
			if c.Expense.ID == "" {
				c.Expense.ID = newDocID()
			}
			if c.Expense.CreatedAt.IsZero() {
				c.Expense.CreatedAt = nowUTC()
			}
			e := c.Expense
			if _, err := tx.Exec(`
				INSERT INTO expense(id,category,description,amount,vat_included,input_vat,paid_by,booking_id,date,created_at)
				VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
			`, e.ID, e.Category, e.Description, e.Amount, e.VATIncluded, e.InputVAT, e.PaidBy, e.BookingID, e.Date, e.CreatedAt); err != nil {
				return err
			}
		case c.Reimbursement != nil:
			if c.Reimbursement.ID == "" {
				c.Reimbursement.ID = newDocID()
			}
			if c.Reimbursement.CreatedAt.IsZero() {
				c.Reimbursement.CreatedAt = nowUTC()
			}
			rb := c.Reimbursement
			if _, err := tx.Exec(`
				INSERT INTO reimbursement(id,category,description,amount,credited_to,booking_id,driver_id,driver_name,status,date,created_at)
				VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
			`, rb.ID, rb.Category, rb.Description, rb.Amount, rb.CreditedTo, rb.BookingID, rb.DriverID, rb.DriverName, rb.Status, rb.Date, rb.CreatedAt); err != nil {
				return err
			}
		}
	}
	return nil
}

func deleteMobilizationCostsTx(tx *sql.Tx, bookingID string) error {
	cats := make([]string, len(mobilizationCategories))
	for i, c := range mobilizationCategories {
		cats[i] = string(c)
	}
	list := "'" + strings.Join(cats, "','") + "'"

	if _, err := tx.Exec(`DELETE FROM expense WHERE booking_id=$1 AND category IN (`+list+`)`, bookingID); err != nil {
		return err
	}
	_, err := tx.Exec(`DELETE FROM reimbursement WHERE booking_id=$1 AND category IN (`+list+`)`, bookingID)
	return err
}

func (r *PostgresBookingRepo) insertBookingTx(tx *sql.Tx, b *models.Booking) error {
	_, err := tx.Exec(`
		INSERT INTO booking(
			id, client_name, vehicle_type, origin, destination,
			booking_date, billing_date, due_date, driver_id, driver_name,
			booking_rate, driver_rate, toll_fee, fuel, others,
			expense_payment_method, credited_to, ewt_applied, status,
			completion_date, created_by, created_at, updated_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
	`,
		b.ID, b.ClientName, b.VehicleType, b.Origin, b.Destination,
		b.BookingDate, b.BillingDate, b.DueDate, b.DriverID, b.DriverName,
		b.BookingRate, b.DriverRate,
		b.ExpectedExpenses.TollFee, b.ExpectedExpenses.Fuel, b.ExpectedExpenses.Others,
		b.ExpensePaymentMethod, b.CreditedTo, b.EWTApplied, b.Status,
		nullTime(b.CompletionDate), b.CreatedBy, b.CreatedAt, nullTime(b.UpdatedAt),
	)
	return err
}

func (r *PostgresBookingRepo) CreateBooking(b *models.Booking, costs []finance.RoutedCost) error {
	if b.ID == "" {
		b.ID = newDocID()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = nowUTC()
	}
	if b.Status == "" {
		b.Status = models.BookingPending
	}
	for _, c := range costs {
		if c.Expense != nil {
			c.Expense.BookingID = b.ID
		}
		if c.Reimbursement != nil {
			c.Reimbursement.BookingID = b.ID
		}
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := r.insertBookingTx(tx, b); err != nil {
		return err
	}
	if err := insertRoutedCostsTx(tx, costs); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PostgresBookingRepo) UpdateBooking(b *models.Booking, costs []finance.RoutedCost) error {
	now := nowUTC()
	b.UpdatedAt = &now

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE booking SET
			client_name=$2, vehicle_type=$3, origin=$4, destination=$5,
			booking_date=$6, billing_date=$7, due_date=$8, driver_id=$9, driver_name=$10,
			booking_rate=$11, driver_rate=$12, toll_fee=$13, fuel=$14, others=$15,
			expense_payment_method=$16, credited_to=$17, ewt_applied=$18,
			updated_at=$19
		WHERE id=$1
	`,
		b.ID, b.ClientName, b.VehicleType, b.Origin, b.Destination,
		b.BookingDate, b.BillingDate, b.DueDate, b.DriverID, b.DriverName,
		b.BookingRate, b.DriverRate,
		b.ExpectedExpenses.TollFee, b.ExpectedExpenses.Fuel, b.ExpectedExpenses.Others,
		b.ExpensePaymentMethod, b.CreditedTo, b.EWTApplied,
		b.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("booking not found")
	}

	if err := deleteMobilizationCostsTx(tx, b.ID); err != nil {
		return err
	}
	if err := insertRoutedCostsTx(tx, costs); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PostgresBookingRepo) GetBookings(filters map[string]interface{}) ([]*models.Booking, error) {
	where, args := buildWhere(filters, bookingFilterColumns)

	rows, err := r.DB.Query(`SELECT `+bookingColumns+` FROM booking`+where+` ORDER BY booking_date DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresBookingRepo) GetBookingByID(id string) (*models.Booking, error) {
	b, err := scanBooking(r.DB.QueryRow(`SELECT `+bookingColumns+` FROM booking WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (r *PostgresBookingRepo) UpdateStatus(id string, status models.BookingStatus, completion *time.Time) error {
	res, err := r.DB.Exec(`
		UPDATE booking
		SET status=$2, completion_date=COALESCE($3, completion_date), updated_at=$4
		WHERE id=$1
	`, id, status, nullTime(completion), nowUTC())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("booking not found")
	}
	return nil
}

func (r *PostgresBookingRepo) DeleteBooking(id string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM booking WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("booking not found")
	}
	if _, err := tx.Exec(`DELETE FROM expense WHERE booking_id=$1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM reimbursement WHERE booking_id=$1`, id); err != nil {
		return err
	}
	return tx.Commit()
}
