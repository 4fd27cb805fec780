package models

import "time"

// Reimbursement is a credit-funded cost pending liquidation. Liquidation
// writes the corresponding Expense (or CashAdvance) and marks the
// reimbursement terminal; the record itself is never deleted by that step.
type Reimbursement struct {
	ID           string              `json:"id" bson:"_id,omitempty" db:"id"`
	Category     ExpenseCategory     `json:"category" bson:"category" db:"category"`
	Description  string              `json:"description,omitempty" bson:"description,omitempty" db:"description"`
	Amount       float64             `json:"amount" bson:"amount" db:"amount"`
	CreditedTo   string              `json:"credited_to" bson:"credited_to" db:"credited_to"`
	BookingID    string              `json:"booking_id,omitempty" bson:"booking_id,omitempty" db:"booking_id"`
	DriverID     string              `json:"driver_id,omitempty" bson:"driver_id,omitempty" db:"driver_id"`
	DriverName   string              `json:"driver_name,omitempty" bson:"driver_name,omitempty" db:"driver_name"`
	Status       ReimbursementStatus `json:"status" bson:"status" db:"status"`
	Date         time.Time           `json:"date" bson:"date" db:"date"`
	LiquidatedBy *string             `json:"liquidated_by,omitempty" bson:"liquidated_by,omitempty" db:"liquidated_by"`
	LiquidatedAt *time.Time          `json:"liquidated_at,omitempty" bson:"liquidated_at,omitempty" db:"liquidated_at"`
	CreatedAt    time.Time           `json:"created_at" bson:"created_at" db:"created_at"`
}
