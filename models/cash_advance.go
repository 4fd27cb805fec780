package models

import "time"

// CashAdvance is a driver advance netted against the same week's pay.
// Credit-funded advances are routed to Reimbursement and only become
// CashAdvance records on liquidation.
type CashAdvance struct {
	ID         string        `json:"id" bson:"_id,omitempty" db:"id"`
	DriverID   string        `json:"driver_id" bson:"driver_id" db:"driver_id"`
	DriverName string        `json:"driver_name" bson:"driver_name" db:"driver_name"`
	Amount     float64       `json:"amount" bson:"amount" db:"amount"`
	Date       time.Time     `json:"date" bson:"date" db:"date"`
	PaidBy     PaymentMethod `json:"paid_by" bson:"paid_by" db:"paid_by"`
	CreditedTo string        `json:"credited_to,omitempty" bson:"credited_to,omitempty" db:"credited_to"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at" db:"created_at"`
}
