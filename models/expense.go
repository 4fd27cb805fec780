package models

import "time"

type Expense struct {
	ID          string          `json:"id" bson:"_id,omitempty" db:"id"`
	Category    ExpenseCategory `json:"category" bson:"category" db:"category"`
	Description string          `json:"description,omitempty" bson:"description,omitempty" db:"description"`
	Amount      float64         `json:"amount" bson:"amount" db:"amount"`
	VATIncluded bool            `json:"vat_included" bson:"vat_included" db:"vat_included"`
	InputVAT    float64         `json:"input_vat" bson:"input_vat" db:"input_vat"`
	PaidBy      PaymentMethod   `json:"paid_by" bson:"paid_by" db:"paid_by"`
	BookingID   string          `json:"booking_id,omitempty" bson:"booking_id,omitempty" db:"booking_id"`
	Date        time.Time       `json:"date" bson:"date" db:"date"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at" db:"created_at"`
}
