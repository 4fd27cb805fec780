package models

import "time"

// ExpectedExpenses are the mobilization cost estimates captured with a booking.
type ExpectedExpenses struct {
	TollFee float64 `json:"toll_fee" bson:"toll_fee" db:"toll_fee"`
	Fuel    float64 `json:"fuel" bson:"fuel" db:"fuel"`
	Others  float64 `json:"others" bson:"others" db:"others"`
}

type Booking struct {
	ID                   string           `json:"id" bson:"_id,omitempty" db:"id"`
	ClientName           string           `json:"client_name" bson:"client_name" db:"client_name"`
	VehicleType          string           `json:"vehicle_type" bson:"vehicle_type" db:"vehicle_type"`
	Origin               string           `json:"origin" bson:"origin" db:"origin"`
	Destination          string           `json:"destination" bson:"destination" db:"destination"`
	BookingDate          time.Time        `json:"booking_date" bson:"booking_date" db:"booking_date"`
	BillingDate          time.Time        `json:"billing_date" bson:"billing_date" db:"billing_date"`
	DueDate              time.Time        `json:"due_date" bson:"due_date" db:"due_date"`
	DriverID             string           `json:"driver_id" bson:"driver_id" db:"driver_id"`
	DriverName           string           `json:"driver_name" bson:"driver_name" db:"driver_name"`
	BookingRate          float64          `json:"booking_rate" bson:"booking_rate" db:"booking_rate"`
	DriverRate           float64          `json:"driver_rate" bson:"driver_rate" db:"driver_rate"`
	ExpectedExpenses     ExpectedExpenses `json:"expected_expenses" bson:"expected_expenses"`
	ExpensePaymentMethod PaymentMethod    `json:"expense_payment_method" bson:"expense_payment_method" db:"expense_payment_method"`
	CreditedTo           string           `json:"credited_to,omitempty" bson:"credited_to,omitempty" db:"credited_to"`
	EWTApplied           bool             `json:"ewt_applied" bson:"ewt_applied" db:"ewt_applied"`
	Status               BookingStatus    `json:"status" bson:"status" db:"status"`
	CompletionDate       *time.Time       `json:"completion_date,omitempty" bson:"completion_date,omitempty" db:"completion_date"`
	CreatedBy            string           `json:"created_by" bson:"created_by" db:"created_by"`
	CreatedAt            time.Time        `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt            *time.Time       `json:"updated_at,omitempty" bson:"updated_at,omitempty" db:"updated_at"`
}
