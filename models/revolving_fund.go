package models

import "time"

// RevolvingFundContribution is owner cash injected into the operating float.
// Purely additive to cash on hand.
type RevolvingFundContribution struct {
	ID          string    `json:"id" bson:"_id,omitempty" db:"id"`
	Contributor string    `json:"contributor" bson:"contributor" db:"contributor"`
	Amount      float64   `json:"amount" bson:"amount" db:"amount"`
	Date        time.Time `json:"date" bson:"date" db:"date"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
