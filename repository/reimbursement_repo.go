package repository

import (
	"time"

	"pacifictrucking/models"
)

type ReimbursementRepository interface {
	CreateReimbursement(r *models.Reimbursement) error
	GetReimbursements(filters map[string]interface{}) ([]*models.Reimbursement, error)
	// Liquidate writes the official Expense (or CashAdvance for the
	// cash_advance category) and marks the reimbursement Liquidated, both
	// in one transaction. Only Pending reimbursements can be liquidated.
	Liquidate(id string, liquidatedBy string, now time.Time) (*models.Reimbursement, error)
}
