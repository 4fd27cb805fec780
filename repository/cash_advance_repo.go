package repository

import "pacifictrucking/models"

type CashAdvanceRepository interface {
	CreateCashAdvance(a *models.CashAdvance) error
	GetCashAdvances(filters map[string]interface{}) ([]*models.CashAdvance, error)
}
