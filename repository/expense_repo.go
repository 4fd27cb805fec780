package repository

import "pacifictrucking/models"

type ExpenseRepository interface {
	CreateExpense(e *models.Expense) error
	GetExpenses(filters map[string]interface{}) ([]*models.Expense, error)
	DeleteExpense(id string) error
}
