package repository

import "pacifictrucking/models"

type FundRepository interface {
	CreateContribution(c *models.RevolvingFundContribution) error
	GetContributions(filters map[string]interface{}) ([]*models.RevolvingFundContribution, error)
}
