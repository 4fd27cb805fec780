package repository

import (
	"database/sql"

	"pacifictrucking/models"
)

type PostgresFundRepo struct {
	DB *sql.DB
}

func NewPostgresFundRepo(db *sql.DB) *PostgresFundRepo {
	return &PostgresFundRepo{DB: db}
}

func (r *PostgresFundRepo) CreateContribution(c *models.RevolvingFundContribution) error {
	if c.ID == "" {
		c.ID = newDocID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = nowUTC()
	}
	_, err := r.DB.Exec(`
		INSERT INTO revolving_fund(id,contributor,amount,date,created_at)
		VALUES($1,$2,$3,$4,$5)
	`, c.ID, c.Contributor, c.Amount, c.Date, c.CreatedAt)
	return err
}

func (r *PostgresFundRepo) GetContributions(filters map[string]interface{}) ([]*models.RevolvingFundContribution, error) {
	where, args := buildWhere(filters, map[string]bool{"contributor": true})

	rows, err := r.DB.Query(`
		SELECT id,contributor,amount,date,created_at
		FROM revolving_fund`+where+` ORDER BY date DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.RevolvingFundContribution
	for rows.Next() {
		var c models.RevolvingFundContribution
		if err := rows.Scan(&c.ID, &c.Contributor, &c.Amount, &c.Date, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
