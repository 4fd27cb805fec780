package repository

import (
	"database/sql"
	"encoding/json"
	"errors"

	"pacifictrucking/models"
)

type PostgresCompanyRepo struct {
	DB *sql.DB
}

func NewPostgresCompanyRepo(db *sql.DB) *PostgresCompanyRepo {
	return &PostgresCompanyRepo{DB: db}
}

func (r *PostgresCompanyRepo) SaveProfile(profile *models.CompanyProfile) error {
	if profile.ID == "" {
		profile.ID = newDocID()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = nowUTC()
	}

	mobile, err := json.Marshal(profile.Mobile)
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(`
		INSERT INTO company_profile(id,name,address,city,tin,footnote,mobile,created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT(id) DO UPDATE SET
			name=EXCLUDED.name, address=EXCLUDED.address, city=EXCLUDED.city,
			tin=EXCLUDED.tin, footnote=EXCLUDED.footnote, mobile=EXCLUDED.mobile
	`, profile.ID, profile.CompanyName, profile.Address, profile.City, profile.TIN, profile.Footnote, mobile, profile.CreatedAt)
	return err
}

func (r *PostgresCompanyRepo) GetProfile() (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	var mobile []byte
	err := r.DB.QueryRow(`
		SELECT id,name,address,city,tin,footnote,mobile,created_at
		FROM company_profile ORDER BY created_at DESC LIMIT 1
	`).Scan(&profile.ID, &profile.CompanyName, &profile.Address, &profile.City, &profile.TIN, &profile.Footnote, &mobile, &profile.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if len(mobile) > 0 {
		if err := json.Unmarshal(mobile, &profile.Mobile); err != nil {
			return nil, err
		}
	}
	return &profile, nil
}
