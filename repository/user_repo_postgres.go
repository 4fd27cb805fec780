package repository

import (
	"database/sql"
	"errors"

	"pacifictrucking/models"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

func (r *PostgresUserRepo) CreateUser(user *models.AppUser) error {
	if user.ID == "" {
		user.ID = newDocID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = nowUTC()
	}
	_, err := r.DB.Exec(`
		INSERT INTO app_user(id,name,email,role,password_hash,created_at)
		VALUES($1,$2,$3,$4,$5,$6)
	`, user.ID, user.Name, user.Email, user.Role, user.Password, user.CreatedAt)
	return err
}

func (r *PostgresUserRepo) GetUserByEmail(email string) (*models.AppUser, error) {
	var user models.AppUser
	err := r.DB.QueryRow(`
		SELECT id,name,email,role,password_hash,created_at FROM app_user WHERE email=$1
	`, email).Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.Password, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
