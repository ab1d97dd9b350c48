package repositories

import (
	"context"
	"database/sql"
	"errors"

	"colectivo/internal/domain"
	"colectivo/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	DB *sqlx.DB
}

func (r UserRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := r.DB.GetContext(ctx, &u, `
		SELECT id, username, COALESCE(email,'') AS email, password_hash,
		       COALESCE(role,'staff') AS role, COALESCE(status,'active') AS status
		FROM users WHERE username = ? LIMIT 1`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
	}
	if err != nil {
		return models.User{}, storeError("get user", err)
	}
	return u, nil
}

func (r UserRepository) Create(ctx context.Context, u models.User) (int64, error) {
	res, err := r.DB.NamedExecContext(ctx, `
		INSERT INTO users (username, email, password_hash, role, status)
		VALUES (:username, :email, :password_hash, :role, :status)`, u)
	if err != nil {
		return 0, storeError("insert user", err)
	}
	return res.LastInsertId()
}
