package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const selectUser = `
	SELECT
		id,
		COALESCE(name, ''),
		email,
		COALESCE(password_hash, ''),
		COALESCE(role, 'user'),
		COALESCE(status, 'active'),
		COALESCE(email_verified, 0),
		created_at
	FROM users`

func (r UserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	return r.getOne(ctx, selectUser+` WHERE id=? LIMIT 1`, id)
}

func (r UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getOne(ctx, selectUser+` WHERE email=? LIMIT 1`, strings.ToLower(strings.TrimSpace(email)))
}

func (r UserRepository) getOne(ctx context.Context, query string, arg any) (models.User, error) {
	db := r.db()
	if db == nil {
		return models.User{}, domain.Internal(fmt.Errorf("database not connected"))
	}
	var u models.User
	err := db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Status,
		&u.EmailVerified,
		&u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFound("user")
	}
	if err != nil {
		return models.User{}, domain.Internal(fmt.Errorf("get user: %w", err))
	}
	return u, nil
}
