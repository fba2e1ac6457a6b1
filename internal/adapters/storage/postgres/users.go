package postgres

import (
	"context"
	"database/sql"
	"errors"

	"dog-walk-service/internal/domain/errs"
	"dog-walk-service/internal/domain/users"
)

func (s *Store) CreateUser(ctx context.Context, u users.User) (users.User, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password_hash, role, created_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING user_id
	`,
		u.Username,
		u.Email,
		u.PasswordHash,
		string(u.Role),
		u.CreatedAt,
	).Scan(&u.ID)
	if err != nil {
		return users.User{}, classify("create user", err)
	}
	return u, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (users.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT user_id, username, email, password_hash, role, created_at
		FROM users
		WHERE user_id = $1
	`, id)

	var u users.User
	var role string
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&role,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, errs.NotFound("user %d", id)
		}
		return users.User{}, classify("get user", err)
	}
	u.Role = users.Role(role)
	return u, nil
}
