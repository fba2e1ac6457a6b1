package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dog-walk-service/internal/domain/errs"
	"dog-walk-service/internal/domain/users"
	"dog-walk-service/internal/domain/walks"
)

type pgTx struct {
	tx *sql.Tx
}

func (t *pgTx) DogExists(ctx context.Context, dogID int64) (bool, error) {
	var ok bool
	err := t.tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM dogs WHERE dog_id = $1)`, dogID).Scan(&ok)
	if err != nil {
		return false, classify("dog exists", err)
	}
	return ok, nil
}

func (t *pgTx) UserRole(ctx context.Context, userID int64) (users.Role, error) {
	var role string
	err := t.tx.QueryRowContext(ctx, `SELECT role FROM users WHERE user_id = $1`, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errs.NotFound("user %d", userID)
		}
		return "", classify("user role", err)
	}
	return users.Role(role), nil
}

func (t *pgTx) CreateRequest(ctx context.Context, r walks.Request) (walks.Request, error) {
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO walk_requests (dog_id, requested_time, duration_minutes, location, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING request_id
	`,
		r.DogID,
		r.RequestedTime,
		r.DurationMinutes,
		r.Location,
		string(r.Status),
		r.CreatedAt,
		r.UpdatedAt,
	).Scan(&r.ID)
	if err != nil {
		return walks.Request{}, classify("create walk request", err)
	}
	return r, nil
}

func (t *pgTx) LockRequest(ctx context.Context, id int64) (walks.Request, error) {
	r, err := scanRequest(t.tx.QueryRowContext(ctx, `
		SELECT `+requestColumns+`
		FROM walk_requests
		WHERE request_id = $1
		FOR UPDATE
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return walks.Request{}, errs.NotFound("walk request %d", id)
		}
		return walks.Request{}, classify("lock walk request", err)
	}
	return r, nil
}

func (t *pgTx) SetRequestStatus(ctx context.Context, id int64, status walks.RequestStatus, at time.Time) error {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE walk_requests
		SET status = $2, updated_at = $3
		WHERE request_id = $1
	`, id, string(status), at)
	if err != nil {
		return classify("update walk request", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return errs.NotFound("walk request %d", id)
	}
	return nil
}

func (t *pgTx) CreateApplication(ctx context.Context, a walks.Application) (walks.Application, error) {
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO walk_applications (request_id, walker_id, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING application_id
	`,
		a.RequestID,
		a.WalkerID,
		string(a.Status),
		a.CreatedAt,
		a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		return walks.Application{}, classify("create application", err)
	}
	return a, nil
}

func (t *pgTx) GetApplication(ctx context.Context, id int64) (walks.Application, error) {
	a, err := scanApplication(t.tx.QueryRowContext(ctx, `
		SELECT `+applicationColumns+`
		FROM walk_applications
		WHERE application_id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return walks.Application{}, errs.NotFound("application %d", id)
		}
		return walks.Application{}, classify("get application", err)
	}
	return a, nil
}

func (t *pgTx) LockApplications(ctx context.Context, requestID int64) ([]walks.Application, error) {
	rows, err := t.tx.QueryContext(ctx, `
		SELECT `+applicationColumns+`
		FROM walk_applications
		WHERE request_id = $1
		ORDER BY application_id ASC
		FOR UPDATE
	`, requestID)
	if err != nil {
		return nil, classify("lock applications", err)
	}
	defer rows.Close()

	out := make([]walks.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, classify("lock applications", err)
		}
		out = append(out, a)
	}
	return out, classify("lock applications", rows.Err())
}

func (t *pgTx) SetApplicationStatus(ctx context.Context, id int64, status walks.ApplicationStatus, at time.Time) error {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE walk_applications
		SET status = $2, updated_at = $3
		WHERE application_id = $1
	`, id, string(status), at)
	if err != nil {
		return classify("update application", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return errs.NotFound("application %d", id)
	}
	return nil
}

func (t *pgTx) CreateRating(ctx context.Context, r walks.Rating) (walks.Rating, error) {
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO walk_ratings (application_id, rating, comments, created_at)
		VALUES ($1,$2,$3,$4)
		RETURNING rating_id
	`,
		r.ApplicationID,
		r.Rating,
		r.Comment,
		r.CreatedAt,
	).Scan(&r.ID)
	if err != nil {
		return walks.Rating{}, classify("create rating", err)
	}
	return r, nil
}

func (t *pgTx) CountRatings(ctx context.Context, applicationID int64) (int, error) {
	var n int
	err := t.tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM walk_ratings WHERE application_id = $1`, applicationID).Scan(&n)
	if err != nil {
		return 0, classify("count ratings", err)
	}
	return n, nil
}
