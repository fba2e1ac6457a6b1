package postgres

import (
	"context"
	"database/sql"
	"errors"

	"dog-walk-service/internal/domain/errs"
	"dog-walk-service/internal/domain/walks"
)

const requestColumns = `request_id, dog_id, requested_time, duration_minutes, location, status, created_at, updated_at`

const applicationColumns = `application_id, request_id, walker_id, status, created_at, updated_at`

// rowScanner cubre *sql.Row y *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(sc rowScanner) (walks.Request, error) {
	var r walks.Request
	var status string
	if err := sc.Scan(
		&r.ID,
		&r.DogID,
		&r.RequestedTime,
		&r.DurationMinutes,
		&r.Location,
		&status,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return walks.Request{}, err
	}
	r.Status = walks.RequestStatus(status)
	return r, nil
}

func scanApplication(sc rowScanner) (walks.Application, error) {
	var a walks.Application
	var status string
	if err := sc.Scan(
		&a.ID,
		&a.RequestID,
		&a.WalkerID,
		&status,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return walks.Application{}, err
	}
	a.Status = walks.ApplicationStatus(status)
	return a, nil
}

func (s *Store) ListOpenRequests(ctx context.Context) ([]walks.OpenRequest, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT wr.request_id, d.name AS dog_name, wr.requested_time, wr.duration_minutes, wr.location,
		       u.username AS owner_username
		FROM walk_requests wr
		JOIN dogs d ON wr.dog_id = d.dog_id
		JOIN users u ON d.owner_id = u.user_id
		WHERE wr.status = 'open'
		ORDER BY wr.requested_time ASC, wr.request_id ASC
	`)
	if err != nil {
		return nil, classify("list open requests", err)
	}
	defer rows.Close()

	out := make([]walks.OpenRequest, 0)
	for rows.Next() {
		var o walks.OpenRequest
		if err := rows.Scan(
			&o.RequestID,
			&o.DogName,
			&o.RequestedTime,
			&o.DurationMinutes,
			&o.Location,
			&o.OwnerUsername,
		); err != nil {
			return nil, classify("list open requests", err)
		}
		out = append(out, o)
	}
	return out, classify("list open requests", rows.Err())
}

func (s *Store) GetRequest(ctx context.Context, id int64) (walks.Request, error) {
	r, err := scanRequest(s.db.QueryRowContext(ctx, `
		SELECT `+requestColumns+`
		FROM walk_requests
		WHERE request_id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return walks.Request{}, errs.NotFound("walk request %d", id)
		}
		return walks.Request{}, classify("get walk request", err)
	}
	return r, nil
}

func (s *Store) ListApplications(ctx context.Context, requestID int64) ([]walks.Application, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+applicationColumns+`
		FROM walk_applications
		WHERE request_id = $1
		ORDER BY application_id ASC
	`, requestID)
	if err != nil {
		return nil, classify("list applications", err)
	}
	defer rows.Close()

	out := make([]walks.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, classify("list applications", err)
		}
		out = append(out, a)
	}
	return out, classify("list applications", rows.Err())
}

// Atomically abre una tx; las lecturas LockX usan FOR UPDATE para serializar
// transiciones concurrentes sobre el mismo pedido.
func (s *Store) Atomically(ctx context.Context, fn func(tx walks.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return classify("begin tx", err)
	}

	if err := fn(&pgTx{tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return classify("commit tx", err)
	}
	return nil
}
