package postgres

import (
	"context"
	"database/sql"
	"time"

	"dog-walk-service/internal/seed"
)

// Reseed vacía las cinco tablas y carga el fixture en una sola transacción.
// Si algo falla se hace rollback y queda el estado previo.
func (s *Store) Reseed(ctx context.Context, f seed.Fixture) error {
	if err := f.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return classify("reseed begin", err)
	}
	if err := reseedTx(ctx, tx, f, time.Now().UTC()); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return classify("reseed commit", err)
	}
	return nil
}

func reseedTx(ctx context.Context, tx *sql.Tx, f seed.Fixture, now time.Time) error {
	if _, err := tx.ExecContext(ctx, `
		TRUNCATE walk_ratings, walk_applications, walk_requests, dogs, users RESTART IDENTITY CASCADE
	`); err != nil {
		return classify("reseed truncate", err)
	}

	userIDs := make(map[string]int64, len(f.Users))
	for _, u := range f.Users {
		var id int64
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO users (username, email, password_hash, role, created_at)
			VALUES ($1,$2,$3,$4,$5)
			RETURNING user_id
		`, u.Username, u.Email, u.PasswordHash, string(u.Role), now).Scan(&id); err != nil {
			return classify("reseed users", err)
		}
		userIDs[u.Username] = id
	}

	dogIDs := make([]int64, len(f.Dogs))
	for i, d := range f.Dogs {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO dogs (owner_id, name, size, created_at)
			VALUES ($1,$2,$3,$4)
			RETURNING dog_id
		`, userIDs[d.Owner], d.Name, string(d.Size), now).Scan(&dogIDs[i]); err != nil {
			return classify("reseed dogs", err)
		}
	}

	requestIDs := make([]int64, len(f.Requests))
	for i, r := range f.Requests {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO walk_requests (dog_id, requested_time, duration_minutes, location, status, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$6)
			RETURNING request_id
		`, dogIDs[r.Dog], r.RequestedTime, r.DurationMinutes, r.Location, string(r.Status), now).Scan(&requestIDs[i]); err != nil {
			return classify("reseed walk requests", err)
		}
	}

	appIDs := make([]int64, len(f.Applications))
	for i, a := range f.Applications {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO walk_applications (request_id, walker_id, status, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$4)
			RETURNING application_id
		`, requestIDs[a.Request], userIDs[a.Walker], string(a.Status), now).Scan(&appIDs[i]); err != nil {
			return classify("reseed applications", err)
		}
	}

	for _, rt := range f.Ratings {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO walk_ratings (application_id, rating, comments, created_at)
			VALUES ($1,$2,$3,$4)
		`, appIDs[rt.Application], rt.Rating, rt.Comment, now); err != nil {
			return classify("reseed ratings", err)
		}
	}

	return nil
}
