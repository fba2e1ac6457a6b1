package postgres

import (
	"context"
	"database/sql"
	"errors"

	"dog-walk-service/internal/domain/dogs"
	"dog-walk-service/internal/domain/errs"
)

func (s *Store) CreateDog(ctx context.Context, d dogs.Dog) (dogs.Dog, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO dogs (owner_id, name, size, created_at)
		VALUES ($1,$2,$3,$4)
		RETURNING dog_id
	`,
		d.OwnerID,
		d.Name,
		string(d.Size),
		d.CreatedAt,
	).Scan(&d.ID)
	if err != nil {
		return dogs.Dog{}, classify("create dog", err)
	}
	return d, nil
}

func (s *Store) GetDog(ctx context.Context, id int64) (dogs.Dog, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT dog_id, owner_id, name, size, created_at
		FROM dogs
		WHERE dog_id = $1
	`, id)

	var d dogs.Dog
	var size string
	if err := row.Scan(&d.ID, &d.OwnerID, &d.Name, &size, &d.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dogs.Dog{}, errs.NotFound("dog %d", id)
		}
		return dogs.Dog{}, classify("get dog", err)
	}
	d.Size = dogs.Size(size)
	return d, nil
}

func (s *Store) ListDogs(ctx context.Context) ([]dogs.Listing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.name AS dog_name, d.size, u.username AS owner_username
		FROM dogs d
		JOIN users u ON d.owner_id = u.user_id
		ORDER BY d.dog_id ASC
	`)
	if err != nil {
		return nil, classify("list dogs", err)
	}
	defer rows.Close()

	out := make([]dogs.Listing, 0)
	for rows.Next() {
		var l dogs.Listing
		var size string
		if err := rows.Scan(&l.DogName, &size, &l.OwnerUsername); err != nil {
			return nil, classify("list dogs", err)
		}
		l.Size = dogs.Size(size)
		out = append(out, l)
	}
	return out, classify("list dogs", rows.Err())
}
