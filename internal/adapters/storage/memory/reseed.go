package memory

import (
	"context"
	"time"

	"dog-walk-service/internal/domain/dogs"
	"dog-walk-service/internal/domain/users"
	"dog-walk-service/internal/domain/walks"
	"dog-walk-service/internal/seed"
)

// Reseed arma un state nuevo y lo reemplaza de una vez; si el fixture es inválido
// el state anterior queda intacto.
func (s *Store) Reseed(ctx context.Context, f seed.Fixture) error {
	if err := f.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	next := newState()

	userIDs := make(map[string]int64, len(f.Users))
	for _, u := range f.Users {
		next.seq.user++
		id := next.seq.user
		next.users[id] = users.User{
			ID:           id,
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			Role:         u.Role,
			CreatedAt:    now,
		}
		userIDs[u.Username] = id
	}

	dogIDs := make([]int64, len(f.Dogs))
	for i, d := range f.Dogs {
		next.seq.dog++
		id := next.seq.dog
		next.dogs[id] = dogs.Dog{ID: id, OwnerID: userIDs[d.Owner], Name: d.Name, Size: d.Size, CreatedAt: now}
		dogIDs[i] = id
	}

	requestIDs := make([]int64, len(f.Requests))
	for i, r := range f.Requests {
		next.seq.request++
		id := next.seq.request
		next.requests[id] = walks.Request{
			ID:              id,
			DogID:           dogIDs[r.Dog],
			RequestedTime:   r.RequestedTime,
			DurationMinutes: r.DurationMinutes,
			Location:        r.Location,
			Status:          r.Status,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		requestIDs[i] = id
	}

	appIDs := make([]int64, len(f.Applications))
	for i, a := range f.Applications {
		next.seq.application++
		id := next.seq.application
		next.applications[id] = walks.Application{
			ID:        id,
			RequestID: requestIDs[a.Request],
			WalkerID:  userIDs[a.Walker],
			Status:    a.Status,
			CreatedAt: now,
			UpdatedAt: now,
		}
		appIDs[i] = id
	}

	for _, rt := range f.Ratings {
		next.seq.rating++
		id := next.seq.rating
		next.ratings[id] = walks.Rating{
			ID:            id,
			ApplicationID: appIDs[rt.Application],
			Rating:        rt.Rating,
			Comment:       rt.Comment,
			CreatedAt:     now,
		}
	}

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
	return nil
}
