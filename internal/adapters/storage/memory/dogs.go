package memory

import (
	"context"
	"sort"

	"dog-walk-service/internal/domain/dogs"
	"dog-walk-service/internal/domain/errs"
)

func (s *Store) CreateDog(ctx context.Context, d dogs.Dog) (dogs.Dog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[d.OwnerID]; !ok {
		return dogs.Dog{}, errs.NotFound("user %d", d.OwnerID)
	}

	s.seq.dog++
	d.ID = s.seq.dog
	s.dogs[d.ID] = d
	return d, nil
}

func (s *Store) GetDog(ctx context.Context, id int64) (dogs.Dog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.dogs[id]
	if !ok {
		return dogs.Dog{}, errs.NotFound("dog %d", id)
	}
	return d, nil
}

func (s *Store) ListDogs(ctx context.Context) ([]dogs.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.dogs))
	for id := range s.dogs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]dogs.Listing, 0, len(ids))
	for _, id := range ids {
		d := s.dogs[id]
		owner, ok := s.users[d.OwnerID]
		if !ok {
			// join interno: un perro sin dueño no aparece
			continue
		}
		out = append(out, dogs.Listing{
			DogName:       d.Name,
			Size:          d.Size,
			OwnerUsername: owner.Username,
		})
	}
	return out, nil
}
