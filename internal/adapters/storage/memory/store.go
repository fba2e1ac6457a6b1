package memory

import (
	"context"
	"maps"
	"sync"

	"dog-walk-service/internal/domain/dogs"
	"dog-walk-service/internal/domain/users"
	"dog-walk-service/internal/domain/walks"
)

// Store guarda las cinco tablas en maps con un único mutex.
// Implementa los repositorios de users, dogs, walks y reputation; útil para dev y tests.
type Store struct {
	mu sync.RWMutex
	state
}

type state struct {
	users        map[int64]users.User
	dogs         map[int64]dogs.Dog
	requests     map[int64]walks.Request
	applications map[int64]walks.Application
	ratings      map[int64]walks.Rating

	seq sequences
}

type sequences struct {
	user, dog, request, application, rating int64
}

func NewStore() *Store {
	return &Store{state: newState()}
}

func newState() state {
	return state{
		users:        make(map[int64]users.User),
		dogs:         make(map[int64]dogs.Dog),
		requests:     make(map[int64]walks.Request),
		applications: make(map[int64]walks.Application),
		ratings:      make(map[int64]walks.Rating),
	}
}

// clone copia los maps (los valores son structs sin punteros compartidos).
func (s state) clone() state {
	return state{
		users:        maps.Clone(s.users),
		dogs:         maps.Clone(s.dogs),
		requests:     maps.Clone(s.requests),
		applications: maps.Clone(s.applications),
		ratings:      maps.Clone(s.ratings),
		seq:          s.seq,
	}
}

// Atomically toma el lock de escritura durante fn y restaura el snapshot si fn falla.
func (s *Store) Atomically(ctx context.Context, fn func(tx walks.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	if err := fn(&memTx{st: &s.state}); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}
