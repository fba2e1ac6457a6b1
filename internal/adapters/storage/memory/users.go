package memory

import (
	"context"

	"dog-walk-service/internal/domain/errs"
	"dog-walk-service/internal/domain/users"
)

func (s *Store) CreateUser(ctx context.Context, u users.User) (users.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username {
			return users.User{}, errs.Conflict("username %q already taken", u.Username)
		}
		if existing.Email == u.Email {
			return users.User{}, errs.Conflict("email %q already registered", u.Email)
		}
	}

	s.seq.user++
	u.ID = s.seq.user
	s.users[u.ID] = u
	return u, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (users.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return users.User{}, errs.NotFound("user %d", id)
	}
	return u, nil
}
