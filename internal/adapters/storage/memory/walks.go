package memory

import (
	"context"
	"sort"

	"dog-walk-service/internal/domain/errs"
	"dog-walk-service/internal/domain/walks"
)

func (s *Store) ListOpenRequests(ctx context.Context) ([]walks.OpenRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]walks.OpenRequest, 0)
	for _, r := range s.requests {
		if r.Status != walks.RequestOpen {
			continue
		}
		d, ok := s.dogs[r.DogID]
		if !ok {
			continue
		}
		owner, ok := s.users[d.OwnerID]
		if !ok {
			continue
		}
		out = append(out, walks.OpenRequest{
			RequestID:       r.ID,
			DogName:         d.Name,
			RequestedTime:   r.RequestedTime,
			DurationMinutes: r.DurationMinutes,
			Location:        r.Location,
			OwnerUsername:   owner.Username,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].RequestedTime.Equal(out[j].RequestedTime) {
			return out[i].RequestedTime.Before(out[j].RequestedTime)
		}
		return out[i].RequestID < out[j].RequestID
	})
	return out, nil
}

func (s *Store) GetRequest(ctx context.Context, id int64) (walks.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.requests[id]
	if !ok {
		return walks.Request{}, errs.NotFound("walk request %d", id)
	}
	return r, nil
}

func (s *Store) ListApplications(ctx context.Context, requestID int64) ([]walks.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.applicationsFor(requestID), nil
}

func (st *state) applicationsFor(requestID int64) []walks.Application {
	out := make([]walks.Application, 0)
	for _, a := range st.applications {
		if a.RequestID == requestID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
