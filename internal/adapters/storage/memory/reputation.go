package memory

import (
	"context"

	"dog-walk-service/internal/domain/reputation"
	"dog-walk-service/internal/domain/users"
	"dog-walk-service/internal/domain/walks"
)

// SummarizeWalkers arma los hechos bajo un mismo RLock y delega en reputation.Summarize.
func (s *Store) SummarizeWalkers(ctx context.Context) ([]reputation.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	walkers := make([]reputation.Walker, 0)
	for _, u := range s.users {
		if u.Role == users.RoleWalker {
			walkers = append(walkers, reputation.Walker{ID: u.ID, Username: u.Username})
		}
	}

	// postulación elegida de cada pedido completed
	selected := make(map[int64]walks.Application)
	completed := make([]reputation.CompletedWalk, 0)
	for _, a := range s.applications {
		if !a.Status.Selected() {
			continue
		}
		r, ok := s.requests[a.RequestID]
		if !ok || r.Status != walks.RequestCompleted {
			continue
		}
		selected[a.ID] = a
		completed = append(completed, reputation.CompletedWalk{WalkerID: a.WalkerID, RequestID: r.ID})
	}

	facts := make([]reputation.RatingFact, 0, len(s.ratings))
	for _, rt := range s.ratings {
		a, ok := selected[rt.ApplicationID]
		if !ok {
			continue
		}
		facts = append(facts, reputation.RatingFact{WalkerID: a.WalkerID, RatingID: rt.ID, Value: rt.Rating})
	}

	return reputation.Summarize(walkers, completed, facts), nil
}
