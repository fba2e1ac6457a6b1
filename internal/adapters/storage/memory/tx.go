package memory

import (
	"context"
	"time"

	"dog-walk-service/internal/domain/errs"
	"dog-walk-service/internal/domain/users"
	"dog-walk-service/internal/domain/walks"
)

// memTx opera directo sobre el state; Store.Atomically ya tiene el lock tomado.
type memTx struct {
	st *state
}

func (t *memTx) DogExists(ctx context.Context, dogID int64) (bool, error) {
	_, ok := t.st.dogs[dogID]
	return ok, nil
}

func (t *memTx) UserRole(ctx context.Context, userID int64) (users.Role, error) {
	u, ok := t.st.users[userID]
	if !ok {
		return "", errs.NotFound("user %d", userID)
	}
	return u.Role, nil
}

func (t *memTx) CreateRequest(ctx context.Context, r walks.Request) (walks.Request, error) {
	if _, ok := t.st.dogs[r.DogID]; !ok {
		return walks.Request{}, errs.NotFound("dog %d", r.DogID)
	}
	t.st.seq.request++
	r.ID = t.st.seq.request
	t.st.requests[r.ID] = r
	return r, nil
}

func (t *memTx) LockRequest(ctx context.Context, id int64) (walks.Request, error) {
	r, ok := t.st.requests[id]
	if !ok {
		return walks.Request{}, errs.NotFound("walk request %d", id)
	}
	return r, nil
}

func (t *memTx) SetRequestStatus(ctx context.Context, id int64, status walks.RequestStatus, at time.Time) error {
	r, ok := t.st.requests[id]
	if !ok {
		return errs.NotFound("walk request %d", id)
	}
	r.Status = status
	r.UpdatedAt = at
	t.st.requests[id] = r
	return nil
}

func (t *memTx) CreateApplication(ctx context.Context, a walks.Application) (walks.Application, error) {
	if _, ok := t.st.requests[a.RequestID]; !ok {
		return walks.Application{}, errs.NotFound("walk request %d", a.RequestID)
	}
	for _, existing := range t.st.applications {
		if existing.RequestID == a.RequestID && existing.WalkerID == a.WalkerID {
			return walks.Application{}, errs.Conflict("walker %d already applied to walk request %d", a.WalkerID, a.RequestID)
		}
	}
	t.st.seq.application++
	a.ID = t.st.seq.application
	t.st.applications[a.ID] = a
	return a, nil
}

func (t *memTx) GetApplication(ctx context.Context, id int64) (walks.Application, error) {
	a, ok := t.st.applications[id]
	if !ok {
		return walks.Application{}, errs.NotFound("application %d", id)
	}
	return a, nil
}

func (t *memTx) LockApplications(ctx context.Context, requestID int64) ([]walks.Application, error) {
	return t.st.applicationsFor(requestID), nil
}

func (t *memTx) SetApplicationStatus(ctx context.Context, id int64, status walks.ApplicationStatus, at time.Time) error {
	a, ok := t.st.applications[id]
	if !ok {
		return errs.NotFound("application %d", id)
	}
	a.Status = status
	a.UpdatedAt = at
	t.st.applications[id] = a
	return nil
}

func (t *memTx) CreateRating(ctx context.Context, r walks.Rating) (walks.Rating, error) {
	if _, ok := t.st.applications[r.ApplicationID]; !ok {
		return walks.Rating{}, errs.NotFound("application %d", r.ApplicationID)
	}
	t.st.seq.rating++
	r.ID = t.st.seq.rating
	t.st.ratings[r.ID] = r
	return r, nil
}

func (t *memTx) CountRatings(ctx context.Context, applicationID int64) (int, error) {
	n := 0
	for _, r := range t.st.ratings {
		if r.ApplicationID == applicationID {
			n++
		}
	}
	return n, nil
}
