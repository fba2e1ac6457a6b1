package walks

import (
	"context"
	"strings"
	"time"

	"dog-walk-service/internal/domain/errs"
	"dog-walk-service/internal/domain/users"
	"dog-walk-service/internal/platform/logger"

	"github.com/google/uuid"
)

type Service struct {
	store Store
	pub   Publisher
	log   logger.Logger
	now   func() time.Time
}

// NewService acepta pub nil (no se publican eventos).
func NewService(store Store, pub Publisher, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store: store,
		pub:   pub,
		log:   log,
		now:   time.Now,
	}
}

type CreateRequestInput struct {
	DogID           int64
	RequestedTime   time.Time
	DurationMinutes int
	Location        string
}

func (s *Service) CreateRequest(ctx context.Context, in CreateRequestInput) (Request, error) {
	location := strings.TrimSpace(in.Location)
	if in.DurationMinutes <= 0 || in.DurationMinutes > MaxDurationMinutes {
		return Request{}, errs.Invalid("duration_minutes must be between 1 and %d", MaxDurationMinutes)
	}
	if in.RequestedTime.IsZero() {
		return Request{}, errs.Invalid("requested_time required")
	}
	if location == "" {
		return Request{}, errs.Invalid("location required")
	}

	var out Request
	err := s.store.Atomically(ctx, func(tx Tx) error {
		ok, err := tx.DogExists(ctx, in.DogID)
		if err != nil {
			return err
		}
		if !ok {
			return errs.NotFound("dog %d", in.DogID)
		}

		now := s.now()
		out, err = tx.CreateRequest(ctx, Request{
			DogID:           in.DogID,
			RequestedTime:   in.RequestedTime.UTC(),
			DurationMinutes: in.DurationMinutes,
			Location:        location,
			Status:          RequestOpen,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		return err
	})
	if err != nil {
		return Request{}, err
	}
	return out, nil
}

func (s *Service) GetRequest(ctx context.Context, id int64) (Request, error) {
	return s.store.GetRequest(ctx, id)
}

func (s *Service) ListOpen(ctx context.Context) ([]OpenRequest, error) {
	return s.store.ListOpenRequests(ctx)
}

func (s *Service) ListApplications(ctx context.Context, requestID int64) ([]Application, error) {
	if _, err := s.store.GetRequest(ctx, requestID); err != nil {
		return nil, err
	}
	return s.store.ListApplications(ctx, requestID)
}

// Apply registra la postulación (pending) de un paseador a un pedido abierto.
func (s *Service) Apply(ctx context.Context, requestID, walkerID int64) (Application, error) {
	var out Application
	err := s.store.Atomically(ctx, func(tx Tx) error {
		role, err := tx.UserRole(ctx, walkerID)
		if err != nil {
			return err
		}
		if role != users.RoleWalker {
			return errs.Invalid("user %d is not a walker", walkerID)
		}

		req, err := tx.LockRequest(ctx, requestID)
		if err != nil {
			return err
		}
		if req.Status != RequestOpen {
			return errs.Conflict("walk request %d is %s", req.ID, req.Status)
		}

		apps, err := tx.LockApplications(ctx, req.ID)
		if err != nil {
			return err
		}
		for _, a := range apps {
			if a.WalkerID == walkerID {
				return errs.Conflict("walker %d already applied to walk request %d", walkerID, req.ID)
			}
		}

		now := s.now()
		out, err = tx.CreateApplication(ctx, Application{
			RequestID: req.ID,
			WalkerID:  walkerID,
			Status:    ApplicationPending,
			CreatedAt: now,
			UpdatedAt: now,
		})
		return err
	})
	if err != nil {
		return Application{}, err
	}
	return out, nil
}

// Accept elige una postulación: la marca accepted, rechaza las hermanas pending
// y pasa el pedido a accepted, todo en la misma transacción.
func (s *Service) Accept(ctx context.Context, applicationID int64) (Application, error) {
	var out Application
	err := s.store.Atomically(ctx, func(tx Tx) error {
		app, err := tx.GetApplication(ctx, applicationID)
		if err != nil {
			return err
		}

		req, err := tx.LockRequest(ctx, app.RequestID)
		if err != nil {
			return err
		}
		if req.Status != RequestOpen {
			return errs.Conflict("walk request %d is %s", req.ID, req.Status)
		}

		apps, err := tx.LockApplications(ctx, req.ID)
		if err != nil {
			return err
		}

		var target *Application
		for i := range apps {
			if apps[i].ID == applicationID {
				target = &apps[i]
			}
			if apps[i].Status.Selected() {
				return errs.Conflict("walk request %d already has an accepted application", req.ID)
			}
		}
		if target == nil {
			return errs.NotFound("application %d", applicationID)
		}
		if target.Status != ApplicationPending {
			return errs.Conflict("application %d is %s", target.ID, target.Status)
		}

		now := s.now()
		for _, a := range apps {
			if a.ID == target.ID || a.Status != ApplicationPending {
				continue
			}
			if err := tx.SetApplicationStatus(ctx, a.ID, ApplicationRejected, now); err != nil {
				return err
			}
		}
		if err := tx.SetApplicationStatus(ctx, target.ID, ApplicationAccepted, now); err != nil {
			return err
		}
		if err := tx.SetRequestStatus(ctx, req.ID, RequestAccepted, now); err != nil {
			return err
		}

		out = *target
		out.Status = ApplicationAccepted
		out.UpdatedAt = now
		return nil
	})
	if err != nil {
		return Application{}, err
	}

	s.publish(ctx, Event{
		Type:          EventApplicationAccepted,
		RequestID:     out.RequestID,
		ApplicationID: out.ID,
		WalkerID:      out.WalkerID,
	})
	return out, nil
}

// Reject descarta una postulación pending; el pedido sigue abierto.
func (s *Service) Reject(ctx context.Context, applicationID int64) (Application, error) {
	var out Application
	err := s.store.Atomically(ctx, func(tx Tx) error {
		app, err := tx.GetApplication(ctx, applicationID)
		if err != nil {
			return err
		}
		if _, err := tx.LockRequest(ctx, app.RequestID); err != nil {
			return err
		}
		apps, err := tx.LockApplications(ctx, app.RequestID)
		if err != nil {
			return err
		}
		for _, a := range apps {
			if a.ID == app.ID {
				app = a
			}
		}
		if app.Status != ApplicationPending {
			return errs.Conflict("application %d is %s", app.ID, app.Status)
		}

		now := s.now()
		if err := tx.SetApplicationStatus(ctx, app.ID, ApplicationRejected, now); err != nil {
			return err
		}
		out = app
		out.Status = ApplicationRejected
		out.UpdatedAt = now
		return nil
	})
	if err != nil {
		return Application{}, err
	}
	return out, nil
}

// Complete pasa accepted -> completed una vez terminado el paseo.
// La postulación elegida también queda completed.
func (s *Service) Complete(ctx context.Context, requestID int64) (Request, error) {
	var (
		out      Request
		selected Application
	)
	err := s.store.Atomically(ctx, func(tx Tx) error {
		req, err := tx.LockRequest(ctx, requestID)
		if err != nil {
			return err
		}
		if !req.Status.CanTransitionTo(RequestCompleted) {
			return errs.Conflict("walk request %d is %s", req.ID, req.Status)
		}

		now := s.now()
		if now.Before(req.EndsAt()) {
			return errs.Conflict("walk request %d has not finished yet", req.ID)
		}

		apps, err := tx.LockApplications(ctx, req.ID)
		if err != nil {
			return err
		}
		found := false
		for _, a := range apps {
			if a.Status == ApplicationAccepted {
				selected = a
				found = true
				break
			}
		}
		if !found {
			return errs.Conflict("walk request %d has no accepted application", req.ID)
		}

		if err := tx.SetApplicationStatus(ctx, selected.ID, ApplicationCompleted, now); err != nil {
			return err
		}
		if err := tx.SetRequestStatus(ctx, req.ID, RequestCompleted, now); err != nil {
			return err
		}

		out = req
		out.Status = RequestCompleted
		out.UpdatedAt = now
		return nil
	})
	if err != nil {
		return Request{}, err
	}

	s.publish(ctx, Event{
		Type:          EventCompleted,
		RequestID:     out.ID,
		ApplicationID: selected.ID,
		WalkerID:      selected.WalkerID,
	})
	return out, nil
}

// Cancel es válido desde open o accepted. Las postulaciones pending quedan rejected.
func (s *Service) Cancel(ctx context.Context, requestID int64) (Request, error) {
	var out Request
	err := s.store.Atomically(ctx, func(tx Tx) error {
		req, err := tx.LockRequest(ctx, requestID)
		if err != nil {
			return err
		}
		if !req.Status.CanTransitionTo(RequestCancelled) {
			return errs.Conflict("walk request %d is %s", req.ID, req.Status)
		}

		apps, err := tx.LockApplications(ctx, req.ID)
		if err != nil {
			return err
		}

		now := s.now()
		for _, a := range apps {
			if a.Status != ApplicationPending {
				continue
			}
			if err := tx.SetApplicationStatus(ctx, a.ID, ApplicationRejected, now); err != nil {
				return err
			}
		}
		if err := tx.SetRequestStatus(ctx, req.ID, RequestCancelled, now); err != nil {
			return err
		}

		out = req
		out.Status = RequestCancelled
		out.UpdatedAt = now
		return nil
	})
	if err != nil {
		return Request{}, err
	}

	s.publish(ctx, Event{Type: EventCancelled, RequestID: out.ID})
	return out, nil
}

type RateInput struct {
	Rating  int
	Comment string
}

// Rate califica al paseador de un pedido completed. Una sola calificación por pedido.
func (s *Service) Rate(ctx context.Context, requestID int64, in RateInput) (Rating, error) {
	if in.Rating < MinRating || in.Rating > MaxRating {
		return Rating{}, errs.Invalid("rating must be between %d and %d", MinRating, MaxRating)
	}

	var (
		out      Rating
		selected Application
	)
	err := s.store.Atomically(ctx, func(tx Tx) error {
		req, err := tx.LockRequest(ctx, requestID)
		if err != nil {
			return err
		}
		if req.Status != RequestCompleted {
			return errs.Conflict("walk request %d is %s, only completed walks can be rated", req.ID, req.Status)
		}

		apps, err := tx.LockApplications(ctx, req.ID)
		if err != nil {
			return err
		}
		found := false
		for _, a := range apps {
			if a.Status.Selected() {
				selected = a
				found = true
				break
			}
		}
		if !found {
			return errs.Conflict("walk request %d has no accepted application", req.ID)
		}

		n, err := tx.CountRatings(ctx, selected.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			return errs.Conflict("walk request %d is already rated", req.ID)
		}

		out, err = tx.CreateRating(ctx, Rating{
			ApplicationID: selected.ID,
			Rating:        in.Rating,
			Comment:       strings.TrimSpace(in.Comment),
			CreatedAt:     s.now(),
		})
		return err
	})
	if err != nil {
		return Rating{}, err
	}

	s.publish(ctx, Event{
		Type:          EventRated,
		RequestID:     requestID,
		ApplicationID: selected.ID,
		WalkerID:      selected.WalkerID,
		Rating:        out.Rating,
	})
	return out, nil
}

// publish es best-effort: la transición ya está commiteada.
func (s *Service) publish(ctx context.Context, e Event) {
	if s.pub == nil {
		return
	}
	e.ID = uuid.NewString()
	e.OccurredAt = s.now()

	if err := s.pub.Publish(ctx, e); err != nil {
		s.log.Warn("publish walk event failed", map[string]any{
			"event_id":   e.ID,
			"event_type": string(e.Type),
			"request_id": e.RequestID,
			"error":      err.Error(),
		})
	}
}
