package walks

import (
	"context"
	"time"

	"dog-walk-service/internal/domain/users"
)

type Store interface {
	// ListOpenRequests devuelve solo status=open, ordenado por (requested_time, id).
	ListOpenRequests(ctx context.Context) ([]OpenRequest, error)
	GetRequest(ctx context.Context, id int64) (Request, error)
	ListApplications(ctx context.Context, requestID int64) ([]Application, error)

	// Atomically corre fn en una sola transacción. Si fn devuelve error no queda nada aplicado.
	Atomically(ctx context.Context, fn func(tx Tx) error) error
}

// Tx son las operaciones disponibles dentro de Atomically.
// Orden de locks: primero el Request, después sus Applications.
type Tx interface {
	DogExists(ctx context.Context, dogID int64) (bool, error)
	UserRole(ctx context.Context, userID int64) (users.Role, error)

	CreateRequest(ctx context.Context, r Request) (Request, error)
	LockRequest(ctx context.Context, id int64) (Request, error)
	SetRequestStatus(ctx context.Context, id int64, status RequestStatus, at time.Time) error

	CreateApplication(ctx context.Context, a Application) (Application, error)
	GetApplication(ctx context.Context, id int64) (Application, error)
	LockApplications(ctx context.Context, requestID int64) ([]Application, error)
	SetApplicationStatus(ctx context.Context, id int64, status ApplicationStatus, at time.Time) error

	CreateRating(ctx context.Context, r Rating) (Rating, error)
	CountRatings(ctx context.Context, applicationID int64) (int, error)
}
