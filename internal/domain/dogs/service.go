package dogs

import (
	"context"
	"strings"
	"time"

	"dog-walk-service/internal/domain/errs"
	"dog-walk-service/internal/domain/users"
)

// UserReader evita depender del servicio completo de users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (users.User, error)
}

type Service struct {
	repo  Repository
	users UserReader
	now   func() time.Time
}

func NewService(repo Repository, users UserReader) *Service {
	return &Service{
		repo:  repo,
		users: users,
		now:   time.Now,
	}
}

type CreateInput struct {
	OwnerID int64
	Name    string
	Size    Size
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Dog, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Dog{}, errs.Invalid("dog name required")
	}
	if !in.Size.Valid() {
		return Dog{}, errs.Invalid("size must be small, medium or large")
	}

	owner, err := s.users.GetByID(ctx, in.OwnerID)
	if err != nil {
		return Dog{}, err
	}
	if owner.Role != users.RoleOwner {
		return Dog{}, errs.Invalid("user %d is not an owner", owner.ID)
	}

	return s.repo.CreateDog(ctx, Dog{
		OwnerID:   owner.ID,
		Name:      name,
		Size:      in.Size,
		CreatedAt: s.now(),
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (Dog, error) {
	return s.repo.GetDog(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Listing, error) {
	return s.repo.ListDogs(ctx)
}
