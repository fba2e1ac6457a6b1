package users

import (
	"context"
	"strings"
	"time"

	"dog-walk-service/internal/domain/errs"
)

type Service struct {
	repo Repository
	cost int
	now  func() time.Time
}

func NewService(repo Repository, bcryptCost int) *Service {
	return &Service{
		repo: repo,
		cost: bcryptCost,
		now:  time.Now,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     Role
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if username == "" {
		return User{}, errs.Invalid("username required")
	}
	if !strings.Contains(email, "@") {
		return User{}, errs.Invalid("email must be a valid address")
	}
	if in.Password == "" {
		return User{}, errs.Invalid("password required")
	}
	if !in.Role.Valid() {
		return User{}, errs.Invalid("role must be owner or walker")
	}

	hash, err := HashPassword(in.Password, s.cost)
	if err != nil {
		return User{}, err
	}

	return s.repo.CreateUser(ctx, User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    s.now(),
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	if id <= 0 {
		return User{}, errs.NotFound("user %d", id)
	}
	return s.repo.GetUser(ctx, id)
}
