package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"dog-walk-service/internal/domain/errs"

	"golang.org/x/crypto/bcrypt"
)

type testRepo struct {
	byID map[int64]User
	seq  int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]User{}}
}

func (r *testRepo) CreateUser(ctx context.Context, u User) (User, error) {
	for _, existing := range r.byID {
		if existing.Username == u.Username {
			return User{}, errs.Conflict("username taken")
		}
	}
	r.seq++
	u.ID = r.seq
	r.byID[u.ID] = u
	return u, nil
}

func (r *testRepo) GetUser(ctx context.Context, id int64) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, errs.NotFound("user %d", id)
	}
	return u, nil
}

func TestRegister_HashesPassword(t *testing.T) {
	svc := NewService(newTestRepo(), bcrypt.MinCost)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	u, err := svc.Register(context.Background(), RegisterInput{
		Username: "  sam36 ",
		Email:    "sam@example.com",
		Password: "secret123",
		Role:     RoleWalker,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.ID == 0 || u.Username != "sam36" || !u.CreatedAt.Equal(fixed) {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.PasswordHash == "secret123" {
		t.Fatalf("password must not be stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("hash does not match password: %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(newTestRepo(), bcrypt.MinCost)
	cases := map[string]RegisterInput{
		"no username": {Email: "a@example.com", Password: "x", Role: RoleOwner},
		"bad email":   {Username: "a", Email: "nope", Password: "x", Role: RoleOwner},
		"no password": {Username: "a", Email: "a@example.com", Role: RoleOwner},
		"bad role":    {Username: "a", Email: "a@example.com", Password: "x", Role: "admin"},
	}
	for name, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, errs.ErrInvalidInput) {
			t.Fatalf("%s: expected invalid input, got %v", name, err)
		}
	}
}

func TestRegister_DuplicateAndLookup(t *testing.T) {
	svc := NewService(newTestRepo(), bcrypt.MinCost)
	in := RegisterInput{Username: "alice123", Email: "alice@example.com", Password: "x", Role: RoleOwner}

	u, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, errs.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	got, err := svc.GetByID(context.Background(), u.ID)
	if err != nil || got.Username != "alice123" {
		t.Fatalf("lookup: %+v %v", got, err)
	}
	if _, err := svc.GetByID(context.Background(), 0); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected not found for id 0, got %v", err)
	}
}

func TestHashPassword_OutOfRangeCostFallsBack(t *testing.T) {
	hash, err := HashPassword("pw", 99)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil || cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d (%v)", cost, err)
	}
}
