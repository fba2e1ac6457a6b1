// Package seed contiene el set de datos de ejemplo y el reseed usado por el bootstrap.
// El reseed es destructivo: se corre antes de aceptar tráfico, nunca en paralelo.
package seed

import (
	"strings"
	"time"

	"dog-walk-service/internal/domain/dogs"
	"dog-walk-service/internal/domain/errs"
	"dog-walk-service/internal/domain/users"
	"dog-walk-service/internal/domain/walks"
)

// Fixture describe el estado completo de las cinco tablas.
// Las referencias son por username (usuarios) o por índice en el slice correspondiente.
type Fixture struct {
	Users        []User
	Dogs         []Dog
	Requests     []Request
	Applications []Application
	Ratings      []Rating
}

type User struct {
	Username     string
	Email        string
	PasswordHash string
	Role         users.Role
}

type Dog struct {
	Owner string // username
	Name  string
	Size  dogs.Size
}

type Request struct {
	Dog             int // índice en Dogs
	RequestedTime   time.Time
	DurationMinutes int
	Location        string
	Status          walks.RequestStatus
}

type Application struct {
	Request int    // índice en Requests
	Walker  string // username
	Status  walks.ApplicationStatus
}

type Rating struct {
	Application int // índice en Applications
	Rating      int
	Comment     string
}

// Validate aplica las mismas invariantes que el write-path, para que un reseed
// no pueda dejar el modelo inconsistente. No exige una sola calificación por pedido:
// eso lo decide cada store (Postgres tiene índice único).
func (f Fixture) Validate() error {
	roles := make(map[string]users.Role, len(f.Users))
	emails := make(map[string]struct{}, len(f.Users))
	for i, u := range f.Users {
		name := strings.TrimSpace(u.Username)
		if name == "" {
			return errs.Invalid("fixture: user %d has no username", i)
		}
		if _, dup := roles[name]; dup {
			return errs.Invalid("fixture: duplicate username %q", name)
		}
		if _, dup := emails[u.Email]; dup || !strings.Contains(u.Email, "@") {
			return errs.Invalid("fixture: user %q has an invalid or duplicate email", name)
		}
		if u.PasswordHash == "" {
			return errs.Invalid("fixture: user %q has no password hash", name)
		}
		if !u.Role.Valid() {
			return errs.Invalid("fixture: user %q has invalid role %q", name, u.Role)
		}
		roles[name] = u.Role
		emails[u.Email] = struct{}{}
	}

	for i, d := range f.Dogs {
		if roles[d.Owner] != users.RoleOwner {
			return errs.Invalid("fixture: dog %d owner %q is not an owner", i, d.Owner)
		}
		if strings.TrimSpace(d.Name) == "" || !d.Size.Valid() {
			return errs.Invalid("fixture: dog %d has invalid name or size", i)
		}
	}

	for i, r := range f.Requests {
		if r.Dog < 0 || r.Dog >= len(f.Dogs) {
			return errs.Invalid("fixture: request %d references unknown dog %d", i, r.Dog)
		}
		if r.DurationMinutes <= 0 || r.DurationMinutes > walks.MaxDurationMinutes || strings.TrimSpace(r.Location) == "" || r.RequestedTime.IsZero() {
			return errs.Invalid("fixture: request %d has invalid duration, location or time", i)
		}
		if !r.Status.Valid() {
			return errs.Invalid("fixture: request %d has invalid status %q", i, r.Status)
		}
	}

	selected := make(map[int]int)
	type applyKey struct {
		request int
		walker  string
	}
	applied := make(map[applyKey]struct{})
	for i, a := range f.Applications {
		if a.Request < 0 || a.Request >= len(f.Requests) {
			return errs.Invalid("fixture: application %d references unknown request %d", i, a.Request)
		}
		if roles[a.Walker] != users.RoleWalker {
			return errs.Invalid("fixture: application %d walker %q is not a walker", i, a.Walker)
		}
		if !a.Status.Valid() {
			return errs.Invalid("fixture: application %d has invalid status %q", i, a.Status)
		}
		key := applyKey{request: a.Request, walker: a.Walker}
		if _, dup := applied[key]; dup {
			return errs.Invalid("fixture: walker %q applied twice to request %d", a.Walker, a.Request)
		}
		applied[key] = struct{}{}
		if a.Status.Selected() {
			selected[a.Request]++
		}
	}

	for i, r := range f.Requests {
		n := selected[i]
		switch r.Status {
		case walks.RequestOpen:
			if n != 0 {
				return errs.Invalid("fixture: open request %d has an accepted application", i)
			}
		case walks.RequestAccepted, walks.RequestCompleted:
			if n != 1 {
				return errs.Invalid("fixture: %s request %d needs exactly one accepted application, has %d", r.Status, i, n)
			}
		case walks.RequestCancelled:
			if n > 1 {
				return errs.Invalid("fixture: cancelled request %d has %d accepted applications", i, n)
			}
		}
	}

	for i, rt := range f.Ratings {
		if rt.Application < 0 || rt.Application >= len(f.Applications) {
			return errs.Invalid("fixture: rating %d references unknown application %d", i, rt.Application)
		}
		if rt.Rating < walks.MinRating || rt.Rating > walks.MaxRating {
			return errs.Invalid("fixture: rating %d out of range", i)
		}
		app := f.Applications[rt.Application]
		if !app.Status.Selected() || f.Requests[app.Request].Status != walks.RequestCompleted {
			return errs.Invalid("fixture: rating %d must reference the accepted application of a completed request", i)
		}
	}

	return nil
}
