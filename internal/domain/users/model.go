package users

import "time"

// Role se fija al crear el usuario.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleWalker Role = "walker"
)

func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleWalker
}

type User struct {
	ID       int64
	Username string
	Email    string

	// Solo el hash bcrypt; el password en claro nunca se persiste.
	PasswordHash string

	Role      Role
	CreatedAt time.Time
}
