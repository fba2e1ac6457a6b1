package walks

import "time"

// Request es un pedido de paseo creado por el dueño de un perro.
type Request struct {
	ID    int64
	DogID int64

	RequestedTime   time.Time
	DurationMinutes int
	Location        string

	Status RequestStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndsAt es el momento a partir del cual el paseo ya ocurrió.
func (r Request) EndsAt() time.Time {
	return r.RequestedTime.Add(time.Duration(r.DurationMinutes) * time.Minute)
}

// Application es la postulación de un paseador a un Request.
type Application struct {
	ID        int64
	RequestID int64
	WalkerID  int64

	Status ApplicationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Rating se guarda contra la postulación aceptada; paseador y dueño se derivan
// recorriendo application -> request -> dog.
type Rating struct {
	ID            int64
	ApplicationID int64

	Rating  int
	Comment string

	CreatedAt time.Time
}

const (
	MinRating = 1
	MaxRating = 5

	// Un paseo dura como mucho un día.
	MaxDurationMinutes = 24 * 60
)

// OpenRequest es la fila del feed de trabajo disponible.
type OpenRequest struct {
	RequestID       int64
	DogName         string
	RequestedTime   time.Time
	DurationMinutes int
	Location        string
	OwnerUsername   string
}
