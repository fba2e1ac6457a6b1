package seed

import (
	"time"

	"dog-walk-service/internal/domain/dogs"
	"dog-walk-service/internal/domain/users"
	"dog-walk-service/internal/domain/walks"
)

// Default es el set de datos de ejemplo: tres dueños, dos paseadores, cinco perros.
// El password de cada usuario es su username (solo para dev).
func Default(bcryptCost int) (Fixture, error) {
	type account struct {
		username string
		email    string
		role     users.Role
	}
	accounts := []account{
		{"alice123", "alice@example.com", users.RoleOwner},
		{"bobwalker", "bob@example.com", users.RoleWalker},
		{"carol123", "carol@example.com", users.RoleOwner},
		{"sam36", "sam@example.com", users.RoleWalker},
		{"emily99", "emily@example.com", users.RoleOwner},
	}

	f := Fixture{}
	for _, a := range accounts {
		hash, err := users.HashPassword(a.username, bcryptCost)
		if err != nil {
			return Fixture{}, err
		}
		f.Users = append(f.Users, User{
			Username:     a.username,
			Email:        a.email,
			PasswordHash: hash,
			Role:         a.role,
		})
	}

	f.Dogs = []Dog{
		{Owner: "alice123", Name: "Max", Size: dogs.SizeMedium},
		{Owner: "carol123", Name: "Bella", Size: dogs.SizeSmall},
		{Owner: "alice123", Name: "Ben", Size: dogs.SizeLarge},
		{Owner: "carol123", Name: "Luna", Size: dogs.SizeMedium},
		{Owner: "emily99", Name: "Cooper", Size: dogs.SizeSmall},
	}

	at := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02 15:04:05", s)
		return t.UTC()
	}
	f.Requests = []Request{
		{Dog: 0, RequestedTime: at("2025-06-10 08:00:00"), DurationMinutes: 30, Location: "Parklands", Status: walks.RequestOpen},
		{Dog: 1, RequestedTime: at("2025-06-10 09:30:00"), DurationMinutes: 45, Location: "Beachside Ave", Status: walks.RequestAccepted},
		{Dog: 2, RequestedTime: at("2025-06-11 11:00:00"), DurationMinutes: 60, Location: "City Garden", Status: walks.RequestOpen},
		{Dog: 3, RequestedTime: at("2025-06-12 07:30:00"), DurationMinutes: 30, Location: "Riverside Trail", Status: walks.RequestCompleted},
		{Dog: 4, RequestedTime: at("2025-06-13 15:00:00"), DurationMinutes: 25, Location: "Prospect Park", Status: walks.RequestCompleted},
	}

	f.Applications = []Application{
		{Request: 0, Walker: "bobwalker", Status: walks.ApplicationPending},
		{Request: 1, Walker: "sam36", Status: walks.ApplicationAccepted},
		{Request: 3, Walker: "sam36", Status: walks.ApplicationCompleted},
		{Request: 4, Walker: "bobwalker", Status: walks.ApplicationCompleted},
	}

	f.Ratings = []Rating{
		{Application: 2, Rating: 5, Comment: "Great walk"},
		{Application: 3, Rating: 4, Comment: "Good walk"},
	}

	return f, nil
}
