package dogs

import "context"

type Repository interface {
	CreateDog(ctx context.Context, d Dog) (Dog, error)
	GetDog(ctx context.Context, id int64) (Dog, error)

	// ListDogs devuelve todos los perros ordenados por id.
	ListDogs(ctx context.Context) ([]Listing, error)
}
