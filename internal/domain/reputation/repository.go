package reputation

import "context"

// Repository resuelve los resúmenes en una sola lectura consistente del store.
type Repository interface {
	SummarizeWalkers(ctx context.Context) ([]Summary, error)
}

// Cache es opcional; un error de cache nunca rompe la lectura.
//
// Cada entrada lleva la generación vigente cuando empezó la lectura del store.
// Invalidate avanza la generación, así que un Set con generación vieja
// (una lectura que cruzó una invalidación) nunca se sirve.
type Cache interface {
	// Get devuelve la generación actual aunque no haya entrada vigente.
	Get(ctx context.Context) (items []Summary, gen int64, ok bool, err error)
	Set(ctx context.Context, gen int64, items []Summary) error
	Invalidate(ctx context.Context) error
}
