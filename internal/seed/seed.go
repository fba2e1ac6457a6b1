package seed

import (
	"context"
	"fmt"
	"time"

	"dog-walk-service/internal/platform/logger"
)

// Reseeder reemplaza el contenido completo del store en una sola operación atómica:
// si falla, queda el estado previo.
type Reseeder interface {
	Reseed(ctx context.Context, f Fixture) error
}

// Run valida y carga el fixture. Debe correr antes de que el servidor acepte requests.
func Run(ctx context.Context, r Reseeder, f Fixture, log logger.Logger) error {
	if err := f.Validate(); err != nil {
		return err
	}

	start := time.Now()
	if err := r.Reseed(ctx, f); err != nil {
		return fmt.Errorf("reseed: %w", err)
	}

	log.Info("store reseeded", map[string]any{
		"users":        len(f.Users),
		"dogs":         len(f.Dogs),
		"requests":     len(f.Requests),
		"applications": len(f.Applications),
		"ratings":      len(f.Ratings),
		"duration_ms":  time.Since(start).Milliseconds(),
	})
	return nil
}
