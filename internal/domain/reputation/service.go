package reputation

import (
	"context"
	"time"

	"dog-walk-service/internal/platform/logger"
)

const invalidateTimeout = 2 * time.Second

type Service struct {
	repo  Repository
	cache Cache
	log   logger.Logger
}

// NewService acepta cache nil.
func NewService(repo Repository, cache Cache, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func (s *Service) Summaries(ctx context.Context) ([]Summary, error) {
	var (
		gen       int64
		cacheable bool
	)
	if s.cache != nil {
		items, g, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn("summary cache read failed", map[string]any{"error": err.Error()})
		} else if ok {
			return items, nil
		} else {
			gen, cacheable = g, true
		}
	}

	items, err := s.repo.SummarizeWalkers(ctx)
	if err != nil {
		return nil, err
	}

	// Sin generación conocida no se escribe: podría pisar una invalidación.
	if cacheable {
		if err := s.cache.Set(ctx, gen, items); err != nil {
			s.log.Warn("summary cache write failed", map[string]any{"error": err.Error()})
		}
	}
	return items, nil
}

// Invalidate descarta el resumen cacheado; se llama después de cada cambio de estado.
// El cambio ya está commiteado, así que no se corta si el cliente se fue.
func (s *Service) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), invalidateTimeout)
	defer cancel()
	return s.cache.Invalidate(ctx)
}
