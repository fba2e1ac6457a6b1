package router

import (
	"context"
	"net/http"
	"time"

	_ "dog-walk-service/docs"
	mem "dog-walk-service/internal/adapters/storage/memory"
	"dog-walk-service/internal/domain/dogs"
	"dog-walk-service/internal/domain/reputation"
	"dog-walk-service/internal/domain/users"
	"dog-walk-service/internal/domain/walks"
	"dog-walk-service/internal/middleware"
	"dog-walk-service/internal/platform/logger"
	"dog-walk-service/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Store es lo que necesitan todos los módulos; lo implementan memory.Store y postgres.Store.
type Store interface {
	users.Repository
	dogs.Repository
	walks.Store
	reputation.Repository
}

type Options struct {
	Logger logger.Logger // nil => Nop

	// Opcional: si viene nil, usa el store in-memory.
	Store Store

	// Opcionales: cache de resúmenes y publisher externo de eventos.
	Cache     reputation.Cache
	Publisher walks.Publisher

	Metrics    *metrics.Metrics // nil => registry nuevo
	BcryptCost int

	RateLimitRPS   float64 // 0 => sin límite
	RateLimitBurst int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	store := opts.Store
	if store == nil {
		store = mem.NewStore()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.Metrics(m))
	r.Use(middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))

	r.Get("/health", healthHandler(store))
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Services por módulo
	reputationSvc := reputation.NewService(store, opts.Cache, log)

	usersSvc := users.NewService(invalidatingUsers{Repository: store, svc: reputationSvc, log: log}, opts.BcryptCost)
	dogsSvc := dogs.NewService(store, usersSvc)

	// Después de cada transición: cache fuera, métrica, y publisher externo si hay.
	pub := walks.Publishers{
		walks.PublisherFunc(func(ctx context.Context, e walks.Event) error {
			return reputationSvc.Invalidate(ctx)
		}),
		walks.PublisherFunc(func(_ context.Context, e walks.Event) error {
			m.RecordWalkEvent(string(e.Type))
			return nil
		}),
	}
	if opts.Publisher != nil {
		pub = append(pub, opts.Publisher)
	}
	walksSvc := walks.NewService(store, pub, log)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, log)
	dogs.RegisterRoutes(r, dogsSvc, log)
	walks.RegisterRoutes(r, walksSvc, log)
	reputation.RegisterRoutes(r, reputationSvc, log)

	return r
}

type pinger interface {
	Ping(ctx context.Context) error
}

func healthHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p, ok := store.(pinger); ok {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := p.Ping(ctx); err != nil {
				http.Error(w, "store unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

// invalidatingUsers descarta el resumen cacheado cuando se registra un usuario
// (un paseador nuevo aparece en el resumen con ceros).
type invalidatingUsers struct {
	users.Repository
	svc *reputation.Service
	log logger.Logger
}

func (u invalidatingUsers) CreateUser(ctx context.Context, in users.User) (users.User, error) {
	out, err := u.Repository.CreateUser(ctx, in)
	if err != nil {
		return users.User{}, err
	}
	if err := u.svc.Invalidate(ctx); err != nil {
		u.log.Warn("summary cache invalidation failed", map[string]any{"error": err.Error()})
	}
	return out, nil
}
