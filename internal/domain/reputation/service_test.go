package reputation

import (
	"context"
	"errors"
	"testing"
)

type testRepo struct {
	calls int
	items []Summary
	err   error

	// during corre dentro de la lectura, después de armar el resultado.
	during func()
}

func (r *testRepo) SummarizeWalkers(ctx context.Context) ([]Summary, error) {
	r.calls++
	items := r.items
	if r.during != nil {
		r.during()
	}
	return items, r.err
}

type testCache struct {
	gen      int64
	entryGen int64
	items    []Summary
	has      bool
	getErr   error
	sets     int
}

func (c *testCache) Get(ctx context.Context) ([]Summary, int64, bool, error) {
	if c.getErr != nil {
		return nil, 0, false, c.getErr
	}
	if !c.has || c.entryGen != c.gen {
		return nil, c.gen, false, nil
	}
	return c.items, c.gen, true, nil
}

func (c *testCache) Set(ctx context.Context, gen int64, items []Summary) error {
	c.items = items
	c.entryGen = gen
	c.has = true
	c.sets++
	return nil
}

func (c *testCache) Invalidate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.gen++
	c.items = nil
	c.has = false
	return nil
}

func TestSummaries_ReadThroughCache(t *testing.T) {
	repo := &testRepo{items: []Summary{{WalkerUsername: "sam36"}}}
	cache := &testCache{}
	svc := NewService(repo, cache, nil)

	for i := 0; i < 3; i++ {
		got, err := svc.Summaries(context.Background())
		if err != nil {
			t.Fatalf("summaries: %v", err)
		}
		if len(got) != 1 || got[0].WalkerUsername != "sam36" {
			t.Fatalf("unexpected summaries: %+v", got)
		}
	}
	if repo.calls != 1 || cache.sets != 1 {
		t.Fatalf("expected one store read and one cache fill, got calls=%d sets=%d", repo.calls, cache.sets)
	}

	if err := svc.Invalidate(context.Background()); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, err := svc.Summaries(context.Background()); err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if repo.calls != 2 {
		t.Fatalf("expected store read after invalidation, got %d", repo.calls)
	}
}

func TestSummaries_CacheErrorFallsBackToStore(t *testing.T) {
	repo := &testRepo{items: []Summary{{WalkerUsername: "bobwalker"}}}
	svc := NewService(repo, &testCache{getErr: errors.New("redis down")}, nil)

	got, err := svc.Summaries(context.Background())
	if err != nil {
		t.Fatalf("cache errors must not fail the read: %v", err)
	}
	if len(got) != 1 || repo.calls != 1 {
		t.Fatalf("expected store read, got %+v calls=%d", got, repo.calls)
	}
}

func TestSummaries_StoreErrorIsReturned(t *testing.T) {
	boom := errors.New("store down")
	svc := NewService(&testRepo{err: boom}, nil, nil)

	if _, err := svc.Summaries(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if err := svc.Invalidate(context.Background()); err != nil {
		t.Fatalf("invalidate without cache must be a no-op: %v", err)
	}
}

func TestSummaries_InvalidationDuringReadIsNotOverwritten(t *testing.T) {
	repo := &testRepo{items: []Summary{{WalkerUsername: "bobwalker"}}}
	cache := &testCache{}
	svc := NewService(repo, cache, nil)

	// Un Rate commitea mientras el resumen viejo todavía está en vuelo.
	repo.during = func() {
		repo.during = nil
		repo.items = []Summary{{WalkerUsername: "bobwalker", TotalRatings: 1, CompletedWalks: 1}}
		if err := svc.Invalidate(context.Background()); err != nil {
			t.Fatalf("invalidate: %v", err)
		}
	}

	first, err := svc.Summaries(context.Background())
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if first[0].TotalRatings != 0 {
		t.Fatalf("the in-flight read returns what it saw, got %+v", first[0])
	}

	got, err := svc.Summaries(context.Background())
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if got[0].TotalRatings != 1 || got[0].CompletedWalks != 1 {
		t.Fatalf("expected fresh summary after invalidation, got %+v", got[0])
	}
	if repo.calls != 2 {
		t.Fatalf("expected second store read, got %d", repo.calls)
	}
}

func TestInvalidate_SurvivesCancelledRequestContext(t *testing.T) {
	repo := &testRepo{items: []Summary{{WalkerUsername: "sam36"}}}
	cache := &testCache{}
	svc := NewService(repo, cache, nil)

	if _, err := svc.Summaries(context.Background()); err != nil {
		t.Fatalf("summaries: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := svc.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate with a cancelled request context: %v", err)
	}
	if _, err := svc.Summaries(context.Background()); err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if repo.calls != 2 {
		t.Fatalf("expected store read after invalidation, got %d", repo.calls)
	}
}
