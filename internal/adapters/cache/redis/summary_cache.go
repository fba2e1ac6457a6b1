// Package redis cachea el resumen de reputación de paseadores.
// El resumen completo se guarda bajo una sola key con TTL, sellado con la
// generación leída antes de consultar el store. Cualquier cambio de estado hace
// INCR de la key de generación, y una entrada con otra generación es un miss.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"dog-walk-service/internal/domain/reputation"

	goredis "github.com/redis/go-redis/v9"
)

const DefaultKey = "dogwalk:walkers:summary"

// Connect crea el cliente y hace ping con timeout corto.
func Connect(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

type SummaryCache struct {
	client goredis.Cmdable
	key    string
	genKey string
	ttl    time.Duration
}

func NewSummaryCache(client goredis.Cmdable, key string, ttl time.Duration) *SummaryCache {
	if key == "" {
		key = DefaultKey
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &SummaryCache{client: client, key: key, genKey: key + ":gen", ttl: ttl}
}

type cachedSummary struct {
	Gen   int64          `json:"gen"`
	Items []summaryEntry `json:"items"`
}

type summaryEntry struct {
	WalkerUsername string   `json:"walker_username"`
	TotalRatings   int      `json:"total_ratings"`
	AverageRating  *float64 `json:"average_rating"`
	CompletedWalks int      `json:"completed_walks"`
}

// Get lee generación y entrada en un solo MGET.
func (c *SummaryCache) Get(ctx context.Context) ([]reputation.Summary, int64, bool, error) {
	vals, err := c.client.MGet(ctx, c.genKey, c.key).Result()
	if err != nil {
		return nil, 0, false, err
	}

	gen, err := parseGen(vals[0])
	if err != nil {
		return nil, 0, false, err
	}
	raw, ok := vals[1].(string)
	if !ok {
		return nil, gen, false, nil
	}

	entryGen, items, err := decodeSummaries([]byte(raw))
	if err != nil {
		return nil, gen, false, err
	}
	if entryGen != gen {
		return nil, gen, false, nil
	}
	return items, gen, true, nil
}

func (c *SummaryCache) Set(ctx context.Context, gen int64, items []reputation.Summary) error {
	raw, err := encodeSummaries(gen, items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, raw, c.ttl).Err()
}

func (c *SummaryCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Incr(ctx, c.genKey)
		p.Del(ctx, c.key)
		return nil
	})
	return err
}

// MGET devuelve nil para keys inexistentes.
func parseGen(v any) (int64, error) {
	switch g := v.(type) {
	case nil:
		return 0, nil
	case string:
		n, err := strconv.ParseInt(g, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("decode summary generation %q: %w", g, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("decode summary generation: unexpected %T", v)
	}
}

func encodeSummaries(gen int64, items []reputation.Summary) ([]byte, error) {
	out := cachedSummary{Gen: gen, Items: make([]summaryEntry, 0, len(items))}
	for _, s := range items {
		out.Items = append(out.Items, summaryEntry{
			WalkerUsername: s.WalkerUsername,
			TotalRatings:   s.TotalRatings,
			AverageRating:  s.AverageRating,
			CompletedWalks: s.CompletedWalks,
		})
	}
	return json.Marshal(out)
}

func decodeSummaries(raw []byte) (int64, []reputation.Summary, error) {
	var cached cachedSummary
	if err := json.Unmarshal(raw, &cached); err != nil {
		return 0, nil, fmt.Errorf("decode cached summary: %w", err)
	}
	out := make([]reputation.Summary, 0, len(cached.Items))
	for _, e := range cached.Items {
		out = append(out, reputation.Summary{
			WalkerUsername: e.WalkerUsername,
			TotalRatings:   e.TotalRatings,
			AverageRating:  e.AverageRating,
			CompletedWalks: e.CompletedWalks,
		})
	}
	return cached.Gen, out, nil
}
