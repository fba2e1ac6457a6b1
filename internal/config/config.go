// Package config carga la configuración desde variables de entorno (y .env si existe).
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"dog-walk-service/internal/platform/logger"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port            string
	ShutdownTimeout time.Duration

	// DB_DSN vacío => store en memoria
	DBDSN          string
	DBMaxOpenConns int
	MigrateOnStart bool
	SeedOnStart    bool

	// REDIS_ADDR vacío => sin cache de resúmenes
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	SummaryCacheTTL time.Duration

	// AMQP_URL vacío => sin publicación de eventos
	AMQPURL   string
	AMQPQueue string

	RateLimitRPS   float64
	RateLimitBurst int

	BcryptCost int

	Log logger.Options
}

// Load nunca falla: valores ausentes o inválidos usan el default.
func Load() Config {
	// .env es opcional
	_ = godotenv.Load()

	return Config{
		Port:            envStr("PORT", "8080"),
		ShutdownTimeout: envDur("SHUTDOWN_TIMEOUT", 10*time.Second),

		DBDSN:          strings.TrimSpace(os.Getenv("DB_DSN")),
		DBMaxOpenConns: envInt("DB_MAX_OPEN_CONNS", 10),
		MigrateOnStart: envBool("MIGRATE_ON_START", true),
		SeedOnStart:    envBool("SEED_ON_START", false),

		RedisAddr:       strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         envInt("REDIS_DB", 0),
		SummaryCacheTTL: envDur("SUMMARY_CACHE_TTL", 30*time.Second),

		AMQPURL:   strings.TrimSpace(os.Getenv("AMQP_URL")),
		AMQPQueue: envStr("AMQP_QUEUE", "walk.events"),

		RateLimitRPS:   envFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 40),

		BcryptCost: envInt("BCRYPT_COST", bcrypt.DefaultCost),

		Log: logger.Options{
			Level:  logger.ParseLevel(os.Getenv("LOG_LEVEL")),
			Format: logger.ParseFormat(os.Getenv("LOG_FORMAT")),
			App:    envStr("APP_NAME", "dog-walk-service"),
		},
	}
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func envStr(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envFloat(k string, d float64) float64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil && dur > 0 {
		return dur
	}
	return d
}
