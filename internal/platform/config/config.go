// Package config builds service configuration from environment variables so
// main stays lean.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures everything the server needs at startup. Optional
// collaborators (bureau, redis, kafka, postgres) are enabled by presence of
// their settings; an empty value means the corresponding stage or backend is
// skipped.
type Config struct {
	Addr string

	// DatabaseURL enables the PostgreSQL application repository. Empty
	// falls back to the in-memory store.
	DatabaseURL string

	Redis RedisConfig

	// KafkaBrokers enables the Kafka audit publisher. Empty falls back to
	// the in-process audit store.
	KafkaBrokers []string
	AuditTopic   string

	// BureauURL enables the credit check stage.
	BureauURL     string
	BureauTimeout time.Duration
	ScoreCacheTTL time.Duration

	// JWTSigningKey enables bearer-token auth on the API when set.
	JWTSigningKey string
}

// RedisConfig holds connection settings for the optional score cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Config from environment variables, applying defaults
// suitable for local development.
func FromEnv() Config {
	cfg := Config{
		Addr:          envOr("LOANFLOW_ADDR", ":8080"),
		DatabaseURL:   os.Getenv("LOANFLOW_DATABASE_URL"),
		AuditTopic:    envOr("LOANFLOW_AUDIT_TOPIC", "loanflow.audit"),
		BureauURL:     os.Getenv("LOANFLOW_BUREAU_URL"),
		BureauTimeout: envDuration("LOANFLOW_BUREAU_TIMEOUT", 5*time.Second),
		ScoreCacheTTL: envDuration("LOANFLOW_SCORE_CACHE_TTL", 15*time.Minute),
		JWTSigningKey: os.Getenv("LOANFLOW_JWT_SIGNING_KEY"),
		Redis: RedisConfig{
			URL:          os.Getenv("LOANFLOW_REDIS_URL"),
			PoolSize:     envInt("LOANFLOW_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("LOANFLOW_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("LOANFLOW_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("LOANFLOW_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("LOANFLOW_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
	}

	if brokers := os.Getenv("LOANFLOW_KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
