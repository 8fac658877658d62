package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Embedding EmbeddingConfig
}

type AppConfig struct {
	AppName     string
	Environment string
}

type DatabaseConfig struct {
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	DBSSLMode      string
	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
}

type EmbeddingConfig struct {
	APIKey   string
	Model    string
	CacheTTL time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE"),
		ConnectTimeout: seconds(opt("DB_CONNECT_TIMEOUT_SECONDS")),
		PoolMaxConns:   int32Value(opt("DB_POOL_MAX_CONNS")),
		PoolMinConns:   int32Value(opt("DB_POOL_MIN_CONNS")),
	}

	cfg.Embedding = EmbeddingConfig{
		APIKey:   req("GEMINI_API_KEY"),
		Model:    opt("EMBEDDING_MODEL"),
		CacheTTL: seconds(opt("EMBEDDING_CACHE_TTL_SECONDS")),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// seconds parses a whole-second count; empty or malformed values come back
// as zero so callers fall through to their defaults.
func seconds(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}

func int32Value(raw string) int32 {
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n <= 0 {
		return 0
	}
	return int32(n)
}
