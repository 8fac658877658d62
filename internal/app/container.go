package app

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"placement-match/internal/config"
	"placement-match/internal/database"
	dbpostgres "placement-match/internal/database/postgres"
	"placement-match/internal/infrastructure/cache"
	"placement-match/internal/infrastructure/embedding/gemini"
	"placement-match/internal/repository"
	"placement-match/internal/usecase"
)

// Container owns every long-lived dependency of the matcher: the database
// pool, the embedding client, the vector cache and the wired usecase.
type Container struct {
	Config   config.Config
	DB       database.DB
	Cache    cache.VectorCache
	Embedder *usecase.Embedder
	Matching usecase.MatchingUsecase
	Logger   *log.Logger
}

func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger, notifier usecase.Notifier) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	provider, err := gemini.NewClient(ctx, cfg.Embedding.APIKey, cfg.Embedding.Model)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := vectorStore(cfg.Embedding.CacheTTL, logger)
	embedder := usecase.NewEmbedder(store, provider, logger)

	matching := usecase.NewMatchingUsecase(
		repository.NewPostgresJobRepository(db),
		repository.NewPostgresCandidateRepository(db),
		repository.NewPostgresMatchRepository(db),
		embedder,
		notifier,
		logger,
	)

	return &Container{
		Config:   cfg,
		DB:       db,
		Cache:    store,
		Embedder: embedder,
		Matching: matching,
		Logger:   logger,
	}, nil
}

// vectorStore picks Redis when a host is configured, otherwise an
// in-process TTL cache. Both expire entries after the same interval.
func vectorStore(ttl time.Duration, logger *log.Logger) cache.VectorCache {
	if strings.TrimSpace(os.Getenv("REDIS_HOST")) != "" {
		return cache.NewRedis(ttl, logger)
	}
	return cache.NewMemory(ttl)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
