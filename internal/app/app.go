package app

import (
	"bondhu/internal/cache"
	"bondhu/internal/config"
	"bondhu/internal/metrics"
	"bondhu/internal/repository"
	"bondhu/internal/service"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// App holds the connected backends and the services built on them
type App struct {
	Config *config.Config

	Mongo *mongo.Client
	Redis *redis.Client

	AssessmentRepo repository.AssessmentRepo
	ContextCache   cache.ContextCache
	Metrics        *metrics.Collector

	AuthService        *service.AuthService
	PersonalityService *service.PersonalityService
}

// New connects to MongoDB and Redis and wires the services
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		mongoClient.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.Mongo.Database)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Printf("Warning: failed to create indexes: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		mongoClient.Disconnect(ctx)
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	log.Println("Connected to Redis")

	return Wire(cfg, mongoClient, rdb), nil
}

// Wire builds repositories, caches and services on already connected clients
func Wire(cfg *config.Config, mongoClient *mongo.Client, rdb *redis.Client) *App {
	a := &App{
		Config:  cfg,
		Mongo:   mongoClient,
		Redis:   rdb,
		Metrics: metrics.NewCollector(),
	}

	a.AssessmentRepo = repository.NewAssessmentRepo(mongoClient.Database(cfg.Mongo.Database))
	a.ContextCache = cache.NewContextCache(rdb, cfg.Cache.ContextTTL)

	a.AuthService = service.NewAuthService(cfg.Auth.JWTSecret)
	a.PersonalityService = service.NewPersonalityService(a.AssessmentRepo, a.ContextCache, a.Metrics)
	return a
}

// Close releases the backend connections
func (a *App) Close(ctx context.Context) {
	if err := a.Redis.Close(); err != nil {
		log.Printf("Warning: redis close: %v", err)
	}
	if err := a.Mongo.Disconnect(ctx); err != nil {
		log.Printf("Warning: mongo disconnect: %v", err)
	}
}
