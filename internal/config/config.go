package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the service configuration
type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Mongo struct {
		URI      string `mapstructure:"uri"`
		Database string `mapstructure:"database"`
	} `mapstructure:"mongo"`
	Redis struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"redis"`
	Auth struct {
		JWTSecret string `mapstructure:"jwt_secret"`
	} `mapstructure:"auth"`
	Cache struct {
		ContextTTL time.Duration `mapstructure:"context_ttl"`
	} `mapstructure:"cache"`
	CORS struct {
		AllowedOrigins string `mapstructure:"allowed_origins"`
		AllowedMethods string `mapstructure:"allowed_methods"`
		AllowedHeaders string `mapstructure:"allowed_headers"`
	} `mapstructure:"cors"`
}

const defaultJWTSecret = "super-secret-key-change-in-production"

// envBindings maps config keys to the environment variables deployments already use
var envBindings = map[string]string{
	"server.port":          "PORT",
	"mongo.uri":            "MONGO_URI",
	"mongo.database":       "MONGO_DATABASE",
	"redis.addr":           "REDIS_URI",
	"auth.jwt_secret":      "JWT_SECRET",
	"cache.context_ttl":    "CONTEXT_CACHE_TTL",
	"cors.allowed_origins": "CORS_ALLOWED_ORIGINS",
	"cors.allowed_methods": "CORS_ALLOWED_METHODS",
	"cors.allowed_headers": "CORS_ALLOWED_HEADERS",
}

// Load reads config.yaml (optional), applies defaults and environment overrides
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetDefault("server.port", "8080")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "bondhu")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("auth.jwt_secret", defaultJWTSecret)
	v.SetDefault("cache.context_ttl", 24*time.Hour)
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("cors.allowed_methods", "GET, POST, PUT, DELETE, OPTIONS")
	v.SetDefault("cors.allowed_headers", "Content-Type, Authorization")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		log.Println("[Config] config.yaml not found, using environment variables and defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Redis.Addr = strings.TrimPrefix(cfg.Redis.Addr, "redis://")
	if cfg.Auth.JWTSecret == defaultJWTSecret {
		log.Println("[Config] Warning: JWT_SECRET not set, using development secret")
	}
	return &cfg, nil
}
