package utils

import (
	"context"
	"log"
	"time"

	"pawcare/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionClient is the dedicated client for persisted auth state.
	SessionClient *redis.Client
	// CatalogClient is the client for cached pricing catalog snapshots.
	CatalogClient *redis.Client
)

// InitSessionCache initializes the Redis client backing token persistence.
func InitSessionCache() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Session): %v", err)
	}
}

// GetSessionClient returns the Redis client for persisted auth state.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitSessionCache()
	}
	return SessionClient
}

// InitCatalogCache initializes the Redis client for catalog snapshot caching.
func InitCatalogCache() {
	CatalogClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCatalogDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CatalogClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Catalog): %v", err)
	}
}

// GetCatalogClient returns the Redis client for catalog snapshot caching.
func GetCatalogClient() *redis.Client {
	if CatalogClient == nil {
		InitCatalogCache()
	}
	return CatalogClient
}
