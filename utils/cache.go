// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"leadform/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds form sessions while a visitor works through the wizard.
	SessionCacheClient *redis.Client
	// LockCacheClient holds short-lived submit locks.
	LockCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client backing the form-session store.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the form-session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitLockCache initializes the Redis client used for submit locks.
func InitLockCache() {
	LockCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLockDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := LockCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Lock Cache): %v", err)
	}
}

// GetLockCacheClient returns the Redis client used for submit locks.
func GetLockCacheClient() *redis.Client {
	if LockCacheClient == nil {
		InitLockCache()
	}
	return LockCacheClient
}
