// File: utils/cache.go
package utils

import (
	"context"
	"log"

	"soulsync/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (therapist directory).
	CacheClient *redis.Client
	// ContextCacheClient holds per-session chat context.
	ContextCacheClient *redis.Client
)

func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), RedisPingTimeout)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
	return client
}

// InitRedis initializes every Redis client used by the service.
func InitRedis() {
	GetCacheClient()
	GetContextCacheClient()
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
	}
	return CacheClient
}

// GetContextCacheClient returns the Redis client for chat session context.
func GetContextCacheClient() *redis.Client {
	if ContextCacheClient == nil {
		ContextCacheClient = newRedisClient(config.AppConfig.RedisContextDB, "Context")
	}
	return ContextCacheClient
}
