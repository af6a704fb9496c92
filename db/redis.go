package db

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

const resultCachePrefix = "newslens:cache:result:"

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		fmt.Println("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// ResultCacheKey derives the cache key for one (query, context) pair.
func ResultCacheKey(query, contextText string) string {
	sum := sha256.Sum256([]byte(query + "\x00" + contextText))
	return resultCachePrefix + fmt.Sprintf("%x", sum)[:32]
}

// GetCachedResult returns the cached payload for key, or nil on a miss.
func GetCachedResult(key string) ([]byte, error) {
	payload, err := Redis.Get(Ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func SetCachedResult(key string, payload []byte, ttl time.Duration) error {
	return Redis.Set(Ctx, key, payload, ttl).Err()
}
