package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	RedisURI    string
)

// InitRedis connects to Redis when uri is set. On failure the client stays nil
// and the token blacklist, login throttling and reminder jobs are skipped.
func InitRedis(uri string) {
	if uri == "" {
		log.Println("⚠️ REDIS_URI not set, running without Redis")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     uri, // เช่น localhost:6379
		Password: "",
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("❌ Failed to connect Redis:", err)
		_ = client.Close()
		return
	}

	RedisClient = client
	RedisURI = uri
	log.Println("✅ Redis connected successfully")
}

func CloseRedis() {
	if RedisClient != nil {
		_ = RedisClient.Close()
	}
}
