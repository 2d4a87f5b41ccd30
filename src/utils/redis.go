package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	DB "Backend-PlanujSmeny/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

const (
	MaxLoginAttempts   = 5
	LoginAttemptWindow = 15 * time.Minute
)

// ensureClient returns the shared Redis client managed by the database package.
// nil means Redis is not configured (development mode) and callers skip the check.
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// BlacklistToken เพิ่ม access token เข้า blacklist (ใช้ตอน logout)
func BlacklistToken(token string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		log.Println("redis client not initialized, skip blacklist")
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if err := client.Set(Ctx, key, "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

// IsTokenBlacklisted ตรวจสอบว่า token อยู่ใน blacklist หรือไม่
func IsTokenBlacklisted(token string) (bool, error) {
	client := ensureClient()
	if client == nil {
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	_, err := client.Get(Ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}
	return true, nil
}

func loginAttemptsKey(username string) string {
	return fmt.Sprintf("login_attempts:%s", username)
}

// RecordFailedLogin counts a failed attempt inside the throttling window.
func RecordFailedLogin(username string) (int64, error) {
	client := ensureClient()
	if client == nil {
		return 0, nil
	}

	key := loginAttemptsKey(username)
	count, err := client.Incr(Ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to record login attempt: %w", err)
	}
	if count == 1 {
		if err := client.Expire(Ctx, key, LoginAttemptWindow).Err(); err != nil {
			return count, fmt.Errorf("failed to set login attempt window: %w", err)
		}
	}
	return count, nil
}

// LoginCooldown returns the remaining lock time once a username hit MaxLoginAttempts.
func LoginCooldown(username string) (time.Duration, bool) {
	client := ensureClient()
	if client == nil {
		return 0, false
	}

	key := loginAttemptsKey(username)
	count, err := client.Get(Ctx, key).Int64()
	if err != nil || count < MaxLoginAttempts {
		return 0, false
	}
	ttl, err := client.TTL(Ctx, key).Result()
	if err != nil || ttl <= 0 {
		return LoginAttemptWindow, true
	}
	return ttl, true
}

// ResetLoginAttempts clears the counter after a successful login.
func ResetLoginAttempts(username string) {
	client := ensureClient()
	if client == nil {
		return
	}
	if err := client.Del(Ctx, loginAttemptsKey(username)).Err(); err != nil {
		log.Println("⚠️ reset login attempts:", err)
	}
}
