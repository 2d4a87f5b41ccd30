package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort           string
	JWTSecret         string
	TokenTTL          time.Duration
	Timezone          string
	RedisURI          string
	MongoURI          string
	MongoDB           string
	AllowedOrigins    string
	ShiftOverrunAfter time.Duration
	SeedCatalog       bool
}

var (
	cfg  *Config
	once sync.Once
)

// Load reads .env once and returns the process configuration.
func Load() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Warning: No .env file found, relying on environment variables")
		}
		cfg = FromEnv()
	})
	return cfg
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() *Config {
	return &Config{
		AppPort:           getEnv("APP_PORT", "8888"),
		JWTSecret:         getEnv("JWT_SECRET", "your_secret_key"),
		TokenTTL:          getDuration("TOKEN_TTL", 24*time.Hour),
		Timezone:          getEnv("TIMEZONE", "Europe/Prague"),
		RedisURI:          os.Getenv("REDIS_URI"),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDB:           getEnv("MONGO_DB", "PlanujSmenyDB"),
		AllowedOrigins:    getEnv("ALLOWED_ORIGINS", "*"),
		ShiftOverrunAfter: getDuration("SHIFT_OVERRUN_AFTER", 12*time.Hour),
		SeedCatalog:       getBool("SEED_CATALOG", false),
	}
}

// Location resolves the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("⚠️ unknown TIMEZONE %q, using UTC", c.Timezone)
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("⚠️ invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
