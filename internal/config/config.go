package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Storage drivers selected from the DATABASE_URL scheme
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Port              string
	DatabaseURL       string   // mongodb://, postgres:// or memory://
	MongoDatabase     string   // Database name used with a mongodb:// URL
	RedisURL          string   // Optional; empty disables the cache
	CacheTTLSeconds   int      // TTL for cached profiles and summaries
	JWTSecret         string   // Secret key for JWT token signing
	JWTIssuer         string   // Issuer claim set and required on tokens
	JWTTTLSeconds     int      // JWT token lifetime in seconds
	BcryptCost        int      // bcrypt work factor for password hashing
	KafkaBrokers      []string // Optional; empty disables entry events
	KafkaTopic        string
	StaticDir         string // Directory holding the single-page client
	CORSAllowedOrigin string
	LogLevel          string
	LogFormat         string // json or console
	GinMode           string
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file found, using environment variables or defaults")
	}

	return &Config{
		Port:              getEnv("PORT", "3000"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		MongoDatabase:     getEnv("MONGO_DATABASE", "healthfitness"),
		RedisURL:          getEnv("REDIS_URL", ""),
		CacheTTLSeconds:   getEnvInt("CACHE_TTL_SECONDS", 300),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		JWTIssuer:         getEnv("JWT_ISSUER", "fittrack"),
		JWTTTLSeconds:     getEnvInt("JWT_TTL_SECONDS", 3600),
		BcryptCost:        getEnvInt("BCRYPT_COST", 10),
		KafkaBrokers:      splitAndTrim(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:        getEnv("KAFKA_TOPIC", "fitness-entries"),
		StaticDir:         getEnv("STATIC_DIR", "public"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		GinMode:           getEnv("GIN_MODE", "release"),
	}
}

// Validate checks that settings without a safe default were provided
func (c *Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	} else if c.DatabaseDriver() == "" {
		errs = append(errs, errors.New("DATABASE_URL must use a mongodb://, postgres:// or memory:// scheme"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWTTTLSeconds <= 0 {
		errs = append(errs, errors.New("JWT_TTL_SECONDS must be positive"))
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE must be one of debug, release or test, got %q", c.GinMode))
	}
	return errors.Join(errs...)
}

// DatabaseDriver derives the storage backend from the DATABASE_URL scheme
func (c *Config) DatabaseDriver() string {
	switch {
	case strings.HasPrefix(c.DatabaseURL, "mongodb://"), strings.HasPrefix(c.DatabaseURL, "mongodb+srv://"):
		return DriverMongo
	case strings.HasPrefix(c.DatabaseURL, "postgres://"), strings.HasPrefix(c.DatabaseURL, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(c.DatabaseURL, "memory://"):
		return DriverMemory
	}
	return ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
