package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// Token signing
	JWTSecret     string
	JWTTTLMinutes int // 0 disables expiry
	// Password hashing
	BcryptCost int
	// Redis Configuration (rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitAuthThreshold   int
	RateLimitGlobalThreshold int
	// Resume upload storage
	UploadDir         string
	MaxUploadBytes    int64
	S3Provider        string // "aws" or "wasabi"; empty disables S3
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Region          string
	S3Bucket          string
}

func LoadConfig() (*Config, error) {
	// .env only matters locally; ignored in production when the file is absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:                     getEnv("PORT", "8080"),
		DBUrl:                    getEnv("DATABASE_URL", ""),
		FrontendURL:              getEnv("FRONTEND_URL", "http://localhost:3000"),
		JWTSecret:                getEnv("JWT_SECRET", ""),
		JWTTTLMinutes:            getEnvInt("JWT_TTL_MINUTES", 1440),
		BcryptCost:               getEnvInt("BCRYPT_COST", 10),
		RedisURL:                 getEnv("REDIS_URL", ""),
		RedisPassword:            getEnv("REDIS_PASSWORD", ""),
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitAuthThreshold:   getEnvInt("RATE_LIMIT_AUTH_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		UploadDir:                getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:           int64(getEnvInt("MAX_UPLOAD_BYTES", 5<<20)),
		S3Provider:               getEnv("S3_PROVIDER", ""),
		S3AccessKeyID:            getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey:        getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Region:                 getEnv("S3_REGION", ""),
		S3Bucket:                 getEnv("S3_BUCKET", ""),
	}

	// Fail closed: tokens must never be signed with a baked-in default secret.
	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET is required")
	}
	if cfg.DBUrl == "" {
		return nil, errors.New("config: DATABASE_URL is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
