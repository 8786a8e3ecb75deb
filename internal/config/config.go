package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort        string
	DataFile        string
	JWTSecret       string
	BcryptCost      int
	TokenTTL        time.Duration
	RequestTimeout  time.Duration
	RedisAddr       string
	LoginRateLimit  int
	LoginRateWindow time.Duration
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		DataFile:        getEnv("DATA_FILE", "hrsuite.json"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		BcryptCost:      getInt("BCRYPT_COST", 10),
		TokenTTL:        getDuration("TOKEN_TTL", 8*time.Hour),
		RequestTimeout:  getDuration("REQUEST_TIMEOUT", 10*time.Second),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		LoginRateLimit:  getInt("LOGIN_RATE_LIMIT", 10),
		LoginRateWindow: getDuration("LOGIN_RATE_WINDOW", time.Minute),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
