package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment. It is
// loaded once in main and passed down; nothing else touches os.Getenv.
type Config struct {
	Port             string
	MongoURI         string
	DatabaseName     string
	CORSAllowOrigins string
	MaxBodyBytes     int64
	RequireAuth      bool
	JWTSecret        string
}

const defaultMaxBodyBytes = 25 << 20 // profile images arrive as inline base64

// Load reads .env (if present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := Config{
		Port:             getEnv("PORT", "5000"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName:     getEnv("MONGO_DB", "MindMetrics"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		MaxBodyBytes:     getEnvInt64("MAX_BODY_BYTES", defaultMaxBodyBytes),
		RequireAuth:      getEnvBool("REQUIRE_AUTH", false),
		JWTSecret:        getEnv("JWT_SECRET", ""),
	}

	if cfg.RequireAuth && cfg.JWTSecret == "" {
		log.Fatal("REQUIRE_AUTH is set but JWT_SECRET is empty")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		log.Printf("Ignoring invalid %s=%q", key, v)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Ignoring invalid %s=%q", key, v)
		return fallback
	}
	return b
}
