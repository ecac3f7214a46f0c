package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string
	JWTSecret  string

	// Outbound integrations
	PaymentAPIURL    string
	PaymentSecretKey string
	PaletteAPIURL    string
	PaletteAPIKey    string
	ReposAPIURL      string
	ReposUsername    string
	ReposToken       string

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		MySQLDSN:   getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/portfolio?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:    getEnvInt("REDIS_DB", 0),
		RedisPass:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:  getEnv("JWT_SECRET", "change-me"),

		PaymentAPIURL:    getEnv("PAYMENT_API_URL", "https://api.stripe.com/v1"),
		PaymentSecretKey: os.Getenv("PAYMENT_SECRET_KEY"),
		PaletteAPIURL:    getEnv("PALETTE_API_URL", ""),
		PaletteAPIKey:    os.Getenv("PALETTE_API_KEY"),
		ReposAPIURL:      getEnv("REPOS_API_URL", "https://api.github.com"),
		ReposUsername:    getEnv("REPOS_USERNAME", ""),
		ReposToken:       os.Getenv("REPOS_TOKEN"),

		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
