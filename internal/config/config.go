package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the binaries read from the environment.
type Config struct {
	MongoURL    string
	DBName      string
	HTTPAddr    string
	CORSOrigins []string
}

// Load reads configuration from a .env file (if present) and the environment.
// MONGO_URL and DB_NAME are required; everything else has a default.
func Load() (Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		return Config{}, fmt.Errorf("MONGO_URL is not set")
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return Config{}, fmt.Errorf("DB_NAME is not set")
	}

	return Config{
		MongoURL:    mongoURL,
		DBName:      dbName,
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		CORSOrigins: splitCSV(getenv("CORS_ORIGINS", "*")),
	}, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
