package config

import (
	"database/sql"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	HTTPPort     string
	BaseURL      string
	Storage      string // "memory" (default) or "postgres"
	PollInterval time.Duration
}

// Load reads the environment, with a best-effort .env file on top.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:8080"),
		Storage:      getEnv("STORAGE_BACKEND", "memory"),
		PollInterval: 5 * time.Second,
	}
	if raw := os.Getenv("KITCHEN_POLL_SECONDS"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			cfg.PollInterval = time.Duration(seconds) * time.Second
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}
