package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Store names a catalogue storage driver.
type Store string

const (
	StoreSheets Store = "sheets"
	StoreMySQL  Store = "mysql"
)

// Config is the process configuration, read from the environment with
// an optional .env file on top.
type Config struct {
	Port          string
	Store         Store
	AdminPassword string
	SessionTTL    time.Duration
	Debug         bool

	// sheets store
	SheetID               string
	SheetName             string
	GoogleCredentialsFile string

	// mysql store
	MySQLDSN string

	// messaging hand-off; empty disables ask-price links
	WhatsAppNumber string
}

// Load reads .env (if present) and the environment. It fails fast on a
// store selection that is missing its connection settings.
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		Store:                 Store(getEnv("STORE", string(StoreSheets))),
		AdminPassword:         os.Getenv("ADMIN_PASSWORD"),
		SessionTTL:            0,
		Debug:                 os.Getenv("DEBUG") == "true",
		SheetID:               os.Getenv("SHEET_ID"),
		SheetName:             getEnv("SHEET_NAME", "Sheet1"),
		GoogleCredentialsFile: os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		MySQLDSN:              os.Getenv("MYSQL_DSN"),
		WhatsAppNumber:        os.Getenv("WHATSAPP_NUMBER"),
	}

	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL %q: %w", raw, err)
		}
		cfg.SessionTTL = ttl
	}

	switch cfg.Store {
	case StoreSheets:
		if cfg.SheetID == "" {
			return nil, fmt.Errorf("SHEET_ID is required when STORE=sheets")
		}
	case StoreMySQL:
		if cfg.MySQLDSN == "" {
			return nil, fmt.Errorf("MYSQL_DSN is required when STORE=mysql")
		}
	default:
		return nil, fmt.Errorf("unknown STORE %q (want sheets or mysql)", cfg.Store)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
