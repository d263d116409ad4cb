package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	BaseURL     string
	DBPath      string
	HTTPTimeout time.Duration
	GeocodeURL  string
	TermsURL    string
	PrivacyURL  string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	timeoutSec := 25
	if v := os.Getenv("KRISHI_HTTP_TIMEOUT_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeoutSec = n
		}
	}
	cfg := AppConfig{
		BaseURL:     get("KRISHI_BASE_URL", "https://krishiaadhar.devsomeware.com/api"),
		DBPath:      get("KRISHI_DB_PATH", defaultDBPath()),
		HTTPTimeout: time.Duration(timeoutSec) * time.Second,
		GeocodeURL:  get("GEOCODE_ENDPOINT", "https://nominatim.openstreetmap.org/reverse"),
		TermsURL:    get("KRISHI_TERMS_URL", "https://krishiaadhar-frontend.vercel.app/terms-condition"),
		PrivacyURL:  get("KRISHI_PRIVACY_URL", "https://krishiaadhar-frontend.vercel.app/privacy-policy"),
	}
	log.Printf("[cfg] base=%s db=%s timeout=%s", cfg.BaseURL, cfg.DBPath, cfg.HTTPTimeout)
	return cfg
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "krishi.db"
	}
	return filepath.Join(home, ".krishi", "krishi.db")
}
