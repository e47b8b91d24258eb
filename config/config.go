package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string

	JWTSecret   string
	TokenTTLMin int

	AdminUser  string
	AdminPass  string
	FarmerUser string
	FarmerPass string

	ThresholdsCSV  string
	ThresholdsXLSX string
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
	getInt := func(k string, def int) int {
		if v, err := strconv.Atoi(os.Getenv(k)); err == nil && v > 0 {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:           get("PORT", "8080"),
		Timezone:       get("TZ", "Africa/Tunis"),
		DBPath:         get("DB_PATH", "agrisense.db"),
		JWTSecret:      get("JWT_SECRET", "dev-secret-change-me"),
		TokenTTLMin:    getInt("TOKEN_TTL_MIN", 60),
		AdminUser:      get("ADMIN_USER", "agriculture"),
		AdminPass:      get("ADMIN_PASS", "soasoa"),
		FarmerUser:     get("FARMER_USER", "farmer"),
		FarmerPass:     get("FARMER_PASS", "farmer"),
		ThresholdsCSV:  get("THRESHOLDS_CSV", ""),
		ThresholdsXLSX: get("THRESHOLDS_XLSX", ""),
	}
	log.Printf("[cfg] port=%s db=%s token_ttl_min=%d", cfg.Port, cfg.DBPath, cfg.TokenTTLMin)
	return cfg
}
