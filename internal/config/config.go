package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port          string
	AppEnv        string
	DataDir       string
	JWTSecret     string
	TokenVerifier string
	StoreDriver   string
	MongoURI      string
	MongoDB       string
	ResendAPIKey  string
	ContactFrom   string
	ContactTo     string
	PublicOrigin  string
}

// Production reports whether the app runs with production hardening
// (secure cookies, mandatory signing secret).
func (c *Config) Production() bool {
	return c.AppEnv == "production"
}

func LoadConfig() *Config {
	// Load .env only when present; deployed environments inject real vars.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("error loading .env file:", err)
		}
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		AppEnv:        getEnv("APP_ENV", "development"),
		DataDir:       getEnv("DATA_DIR", "data"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenVerifier: getEnv("TOKEN_VERIFIER", "standard"),
		StoreDriver:   getEnv("STORE_DRIVER", "file"),
		MongoURI:      getEnv("MONGO_URI", ""),
		MongoDB:       getEnv("MONGO_DB", "ketubotCatalog"),
		ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
		ContactFrom:   getEnv("CONTACT_FROM", "Ketuby Kontakt <onboarding@resend.dev>"),
		ContactTo:     getEnv("CONTACT_TO", ""),
		PublicOrigin:  getEnv("PUBLIC_ORIGIN", "http://localhost:8080"),
	}

	if cfg.JWTSecret == "" {
		if cfg.Production() {
			log.Fatal("JWT_SECRET must be set in production")
		}
		log.Println("JWT_SECRET not set, using development fallback")
		cfg.JWTSecret = "your-secret-key-change-in-production"
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
