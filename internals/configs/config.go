package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JWTSecret          string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	ClientURL          string
	AppEnv             string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")
	GoogleClientSecret = GetEnv("GOOGLE_CLIENT_SECRET")
	GoogleRedirectURI = GetEnv("GOOGLE_REDIRECT_URI")
	ClientURL = GetEnv("CLIENT_URL", "http://localhost:3000")
	AppEnv = GetEnv("APP_ENV", "production")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if GoogleClientID == "" {
		log.Println("⚠️ GOOGLE_CLIENT_ID is not set, Google login disabled")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// IsDevelopment reports whether the process runs with a development config.
// Internal error strings are only echoed to clients in development.
func IsDevelopment() bool {
	return strings.EqualFold(AppEnv, "development")
}
