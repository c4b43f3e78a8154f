package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first, if present; real environment
// variables win over file values (godotenv does not override existing keys).
//
// Variables:
//
//	PORT                  HTTP port (bare port number, e.g. "3000")
//	DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME
//	JWT_SECRET            token signing secret (required)
//	TOKEN_VALIDITY_HOURS  bearer token lifetime, hours
//	CORS_ALLOWED_ORIGINS  comma-separated origins
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("PORT"); v != "" {
		config.EndpointAddr = ":" + v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		config.DBHost = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		config.DBPort = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		config.DBUser = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		config.DBPassword = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		config.DBName = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.JWTSecret = v
	}
	if v := os.Getenv("TOKEN_VALIDITY_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			config.TokenValidityDuration = time.Duration(hours) * time.Hour
		}
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		config.CORSAllowedOrigins = v
	}
}
