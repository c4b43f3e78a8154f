// Package config handles configuration for the server component,
// including defaults, environment variables, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Config holds runtime settings for the authentication backend.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP API (":3000").
//   - DBHost/DBPort/DBUser/DBPassword/DBName: PostgreSQL connection settings.
//   - JWTSecret: HMAC secret for signing JWTs (HS256). Required; the process
//     refuses to start without it.
//   - TokenValidityDuration: bearer token lifetime.
//   - CORSAllowedOrigins: comma-separated list of allowed origins.
type Config struct {
	EndpointAddr          string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	JWTSecret             string
	TokenValidityDuration time.Duration
	CORSAllowedOrigins    string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3000"
	c.DBHost = "login_auth_db"
	c.DBPort = "5432"
	c.DBUser = "auth_db"
	c.DBPassword = "Senha123456"
	c.DBName = "auth_db"
	c.TokenValidityDuration = 24 * time.Hour
	c.CORSAllowedOrigins = "http://localhost:3000"
}

// DatabaseDSN assembles a pgx-compatible PostgreSQL DSN from the
// individual connection settings.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPassword),
		c.DBHost, c.DBPort, c.DBName)
}

// Validate checks settings that must be present before the server starts.
// An empty JWT secret is a startup failure, not a per-request one.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required: set the JWT_SECRET environment variable")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file) and finally from
// command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadStoreConfig builds a Config for maintenance tools that only need
// store access; it applies defaults and environment overlays but does not
// require a JWT secret.
func LoadStoreConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	return cfg
}
