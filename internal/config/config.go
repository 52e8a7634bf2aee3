package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config carries every recognized option. Demo mode is computed once at load
// time and passed by value into constructors; nothing reads credentials from
// ambient state after startup.
type Config struct {
	AppPort string

	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseServiceKey string

	DatabaseDSN string

	StorageEndpoint  string
	StorageRegion    string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string

	ResendAPIKey string

	SiteURL string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort: getenv("APP_PORT", "8080"),

		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:    os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		StorageEndpoint:  os.Getenv("STORAGE_ENDPOINT"),
		StorageRegion:    getenv("STORAGE_REGION", "us-east-1"),
		StorageAccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("STORAGE_SECRET_KEY"),
		StorageBucket:    getenv("STORAGE_BUCKET", "documents"),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),

		SiteURL: getenv("SITE_URL", "https://www.creditsimplicity.com"),

		RedisAddr:    os.Getenv("REDIS_ADDR"),
		IdempTTLSecs: 300,
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	return c
}

// Placeholder credentials ship in the sample .env so the repo runs out of
// the box; they count as absent.
func placeholderOrEmpty(v string) bool {
	return v == "" || strings.Contains(v, "placeholder")
}

// DemoMode reports whether the service runs against fixed sample data
// instead of a live backend. Evaluated once at startup; flipping it requires
// a restart.
func (c *Config) DemoMode() bool {
	return placeholderOrEmpty(c.SupabaseURL) ||
		placeholderOrEmpty(c.SupabaseAnonKey) ||
		placeholderOrEmpty(c.SupabaseServiceKey)
}

// EmailEnabled reports whether outbound email is configured. Email is
// best-effort either way; unconfigured sends short-circuit to a demo result.
func (c *Config) EmailEnabled() bool {
	return !placeholderOrEmpty(c.ResendAPIKey)
}

// SetupURL is the account-setup page invite links redirect to, and the
// fallback link when invite generation fails.
func (c *Config) SetupURL() string {
	return strings.TrimRight(c.SiteURL, "/") + "/portal/setup"
}

// Validate checks the options a live (non-demo) process cannot run without.
func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.DemoMode() {
		return nil
	}
	if c.DatabaseDSN == "" {
		return errors.New("missing DATABASE_DSN")
	}
	if c.StorageEndpoint == "" || c.StorageAccessKey == "" || c.StorageSecretKey == "" {
		return errors.New("missing storage config (STORAGE_ENDPOINT/ACCESS_KEY/SECRET_KEY)")
	}
	return nil
}
