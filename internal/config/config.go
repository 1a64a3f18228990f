package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported key-value store drivers.
const (
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName          string
	AppEnv           string
	AppPort          string
	LogLevel         string
	StoreDriver      string
	RedisURL         string
	DatabaseURL      string
	SQLitePath       string
	StoreKeyPrefix   string
	SeedEnabled      bool
	CredentialScheme string
	AuthRateLimit    int
	AuthRateWindow   time.Duration
	NATSURL          string
	EventsSubject    string
	EventsChannel    string
	CORSOrigins      string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Validate checks that the selected store driver has what it needs.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("redis url must be provided for the redis store")
		}
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("database url must be provided for the postgres store")
		}
	case StoreDriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("sqlite path must be provided for the sqlite store")
		}
	default:
		return fmt.Errorf("unsupported store driver %q", c.StoreDriver)
	}

	switch c.CredentialScheme {
	case "plaintext", "bcrypt":
	default:
		return fmt.Errorf("unsupported credential scheme %q", c.CredentialScheme)
	}

	if c.AuthRateLimit <= 0 {
		return fmt.Errorf("auth rate limit must be positive")
	}
	return nil
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("EDUMANAGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "EduManage API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("store.driver", StoreDriverRedis)
	v.SetDefault("redis.url", "redis://localhost:6379/0")
	v.SetDefault("sqlite.path", "edumanage.db")
	v.SetDefault("store.key_prefix", "edumanage_")
	v.SetDefault("seed.enabled", true)
	v.SetDefault("auth.credential_scheme", "plaintext")
	v.SetDefault("auth.rate_limit", 10)
	v.SetDefault("auth.rate_window", "1m")
	v.SetDefault("events.subject", "edumanage.events")
	v.SetDefault("events.channel", "edumanage:events")
	v.SetDefault("cors.origins", "*")

	window, err := time.ParseDuration(v.GetString("auth.rate_window"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid auth rate window: %w", err)
	}

	cfg := Config{
		AppName:          v.GetString("app.name"),
		AppEnv:           v.GetString("app.env"),
		AppPort:          v.GetString("app.port"),
		LogLevel:         strings.ToLower(v.GetString("log.level")),
		StoreDriver:      strings.ToLower(strings.TrimSpace(v.GetString("store.driver"))),
		RedisURL:         v.GetString("redis.url"),
		DatabaseURL:      v.GetString("database.url"),
		SQLitePath:       v.GetString("sqlite.path"),
		StoreKeyPrefix:   v.GetString("store.key_prefix"),
		SeedEnabled:      v.GetBool("seed.enabled"),
		CredentialScheme: strings.ToLower(strings.TrimSpace(v.GetString("auth.credential_scheme"))),
		AuthRateLimit:    v.GetInt("auth.rate_limit"),
		AuthRateWindow:   window,
		NATSURL:          v.GetString("nats.url"),
		EventsSubject:    v.GetString("events.subject"),
		EventsChannel:    v.GetString("events.channel"),
		CORSOrigins:      v.GetString("cors.origins"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
