package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendPostgres = "postgres"
	BackendSqlite   = "sqlite"
)

type Config struct {
	Env          string         `json:"env"`
	Http         HttpConfig     `json:"http"`
	StoreBackend string         `json:"store_backend"`
	Postgres     PostgresConfig `json:"postgres"`
	Sqlite       SqliteConfig   `json:"sqlite"`
	Redis        RedisConfig    `json:"redis"`
	Twilio       TwilioConfig   `json:"twilio"`
	Webhook      WebhookConfig  `json:"webhook"`
	SOS          SOSConfig      `json:"sos"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type SqliteConfig struct {
	Path string `json:"path"`
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type TwilioConfig struct {
	AccountSID string        `json:"account_sid"`
	AuthToken  string        `json:"auth_token,omitempty"`
	FromNumber string        `json:"from_number"`
	BaseURL    string        `json:"base_url"`
	Timeout    time.Duration `json:"timeout"`
}

type WebhookConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
}

type SOSConfig struct {
	CountdownDefault time.Duration `json:"countdown_default"`
	PromptTimeout    time.Duration `json:"prompt_timeout"`
	SendTimeout      time.Duration `json:"send_timeout"`
	SendAttempts     int           `json:"send_attempts"`
	RetryBackoff     time.Duration `json:"retry_backoff"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			// Activation responses wait out dispatch retries; keep this
			// comfortably above SOS_SEND_ATTEMPTS * SOS_SEND_TIMEOUT.
			WriteTimeout: getEnvDuration("HTTP_WRITE_TIMEOUT", 90*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		StoreBackend: getEnv("STORE_BACKEND", BackendPostgres),
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "saheli_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Sqlite: SqliteConfig{
			Path: getEnv("SQLITE_PATH", "saheli.db"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Twilio: TwilioConfig{
			AccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
			FromNumber: getEnv("TWILIO_FROM_NUMBER", ""),
			BaseURL:    getEnv("TWILIO_BASE_URL", "https://api.twilio.com"),
			Timeout:    getEnvDuration("TWILIO_TIMEOUT", 10*time.Second),
		},
		Webhook: WebhookConfig{
			URL:      getEnv("ALERT_WEBHOOK_URL", ""),
			Disabled: getEnvBool("ALERT_WEBHOOK_DISABLED", false),
		},
		SOS: SOSConfig{
			CountdownDefault: getEnvDuration("SOS_COUNTDOWN_DEFAULT", 5*time.Second),
			PromptTimeout:    getEnvDuration("SOS_PROMPT_TIMEOUT", 15*time.Second),
			SendTimeout:      getEnvDuration("SOS_SEND_TIMEOUT", 10*time.Second),
			SendAttempts:     getEnvInt("SOS_SEND_ATTEMPTS", 3),
			RetryBackoff:     getEnvDuration("SOS_RETRY_BACKOFF", 500*time.Millisecond),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	switch c.StoreBackend {
	case BackendPostgres:
		if c.Postgres.Host == "" {
			return errors.New("POSTGRES_HOST required")
		}
	case BackendSqlite:
		if c.Sqlite.Path == "" {
			return errors.New("SQLITE_PATH required")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	if c.Twilio.AccountSID == "" || c.Twilio.AuthToken == "" || c.Twilio.FromNumber == "" {
		return errors.New("TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_FROM_NUMBER required")
	}
	if c.SOS.SendAttempts < 1 {
		return errors.New("SOS_SEND_ATTEMPTS must be at least 1")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
