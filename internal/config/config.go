package config

import (
	"github.com/spf13/viper"
)

// TokenPlaceholder is the value the .env template ships with. A token equal
// to it counts as "not configured" for the Mercado Pago sync.
const TokenPlaceholder = "tu_access_token_aqui"

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database: postgres:// URL, or a SQLite file path for the
	// single-machine deployment
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis
	RedisURL string `mapstructure:"REDIS_URL"`

	// Mercado Pago
	MPAccessToken  string `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
	MPAPIBaseURL   string `mapstructure:"MP_API_BASE_URL"`
	SyncWindowDays int    `mapstructure:"SYNC_WINDOW_DAYS"`

	// Auth — AdminPasswordHash (bcrypt) wins over the plaintext password
	// when both are set.
	AdminPassword     string `mapstructure:"ADMIN_PASSWORD"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 3001)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_URL", "despensa.db")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("MP_API_BASE_URL", "https://api.mercadopago.com")
	viper.SetDefault("SYNC_WINDOW_DAYS", 30)
	viper.SetDefault("ADMIN_PASSWORD", "1234")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// TokenConfigurado reports whether a usable Mercado Pago token is present.
func (c *Config) TokenConfigurado() bool {
	return c.MPAccessToken != "" && c.MPAccessToken != TokenPlaceholder
}
