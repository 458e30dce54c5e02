package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/wellnecity/edm/internal/platform/db"
)

type Config struct {
	Env            string        `mapstructure:"ENV"`
	MongoURL       string        `mapstructure:"MONGO_URL"`
	MongoDatabase  string        `mapstructure:"MONGO_DATABASE"`
	IntegrityMode  string        `mapstructure:"INTEGRITY_MODE"`
	TxnMaxAttempts uint          `mapstructure:"TXN_MAX_ATTEMPTS"`
	TxnMaxElapsed  time.Duration `mapstructure:"TXN_MAX_ELAPSED"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("MONGO_DATABASE", "wellnecity_edm")
	v.SetDefault("INTEGRITY_MODE", "strict")
	v.SetDefault("TXN_MAX_ATTEMPTS", 4)
	v.SetDefault("TXN_MAX_ELAPSED", "5s")
	v.SetDefault("LOG_LEVEL", "info")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("MONGO_URL")
	v.BindEnv("MONGO_DATABASE")
	v.BindEnv("INTEGRITY_MODE")
	v.BindEnv("TXN_MAX_ATTEMPTS")
	v.BindEnv("TXN_MAX_ELAPSED")
	v.BindEnv("LOG_LEVEL")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// RetryPolicy materializes the transaction retry budget. Everything that
// opens transactions gets its policy from here so TXN_MAX_ATTEMPTS and
// TXN_MAX_ELAPSED govern the whole process.
func (c *Config) RetryPolicy() db.RetryPolicy {
	return db.RetryPolicy{MaxAttempts: c.TxnMaxAttempts, MaxElapsed: c.TxnMaxElapsed}
}

// Validate checks that the configuration is safe to run. MONGO_URL is
// required by every subcommand that touches the store; `lint` calls Load
// but skips Validate since it never connects.
func (c *Config) Validate() error {
	if c.MongoURL == "" {
		return fmt.Errorf("MONGO_URL is required")
	}
	if c.IntegrityMode != "strict" && c.IntegrityMode != "advisory" {
		return fmt.Errorf("INTEGRITY_MODE must be \"strict\" or \"advisory\", got %q", c.IntegrityMode)
	}
	if c.TxnMaxAttempts == 0 {
		return fmt.Errorf("TXN_MAX_ATTEMPTS must be at least 1")
	}
	if c.TxnMaxElapsed <= 0 {
		return fmt.Errorf("TXN_MAX_ELAPSED must be positive")
	}
	return nil
}
