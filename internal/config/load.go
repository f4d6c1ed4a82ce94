package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from defaults, an optional config file, and
// environment variables. Environment variables use the BLOG_ prefix with
// underscores for nesting (e.g. BLOG_DATABASE_URL, BLOG_AUTH_JWT_SECRET).
// The bare SECRET variable is honored as an alias for the JWT secret.
// Returns a populated Config or an error if loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 3003)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("auth.bcrypt_cost", 10)

	// Registered empty so AutomaticEnv can fill them; validation rejects
	// the empty values if nothing supplies them.
	v.SetDefault("database.url", "")
	v.SetDefault("auth.jwt_secret", "")

	// Optional config file in the working directory
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; env vars and defaults carry the load
	}

	// Environment variables take precedence over file values
	v.SetEnvPrefix("BLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The original deployment supplied the signing secret as SECRET
	if err := v.BindEnv("auth.jwt_secret", "BLOG_AUTH_JWT_SECRET", "SECRET"); err != nil {
		return nil, fmt.Errorf("failed to bind jwt secret env var: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
