package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment-variable overrides,
// e.g. QUILLFEED_DATABASE_URL maps to the database.url key.
const envPrefix = "QUILLFEED"

// Load reads configuration from environment variables and, when
// present, a config.yaml in the working directory. A local .env file
// is loaded into the process environment first, so development setups
// work without exporting anything. Returns a validated Config.
func Load() (*Config, error) {
	// Missing .env is the normal production case, not an error.
	_ = godotenv.Load()

	v := viper.New()

	// Defaults register the keys with viper; without them AutomaticEnv
	// cannot surface env-only values through Unmarshal.
	v.SetDefault("server.port", 9090)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.url", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
