package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the service reads.
const EnvPrefix = "DECKGEN"

// keys lists every configuration key so each one can be bound to its
// environment variable, including keys without defaults.
var keys = []string{
	"server.port",
	"server.log_level",
	"server.log_format",
	"server.request_timeout_seconds",
	"server.allowed_origins",
	"llm.api_key",
	"llm.model_name",
	"llm.schema_path",
	"llm.strict_schema",
}

// Load configuration from environment variables and optionally a config.yaml
// in the working directory. Environment variables take precedence over values
// from config files. Returns a populated Config struct or an error if
// loading/validation fails.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is like Load but reads the given config file instead of searching
// for config.yaml. A missing explicit file is an error.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("server.request_timeout_seconds", 60)
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("llm.schema_path", "schemas/generated_cards.json")
	v.SetDefault("llm.strict_schema", true)
}
