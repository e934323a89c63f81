package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port      int    `mapstructure:"port"       validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`
	// RequestTimeoutSeconds bounds every request, including the outbound LLM call.
	RequestTimeoutSeconds int      `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`
	AllowedOrigins        []string `mapstructure:"allowed_origins"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	APIKey    string `mapstructure:"api_key"    validate:"required"`
	ModelName string `mapstructure:"model_name" validate:"required"`
	// SchemaPath points at the response schema sent with every generation call.
	SchemaPath string `mapstructure:"schema_path" validate:"required"`
	// StrictSchema sends the schema as an enforced response schema; when false
	// it is only attached to the system instruction.
	StrictSchema bool `mapstructure:"strict_schema"`
}
