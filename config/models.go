package config

// Config holds the configuration of the application
// Use cmd.LoadConfig to create a new instance
type Config struct {
	LLM        LLM              `mapstructure:"llm"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Auth       AuthConfig       `mapstructure:"auth"`
	RateLimit  RateLimitConfig  `mapstructure:"ratelimit"`
}

type LLM struct {
	// Service is one of "openai" or "anthropic"
	Service string `mapstructure:"service"`
	Model   string `mapstructure:"model"`
	// OpenAIAPIKey and AnthropicAPIKey are loaded from ENV not config file.
	OpenAIAPIKey    string `mapstructure:"openai_api_key"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`
	// OpenAIEndpoint overrides the OpenAI API base URL. Used for
	// OpenAI-compatible gateways.
	OpenAIEndpoint string `mapstructure:"openai_endpoint"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// ClassifierConfig holds tuning knobs for the two-tier classifier.
// The threshold and pattern weights are empirically tuned values,
// not architectural invariants.
type ClassifierConfig struct {
	HighConfidenceThreshold float64 `mapstructure:"high_confidence_threshold"`
	MaxInputLength          int     `mapstructure:"max_input_length"`
}

type ServerConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	MaxRequestSize int64  `mapstructure:"max_request_size"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AuthConfig struct {
	Secret   string `mapstructure:"secret"`
	Required bool   `mapstructure:"required"`
}

type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
}
