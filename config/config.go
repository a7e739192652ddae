package config

import (
	"strings"

	"github.com/zorgdesk/zorgcmd/internal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

// LoadConfig loads the config file and ENV variables into a Config struct
func LoadConfig(configFile string) (*Config, error) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("ZORGCMD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		log.Warn("no config file found, using defaults and environment variables")
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	for key, envVar := range map[string]string{
		"llm.openai_api_key":    "ZORGCMD_OPENAI_API_KEY",
		"llm.anthropic_api_key": "ZORGCMD_ANTHROPIC_API_KEY",
		"auth.secret":           "ZORGCMD_AUTH_SECRET",
	} {
		if err := viper.BindEnv(key, envVar); err != nil {
			log.Fatalf("Error binding environment variable: %s", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.max_request_size", 524288)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("llm.service", "openai")
	viper.SetDefault("llm.model", "gpt-3.5-turbo")
	viper.SetDefault("llm.timeout_seconds", 30)
	viper.SetDefault("classifier.high_confidence_threshold", 0.8)
	viper.SetDefault("classifier.max_input_length", 500)
	viper.SetDefault("ratelimit.requests_per_minute", 60)
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Warn(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	log.Info("Log level set to: ", level)
}
