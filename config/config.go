package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Assistant specifics
	Assistant AssistantConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AssistantConfig tunes the chat core.
type AssistantConfig struct {
	// SessionCacheSize caps how many concurrent conversations are kept
	// before the least recently used one is evicted.
	SessionCacheSize int

	// RateLimitPerMin caps chat turns per minute; zero disables limiting.
	RateLimitPerMin int

	// RandomSeed fixes the mock-result generators for reproducible demos.
	// Zero seeds from the clock.
	RandomSeed int64
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Assistant
	cfg.Assistant.SessionCacheSize = viper.GetInt("assistant.session_cache_size")
	cfg.Assistant.RateLimitPerMin = viper.GetInt("assistant.rate_limit_per_min")
	cfg.Assistant.RandomSeed = viper.GetInt64("assistant.random_seed")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("invalid http_server.port: %d", cfg.HTTPServer.Port)
	}
	if cfg.Assistant.SessionCacheSize <= 0 {
		return fmt.Errorf("assistant.session_cache_size must be positive, got %d", cfg.Assistant.SessionCacheSize)
	}
	if cfg.Assistant.RateLimitPerMin < 0 {
		return fmt.Errorf("assistant.rate_limit_per_min must not be negative, got %d", cfg.Assistant.RateLimitPerMin)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("assistant.session_cache_size", 1024)
	viper.SetDefault("assistant.rate_limit_per_min", 60)
	viper.SetDefault("assistant.random_seed", 0)
}
