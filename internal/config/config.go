// Package config provides configuration management for the simulator.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the simulator.
type Config struct {
	App     AppConfig
	Gemini  GeminiConfig
	Logging LoggingConfig
}

// AppConfig contains session behavior configuration.
type AppConfig struct {
	// RequireLogin starts the session on the login view with no signed-in
	// identity instead of the home view.
	RequireLogin bool
	// DefaultUserID is the account signed in at startup when RequireLogin
	// is off. Empty starts anonymous.
	DefaultUserID string
	// RPM is the simulated revenue per thousand views for partners.
	RPM float64
	// PartnerThreshold is the subscriber count required for the partner
	// program.
	PartnerThreshold int
}

// GeminiConfig contains text-generation client configuration.
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level string
	File  string
}

// Load loads configuration from file and environment variables.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")

	// The original service reads the key straight from the environment.
	_ = viper.BindEnv("gemini.apikey", "APP_GEMINI_APIKEY", "GEMINI_API_KEY", "API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	// App
	viper.SetDefault("app.requirelogin", false)
	viper.SetDefault("app.defaultuserid", "user_1")
	viper.SetDefault("app.rpm", 2.45)
	viper.SetDefault("app.partnerthreshold", 1000)

	// Gemini
	viper.SetDefault("gemini.apikey", "")
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.baseurl", "https://generativelanguage.googleapis.com")
	viper.SetDefault("gemini.timeout", 30*time.Second)

	// Logging
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.file", "")
}
