package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const VERSION = "1.2"

// Stage values accepted from the environment. Anything else falls back
// to staging so a typo never points the worker at production secrets.
const (
	StageProduction = "production"
	StageStaging    = "staging"
)

type Config struct {
	Stage                   string
	OverwriteOutgoingEmails string
	APIBaseURL              string
	HTTPTimeout             time.Duration
	MaxPages                int
	TokenExpiryLeeway       time.Duration
	LogLevel                string
	Version                 string
}

// LoadOptions customizes the configuration loading process
type LoadOptions struct {
	// EnvFile specifies a .env file to load (empty means none)
	EnvFile string
}

// Load loads the configuration with default options
func Load() (*Config, error) {
	// Try to load .env file but don't require it
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetDefault("STAGE", StageStaging)
	v.SetDefault("OVERWRITE_OUTGOING_EMAILS", "")
	v.SetDefault("API_BASE_URL", "http://localhost:8000/api")
	v.SetDefault("HTTP_TIMEOUT", "30s")
	v.SetDefault("MAX_PAGES", 10)
	v.SetDefault("TOKEN_EXPIRY_LEEWAY", "0s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)

	// Load environment file if specified
	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	// Read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	stage := v.GetString("STAGE")
	if stage != StageProduction && stage != StageStaging {
		stage = StageStaging
	}

	apiBaseURL := strings.TrimSuffix(v.GetString("API_BASE_URL"), "/")
	if apiBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}

	maxPages := v.GetInt("MAX_PAGES")
	if maxPages <= 0 {
		maxPages = 10
	}

	return &Config{
		Stage:                   stage,
		OverwriteOutgoingEmails: v.GetString("OVERWRITE_OUTGOING_EMAILS"),
		APIBaseURL:              apiBaseURL,
		HTTPTimeout:             v.GetDuration("HTTP_TIMEOUT"),
		MaxPages:                maxPages,
		TokenExpiryLeeway:       v.GetDuration("TOKEN_EXPIRY_LEEWAY"),
		LogLevel:                v.GetString("LOG_LEVEL"),
		Version:                 v.GetString("VERSION"),
	}, nil
}

// IsProduction returns true when the worker runs against production
// parameter-store paths.
func (c *Config) IsProduction() bool {
	return c.Stage == StageProduction
}
