package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Output format template for media commands
	// Default: "" (pretty-printed JSON)
	OutputFormat string

	// Fixed output width for templated output (0 = disabled)
	OutputWidth int

	// Tviso API credentials
	Tviso TvisoConfig
}

// TvisoConfig holds Tviso specific configuration
type TvisoConfig struct {
	App       string
	Secret    string
	UserToken string
	BaseURL   string
}

// configDirOverride replaces the home-based config directory when set.
// Used by tests.
var configDirOverride string

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	v.AddConfigPath(getConfigDir())
	v.AddConfigPath(".")

	v.SetDefault("output_format", "")
	v.SetDefault("output_width", 0)

	// Read config file (optional - don't fail if missing)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Read from environment variables, e.g. TVISO_APP or TVISO_USER_TOKEN
	v.SetEnvPrefix("TVISO")
	v.AutomaticEnv()
	_ = v.BindEnv("tviso.app", "TVISO_APP")
	_ = v.BindEnv("tviso.secret", "TVISO_SECRET")
	_ = v.BindEnv("tviso.user_token", "TVISO_USER_TOKEN")
	_ = v.BindEnv("tviso.base_url", "TVISO_BASE_URL")

	cfg := &Config{
		OutputFormat: v.GetString("output_format"),
		OutputWidth:  v.GetInt("output_width"),
		Tviso: TvisoConfig{
			App:       v.GetString("tviso.app"),
			Secret:    v.GetString("tviso.secret"),
			UserToken: v.GetString("tviso.user_token"),
			BaseURL:   v.GetString("tviso.base_url"),
		},
	}

	return cfg, nil
}

// Validate checks that the API credentials are present
func (c *Config) Validate() error {
	if c.Tviso.App == "" {
		return fmt.Errorf("tviso.app is not configured. Run 'tviso configure' or set TVISO_APP")
	}
	if c.Tviso.Secret == "" {
		return fmt.Errorf("tviso.secret is not configured. Run 'tviso configure' or set TVISO_SECRET")
	}
	return nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	if configDirOverride != "" {
		return configDirOverride
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "tviso")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Save writes configuration to file.
// The user token is never written; it stays in the environment or flags.
func (c *Config) Save() error {
	v := viper.New()

	configFile := filepath.Join(getConfigDir(), "config.yaml")

	v.Set("output_format", c.OutputFormat)
	v.Set("output_width", c.OutputWidth)
	v.Set("tviso.app", c.Tviso.App)
	v.Set("tviso.secret", c.Tviso.Secret)
	if c.Tviso.BaseURL != "" {
		v.Set("tviso.base_url", c.Tviso.BaseURL)
	}

	return v.WriteConfigAs(configFile)
}
