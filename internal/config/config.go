package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	// EnvGitHubToken overrides the token from the config file
	EnvGitHubToken = "GHSCOUT_GITHUB_TOKEN"

	DefaultAPIBaseURL  = "https://api.github.com/"
	DefaultResultLimit = 5
	DefaultLogFile     = "ghscout.log"

	maxResultLimit = 100 // GitHub's per_page ceiling
)

// Config represents the application configuration
type Config struct {
	Version     int        `toml:"version"`
	APIBaseURL  string     `toml:"api_base_url"`
	ResultLimit int        `toml:"result_limit"`
	Token       string     `toml:"token,omitempty"`
	LogFile     string     `toml:"log_file"`
	UISettings  UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowDescriptions bool `toml:"show_descriptions"`
	AltScreen        bool `toml:"alt_screen"`
}

// Validate checks the values a client and UI can be built from
func (c *Config) Validate() error {
	if c.ResultLimit < 1 || c.ResultLimit > maxResultLimit {
		return fmt.Errorf("result_limit must be between 1 and %d, got %d", maxResultLimit, c.ResultLimit)
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("invalid api_base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_base_url must be an http(s) URL, got %q", c.APIBaseURL)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "ghscout", "config.toml")
}

// NewConfigService creates a config service reading path, or the default
// location when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file. A missing file
// yields the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		applyEnv(cfg)
	} else if err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// the file may hold a token
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		APIBaseURL:  DefaultAPIBaseURL,
		ResultLimit: DefaultResultLimit,
		LogFile:     DefaultLogFile,
		UISettings: UISettings{
			ShowDescriptions: true,
			AltScreen:        true,
		},
	}
}

func applyEnv(cfg *Config) {
	if token := os.Getenv(EnvGitHubToken); token != "" {
		cfg.Token = token
	}
}
