package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Taichi-iskw/cheta/internal/errors"
)

const (
	// ConfigPathEnv overrides the default configuration file location
	ConfigPathEnv = "CHETA_CONFIG"

	DefaultMaxResults    = 5
	DefaultModel         = "gemini-2.5-flash"
	DefaultFetchInterval = 1 * time.Second
)

// Config holds the recommendation settings read at startup
type Config struct {
	Channels      []string      `yaml:"channels"`
	Preferences   string        `yaml:"preferences"`
	MaxResults    int           `yaml:"max_results"`
	Model         string        `yaml:"model"`
	FetchInterval time.Duration `yaml:"fetch_interval"`
}

// NewConfig loads configuration with the following priority:
// $CHETA_CONFIG > ~/.cheta/config.yaml
func NewConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(configPath)
}

// Load reads, defaults and validates the configuration file at path.
// JSON documents are accepted as well since they parse as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeInvalidArg,
				fmt.Sprintf("configuration file not found: %s (list your channels and preferences there)", path))
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to read config file")
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidArg, "failed to parse config file")
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the configuration can drive a run
func (c *Config) Validate() error {
	if len(c.Channels) == 0 {
		return errors.New(errors.CodeInvalidArg, "at least one channel must be configured")
	}
	for i, ch := range c.Channels {
		if strings.TrimSpace(ch) == "" {
			return errors.New(errors.CodeInvalidArg, fmt.Sprintf("channel #%d is empty", i+1))
		}
	}
	if c.MaxResults < 0 {
		return errors.New(errors.CodeInvalidArg, "max_results must not be negative")
	}
	if c.FetchInterval < 0 {
		return errors.New(errors.CodeInvalidArg, "fetch_interval must not be negative")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.MaxResults == 0 {
		c.MaxResults = DefaultMaxResults
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.FetchInterval == 0 {
		c.FetchInterval = DefaultFetchInterval
	}
	for i, ch := range c.Channels {
		c.Channels[i] = strings.TrimSpace(ch)
	}
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() (string, error) {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p, nil
	}
	return getConfigFilePath()
}

// getConfigDir returns the configuration directory path (~/.cheta)
func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".cheta"), nil
}

// getConfigFilePath returns the full path to the config file
func getConfigFilePath() (string, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}
