// Package config handles the configuration directory, the optional
// config.yaml file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "todolist"

	// ConfigFile is the optional settings filename inside Dir.
	ConfigFile = "config.yaml"

	// LogFile is the debug log filename used by the interactive UI.
	LogFile = "todolist.log"

	// EnvAPIURL overrides the base URL of the task collection.
	EnvAPIURL = "TODOLIST_API_URL"

	// EnvLegacyAPIURL is honoured so existing deployments keep working.
	EnvLegacyAPIURL = "REACT_APP_API_URL"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// APIURL is the base URL of the remote task collection.
	APIURL string

	// Timeout bounds each API call. Zero means the backend default.
	Timeout time.Duration

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileConfig is the on-disk shape of config.yaml.
type fileConfig struct {
	APIURL  string `yaml:"api_url"`
	Timeout string `yaml:"timeout"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todolist or $HOME/.config/todolist.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Load reads config.yaml (if present) and then applies environment
// overrides. Values already set on c, such as a --api flag, win over both.
func (c *Config) Load() error {
	fc, err := readFile(c.FilePath())
	if err != nil {
		return err
	}

	if c.APIURL == "" {
		c.APIURL = firstNonEmpty(os.Getenv(EnvAPIURL), os.Getenv(EnvLegacyAPIURL), fc.APIURL)
	}
	c.APIURL = strings.TrimSpace(c.APIURL)

	if c.Timeout == 0 && fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%s: invalid timeout %q", ConfigFile, fc.Timeout)
		}
		c.Timeout = d
	}
	return nil
}

func readFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fc, nil
	}
	if err != nil {
		return fc, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}
	return fc, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// FilePath returns the path to config.yaml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// LogPath returns the path to the debug log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasAPIURL reports whether a base URL has been configured.
func (c *Config) HasAPIURL() bool {
	return c.APIURL != ""
}
