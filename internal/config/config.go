// Package config handles the XDG configuration directory, the optional
// config.yaml and .env files, and the paths derived from them.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "todobox"

	// ConfigFile is the optional YAML settings filename.
	ConfigFile = "config.yaml"

	// EnvFile is the optional dotenv overrides filename.
	EnvFile = ".env"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// DefaultOrigin is the storage scope used when none is configured.
	DefaultOrigin = "default"

	// DefaultPushList is the Google Tasks list that push mirrors into.
	DefaultPushList = "todobox"
)

// Environment variable names. The same names are honoured in .env.
const (
	EnvOrigin   = "TODOBOX_ORIGIN"
	EnvStorage  = "TODOBOX_STORAGE"
	EnvLogLevel = "LOG_LEVEL"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `yaml:"-"`

	// Debug enables debug logging.
	Debug bool `yaml:"-"`

	// Quiet suppresses informational output.
	Quiet bool `yaml:"-"`

	// Origin scopes storage keys, like a browser origin.
	Origin string `yaml:"origin"`

	// LogLevel overrides the logging level (logrus level names).
	LogLevel string `yaml:"log_level"`

	Storage StorageConfig `yaml:"storage"`
	Consent ConsentConfig `yaml:"consent"`
	Push    PushConfig    `yaml:"push"`

	// Log is the logger commands and widgets write to. Set by the dispatcher.
	Log logrus.FieldLogger `yaml:"-"`
}

// StorageConfig selects the key-value storage driver.
type StorageConfig struct {
	// Driver is one of "file", "sqlite" or "memory".
	Driver string `yaml:"driver"`

	// Path overrides the driver's default location inside Dir.
	Path string `yaml:"path"`
}

// ConsentConfig customises the cookie banner.
type ConsentConfig struct {
	Message string `yaml:"message"`
}

// PushConfig configures the Google Tasks mirror.
type PushConfig struct {
	List string `yaml:"list"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todobox or $HOME/.config/todobox.
// Settings are layered: defaults, then config.yaml, then .env, then the
// process environment.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{
		Dir:     dir,
		Origin:  DefaultOrigin,
		Storage: StorageConfig{Driver: "file"},
		Push:    PushConfig{List: DefaultPushList},
	}

	if err := cfg.loadYAML(); err != nil {
		return nil, err
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadYAML() error {
	data, err := os.ReadFile(c.ConfigPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", ConfigFile, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	vars := map[string]string{}
	if _, err := os.Stat(c.EnvPath()); err == nil {
		vars, err = godotenv.Read(c.EnvPath())
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvFile, err)
		}
	}
	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return vars[key]
	}

	if v := strings.TrimSpace(lookup(EnvOrigin)); v != "" {
		c.Origin = v
	}
	if v := strings.TrimSpace(lookup(EnvStorage)); v != "" {
		c.Storage.Driver = v
	}
	if v := strings.TrimSpace(lookup(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to config.yaml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// EnvPath returns the path to the .env file.
func (c *Config) EnvPath() string {
	return filepath.Join(c.Dir, EnvFile)
}

// StoragePath returns the location of the persisted key-value data for the
// configured driver. Memory storage has no path.
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	switch c.Storage.Driver {
	case "sqlite":
		return filepath.Join(c.Dir, "storage.db")
	case "memory":
		return ""
	default:
		return filepath.Join(c.Dir, "storage")
	}
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}

// Logger returns c.Log, or a discarding logger when none was set.
func (c *Config) Logger() logrus.FieldLogger {
	if c.Log != nil {
		return c.Log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
