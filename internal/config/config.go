// Package config resolves boostkit settings from flags, BOOSTKIT_*
// environment variables, an optional YAML file and built-in defaults, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "BOOSTKIT"

// Setting keys.
const (
	KeyState        = "state"
	KeyLibrary      = "library"
	KeyLogLevel     = "log_level"
	KeyShareBaseURL = "share_base_url"
	KeyFetchTimeout = "fetch_timeout"
)

// Defaults that do not depend on the environment.
const (
	DefaultShareBaseURL = "https://moodle-theme.example/"
	DefaultFetchTimeout = 30 * time.Second
)

// Config is the resolved configuration.
type Config struct {
	StatePath    string
	LibraryPath  string
	LogLevel     string
	ShareBaseURL string
	FetchTimeout time.Duration
	// File is the config file that was read, if any.
	File string
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/boostkit, falling back to
// ~/.config/boostkit.
func DefaultConfigDir() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns $XDG_DATA_HOME/boostkit, falling back to
// ~/.local/share/boostkit.
func DefaultDataDir() string {
	return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

func xdgDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return filepath.Join(dir, "boostkit")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, fallback, "boostkit")
}

// New returns a viper instance with defaults and environment binding in place.
func New() *viper.Viper {
	v := viper.New()

	dataDir := DefaultDataDir()
	v.SetDefault(KeyState, filepath.Join(dataDir, "theme.json"))
	v.SetDefault(KeyLibrary, filepath.Join(dataDir, "library.db"))
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyShareBaseURL, DefaultShareBaseURL)
	v.SetDefault(KeyFetchTimeout, DefaultFetchTimeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file into v and resolves the settings. An explicit
// configFile must exist; otherwise config.yaml in DefaultConfigDir is read
// when present.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{
		StatePath:    expandHome(v.GetString(KeyState)),
		LibraryPath:  expandHome(v.GetString(KeyLibrary)),
		LogLevel:     strings.TrimSpace(v.GetString(KeyLogLevel)),
		ShareBaseURL: strings.TrimSpace(v.GetString(KeyShareBaseURL)),
		FetchTimeout: v.GetDuration(KeyFetchTimeout),
		File:         v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	if c.StatePath == "" {
		return fmt.Errorf("%s must not be empty", KeyState)
	}
	if c.LibraryPath == "" {
		return fmt.Errorf("%s must not be empty", KeyLibrary)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("%s must be a positive duration", KeyFetchTimeout)
	}
	if c.LogLevel != "" && hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("%s %q is not one of trace, debug, info, warn, error", KeyLogLevel, c.LogLevel)
	}
	u, err := url.Parse(c.ShareBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s %q must be an absolute URL", KeyShareBaseURL, c.ShareBaseURL)
	}
	return nil
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
