package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultPlayerURL is the embeddable player page; {id} is replaced by the record id
const DefaultPlayerURL = "https://player.videasy.net/movie/{id}?color=ffffff"

// Config holds all application configuration
type Config struct {
	Source  SourceConfig  `mapstructure:"source"`
	Storage StorageConfig `mapstructure:"storage"`
	Player  PlayerConfig  `mapstructure:"player"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SourceConfig holds the remote catalog settings
type SourceConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	PageDelay  time.Duration `mapstructure:"page_delay"`
	StaleAfter time.Duration `mapstructure:"stale_after"`
	Retries    int           `mapstructure:"retries"`
}

// StorageConfig selects the key-value backend
type StorageConfig struct {
	Backend string `mapstructure:"backend"` // "bolt", "file" or "memory"
	Path    string `mapstructure:"path"`
}

// PlayerConfig controls the playback hand-off
type PlayerConfig struct {
	URLTemplate string `mapstructure:"url_template"`
	Command     string `mapstructure:"command"` // empty for the system opener
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme    string        `mapstructure:"theme"`  // "dark" or "light" until the user toggles
	Locale   string        `mapstructure:"locale"` // BCP 47 tag for title collation
	Debounce time.Duration `mapstructure:"debounce"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			BaseURL:    "https://sources.hexa.watch",
			Timeout:    15 * time.Second,
			PageDelay:  100 * time.Millisecond,
			StaleAfter: time.Hour,
			Retries:    2,
		},
		Storage: StorageConfig{
			Backend: "bolt",
			Path:    defaultDataPath(),
		},
		Player: PlayerConfig{
			URLTemplate: DefaultPlayerURL,
		},
		UI: UIConfig{
			Theme:    "dark",
			Locale:   "en",
			Debounce: 300 * time.Millisecond,
		},
		Logging: LoggingConfig{
			File:       filepath.Join(defaultDataPath(), "cinedex.log"),
			Level:      "INFO",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// IsDarkDefault reports whether the configured theme is dark
func (c *Config) IsDarkDefault() bool {
	return !strings.EqualFold(c.UI.Theme, "light")
}

// defaultDataPath returns the data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "cinedex")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "cinedex")
	}
}

// DefaultConfigDir returns the config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "cinedex")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "cinedex")
	}
}

// newViper builds a viper instance seeded with every default so that
// environment overrides apply to keys missing from the file.
func newViper() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()

	v.SetDefault("source.base_url", d.Source.BaseURL)
	v.SetDefault("source.timeout", d.Source.Timeout)
	v.SetDefault("source.page_delay", d.Source.PageDelay)
	v.SetDefault("source.stale_after", d.Source.StaleAfter)
	v.SetDefault("source.retries", d.Source.Retries)

	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.path", d.Storage.Path)

	v.SetDefault("player.url_template", d.Player.URLTemplate)
	v.SetDefault("player.command", d.Player.Command)

	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("ui.locale", d.UI.Locale)
	v.SetDefault("ui.debounce", d.UI.Debounce)

	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", d.Logging.MaxBackups)

	// CINEDEX_SOURCE_BASE_URL overrides source.base_url
	v.SetEnvPrefix("CINEDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConfig loads configuration from file and environment. An empty path
// searches the default config directory and the working directory.
func LoadConfig(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	cfg.Storage.Path = expandHome(cfg.Storage.Path)
	cfg.Logging.File = expandHome(cfg.Logging.File)

	return cfg, nil
}

// SaveConfig writes cfg as YAML to path, or to the default location when
// path is empty.
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = filepath.Join(DefaultConfigDir(), "config.yaml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("source.base_url", cfg.Source.BaseURL)
	v.Set("source.timeout", cfg.Source.Timeout.String())
	v.Set("source.page_delay", cfg.Source.PageDelay.String())
	v.Set("source.stale_after", cfg.Source.StaleAfter.String())
	v.Set("source.retries", cfg.Source.Retries)

	v.Set("storage.backend", cfg.Storage.Backend)
	v.Set("storage.path", cfg.Storage.Path)

	v.Set("player.url_template", cfg.Player.URLTemplate)
	v.Set("player.command", cfg.Player.Command)

	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("ui.debounce", cfg.UI.Debounce.String())

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)
	v.Set("logging.max_size_mb", cfg.Logging.MaxSizeMB)
	v.Set("logging.max_backups", cfg.Logging.MaxBackups)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
