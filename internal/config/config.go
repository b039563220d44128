// Package config holds the application settings and the user configuration
// that persists between runs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Errors returned by the setters. UI callbacks check them with errors.Is.
var (
	ErrEmptyLanguage   = errors.New("language code is empty")
	ErrUnknownLanguage = errors.New("language is not available")
	ErrVolumeRange     = errors.New("volume out of range")
)

// Config is the user configuration. It is created once at startup and passed
// explicitly to whatever needs it.
type Config struct {
	Language     string  `mapstructure:"language"`
	Volume       float64 `mapstructure:"volume"`
	ShowInterval float64 `mapstructure:"show_interval"`
	HideInterval float64 `mapstructure:"hide_interval"`

	LogLevel  string `mapstructure:"log_level"`
	LogFile   string `mapstructure:"log_file"`
	HotReload bool   `mapstructure:"hot_reload"`

	path string
	// file holds the values read from disk and loaded the values after env
	// overrides; Save uses them to keep overrides out of the file.
	file   settings
	loaded settings
}

// settings is the persisted part of Config.
type settings struct {
	Language     string
	Volume       float64
	ShowInterval float64
	HideInterval float64
	LogLevel     string
	LogFile      string
	HotReload    bool
}

func (c *Config) snapshot() settings {
	return settings{
		Language:     c.Language,
		Volume:       c.Volume,
		ShowInterval: c.ShowInterval,
		HideInterval: c.HideInterval,
		LogLevel:     c.LogLevel,
		LogFile:      c.LogFile,
		HotReload:    c.HotReload,
	}
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Language:     DefaultLanguage,
		Volume:       DefaultVolume,
		ShowInterval: DefaultShowInterval,
		HideInterval: DefaultHideInterval,
		LogLevel:     "info",
		HotReload:    true,
		path:         ConfigFile,
	}
}

// newViper returns a viper instance bound to path with defaults and, when
// env is set, environment overrides.
func newViper(path string, env bool) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(configType(path))

	d := Default()
	v.SetDefault("language", d.Language)
	v.SetDefault("volume", d.Volume)
	v.SetDefault("show_interval", d.ShowInterval)
	v.SetDefault("hide_interval", d.HideInterval)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("hot_reload", d.HotReload)

	if env {
		v.SetEnvPrefix("AVATARPAL")
		v.AutomaticEnv()
	}
	return v
}

func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return "json"
	}
}

// Load reads configuration from path and the environment. A missing file is
// not an error: defaults are returned and the file is written on Save.
func Load(path string) (*Config, error) {
	fromFile, err := read(path, false)
	if err != nil {
		return nil, err
	}
	cfg, err := read(path, true)
	if err != nil {
		return nil, err
	}
	cfg.file = fromFile.snapshot()
	cfg.loaded = cfg.snapshot()
	return cfg, nil
}

func read(path string, env bool) (*Config, error) {
	v := newViper(path, env)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	cfg.path = path
	cfg.normalize()
	return cfg, nil
}

// normalize repairs values a hand-edited file may have broken.
func (c *Config) normalize() {
	c.Volume = clampVolume(c.Volume)
	if c.ShowInterval < 0 {
		c.ShowInterval = DefaultShowInterval
	}
	if c.HideInterval < 0 {
		c.HideInterval = DefaultHideInterval
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Path returns the file the configuration is saved to.
func (c *Config) Path() string {
	return c.path
}

// persisted returns what Save writes. A value that came from the environment
// and was not changed since Load keeps its on-disk value.
func (c *Config) persisted() settings {
	cur := c.snapshot()
	return settings{
		Language:     keep(cur.Language, c.loaded.Language, c.file.Language),
		Volume:       keep(cur.Volume, c.loaded.Volume, c.file.Volume),
		ShowInterval: keep(cur.ShowInterval, c.loaded.ShowInterval, c.file.ShowInterval),
		HideInterval: keep(cur.HideInterval, c.loaded.HideInterval, c.file.HideInterval),
		LogLevel:     keep(cur.LogLevel, c.loaded.LogLevel, c.file.LogLevel),
		LogFile:      keep(cur.LogFile, c.loaded.LogFile, c.file.LogFile),
		HotReload:    keep(cur.HotReload, c.loaded.HotReload, c.file.HotReload),
	}
}

func keep[T comparable](cur, loaded, file T) T {
	if loaded != file && cur == loaded {
		return file
	}
	return cur
}

// Save writes the configuration to its file, creating parent directories.
// Environment overrides are not written unless the value was changed.
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		path = ConfigFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
	}

	p := c.persisted()
	v := viper.New()
	v.SetConfigType(configType(path))
	v.Set("language", p.Language)
	v.Set("volume", p.Volume)
	v.Set("show_interval", p.ShowInterval)
	v.Set("hide_interval", p.HideInterval)
	v.Set("log_level", p.LogLevel)
	v.Set("log_file", p.LogFile)
	v.Set("hot_reload", p.HotReload)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// SetLanguage switches the active language. When available is non-empty the
// code must be one of its entries.
func (c *Config) SetLanguage(code string, available []string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrEmptyLanguage
	}
	if len(available) > 0 && !slices.Contains(available, code) {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	c.Language = code
	return nil
}

// SetVolume sets the playback volume, which must lie in [0,1].
func (c *Config) SetVolume(v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%w: %.2f", ErrVolumeRange, v)
	}
	c.Volume = v
	return nil
}
