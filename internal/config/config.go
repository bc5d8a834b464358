package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage backends understood by storage.Open.
const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type StorageConfig struct {
	Backend   string `mapstructure:"backend" yaml:"backend"`
	CacheSize uint64 `mapstructure:"cache_size" yaml:"cache_size"` // bytes kept in the diskv read cache
}

type TimerConfig struct {
	Preset  int   `mapstructure:"preset" yaml:"preset"`   // minutes
	Presets []int `mapstructure:"presets" yaml:"presets"` // offered in the TUI
}

type NotifyConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

type FeedsConfig struct {
	Timeout    time.Duration `mapstructure:"timeout" yaml:"timeout"`
	GeoURL     string        `mapstructure:"geo_url" yaml:"geo_url"`
	WeatherURL string        `mapstructure:"weather_url" yaml:"weather_url"`
	QuoteURL   string        `mapstructure:"quote_url" yaml:"quote_url"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

type Config struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Timer   TimerConfig   `mapstructure:"timer" yaml:"timer"`
	Notify  NotifyConfig  `mapstructure:"notify" yaml:"notify"`
	Feeds   FeedsConfig   `mapstructure:"feeds" yaml:"feeds"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

func Default() Config {
	return Config{
		Storage: StorageConfig{
			Backend:   BackendDiskv,
			CacheSize: 1024 * 1024,
		},
		Timer: TimerConfig{
			Preset:  25,
			Presets: []int{5, 15, 25, 50},
		},
		Notify: NotifyConfig{Enabled: true},
		Feeds: FeedsConfig{
			Timeout:    10 * time.Second,
			GeoURL:     "https://ipapi.co/json/",
			WeatherURL: "https://api.open-meteo.com/v1/forecast",
			QuoteURL:   "https://api.quotable.io/random?tags=technology|wisdom|inspirational",
		},
		Log: LogConfig{
			Level: "info",
			File:  "productify.log",
		},
	}
}

// Load reads the YAML file at path on top of the defaults. A missing file is
// fine. PRODUCTIFY_* environment variables override both, e.g.
// PRODUCTIFY_STORAGE_BACKEND=sqlite.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	}
	v.SetEnvPrefix("PRODUCTIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults
	v.SetDefault("storage.backend", cfg.Storage.Backend)
	v.SetDefault("storage.cache_size", cfg.Storage.CacheSize)
	v.SetDefault("timer.preset", cfg.Timer.Preset)
	v.SetDefault("timer.presets", cfg.Timer.Presets)
	v.SetDefault("notify.enabled", cfg.Notify.Enabled)
	v.SetDefault("feeds.timeout", cfg.Feeds.Timeout)
	v.SetDefault("feeds.geo_url", cfg.Feeds.GeoURL)
	v.SetDefault("feeds.weather_url", cfg.Feeds.WeatherURL)
	v.SetDefault("feeds.quote_url", cfg.Feeds.QuoteURL)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)

	if path != "" {
		if err := v.ReadInConfig(); err != nil && !isMissingConfig(err) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the dashboard cannot run with.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendDiskv, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("invalid storage backend %q (expected diskv|sqlite|memory)", c.Storage.Backend)
	}
	if c.Timer.Preset <= 0 {
		return fmt.Errorf("timer preset must be positive, got %d", c.Timer.Preset)
	}
	for _, p := range c.Timer.Presets {
		if p <= 0 {
			return fmt.Errorf("timer presets must be positive, got %d", p)
		}
	}
	if c.Feeds.Timeout <= 0 {
		return fmt.Errorf("feeds timeout must be positive, got %s", c.Feeds.Timeout)
	}
	return nil
}

func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
