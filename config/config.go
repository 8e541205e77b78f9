// Package config loads service and CLI settings from .env files, the
// environment and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default settings
const (
	DefaultPort             = "8082"
	DefaultDataDir          = "data"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "json"
	DefaultFetchTimeout     = 25 * time.Second
	DefaultNarrativeModel   = "claude-sonnet-4-20250514"
	DefaultNarrativeTimeout = 60 * time.Second
	DefaultRateLimit        = 10
	DefaultRateWindow       = time.Minute
	DefaultCacheTTL         = 30 * time.Minute
	DefaultCacheSize        = 1000
	DefaultCleanupInterval  = 5 * time.Minute
)

// envFiles are tried in order; missing files are ignored.
var envFiles = []string{".env.development", ".env"}

// Config is the full application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" yaml:"server"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	Fetch     FetchConfig     `mapstructure:"fetch" yaml:"fetch"`
	Narrative NarrativeConfig `mapstructure:"narrative" yaml:"narrative"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit"`
	Cache     CacheConfig     `mapstructure:"cache" yaml:"cache"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port    string `mapstructure:"port" yaml:"port"`
	GinMode string `mapstructure:"gin_mode" yaml:"gin_mode"`
	DevMode bool   `mapstructure:"dev_mode" yaml:"dev_mode"`

	// DataDir holds persisted statistics
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
}

// LogConfig selects the zap logger. Format is json or console.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// FetchConfig bounds the single page download
type FetchConfig struct {
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
	UserAgent string        `mapstructure:"user_agent" yaml:"user_agent"`
}

// NarrativeConfig configures the optional narrative analysis. An empty
// APIKey disables it.
type NarrativeConfig struct {
	APIKey  string        `mapstructure:"api_key" yaml:"-"`
	Model   string        `mapstructure:"model" yaml:"model"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// RateLimitConfig is a fixed window: Limit requests per Window per client.
type RateLimitConfig struct {
	Limit  int           `mapstructure:"limit" yaml:"limit"`
	Window time.Duration `mapstructure:"window" yaml:"window"`
}

// CacheConfig bounds the analysis result cache. CleanupInterval is how
// often expired entries are swept.
type CacheConfig struct {
	TTL             time.Duration `mapstructure:"ttl" yaml:"ttl"`
	MaxSize         int           `mapstructure:"max_size" yaml:"max_size"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" yaml:"cleanup_interval"`
}

// envBindings maps config keys to environment variables
var envBindings = map[string]string{
	"server.port":            "PORT",
	"server.gin_mode":        "GIN_MODE",
	"server.dev_mode":        "DEV_MODE",
	"server.data_dir":        "DATA_DIR",
	"log.level":              "LOG_LEVEL",
	"log.format":             "LOG_FORMAT",
	"fetch.timeout":          "FETCH_TIMEOUT",
	"fetch.user_agent":       "USER_AGENT",
	"narrative.api_key":      "ANTHROPIC_API_KEY",
	"narrative.model":        "NARRATIVE_MODEL",
	"narrative.timeout":      "NARRATIVE_TIMEOUT",
	"rate_limit.limit":       "RATE_LIMIT",
	"rate_limit.window":      "RATE_WINDOW",
	"cache.ttl":              "CACHE_TTL",
	"cache.max_size":         "CACHE_MAX_SIZE",
	"cache.cleanup_interval": "CACHE_CLEANUP_INTERVAL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("server.dev_mode", false)
	v.SetDefault("server.data_dir", DefaultDataDir)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("fetch.timeout", DefaultFetchTimeout)
	v.SetDefault("fetch.user_agent", "")
	v.SetDefault("narrative.api_key", "")
	v.SetDefault("narrative.model", DefaultNarrativeModel)
	v.SetDefault("narrative.timeout", DefaultNarrativeTimeout)
	v.SetDefault("rate_limit.limit", DefaultRateLimit)
	v.SetDefault("rate_limit.window", DefaultRateWindow)
	v.SetDefault("cache.ttl", DefaultCacheTTL)
	v.SetDefault("cache.max_size", DefaultCacheSize)
	v.SetDefault("cache.cleanup_interval", DefaultCleanupInterval)
}

// loadEnv loads the first .env file found into the process environment
func loadEnv() {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err == nil {
			return
		}
	}
}

// Load reads configuration. path may be empty; otherwise it names a YAML
// file whose values sit between defaults and the environment.
func Load(path string) (*Config, error) {
	loadEnv()

	// Create a new viper instance to avoid sharing global state
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	var errs []error

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Errorf("invalid log.level '%s', must be one of: debug, info, warn, error", c.Log.Level))
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		errs = append(errs, fmt.Errorf("invalid log.format '%s', must be json or console", c.Log.Format))
	}

	validModes := map[string]bool{"debug": true, "release": true, "test": true}
	if !validModes[c.Server.GinMode] {
		errs = append(errs, fmt.Errorf("invalid server.gin_mode '%s', must be one of: debug, release, test", c.Server.GinMode))
	}
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port must not be empty"))
	}

	if c.Fetch.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("fetch.timeout must be > 0, got %s", c.Fetch.Timeout))
	}
	if c.Narrative.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("narrative.timeout must be > 0, got %s", c.Narrative.Timeout))
	}
	if c.RateLimit.Limit < 1 {
		errs = append(errs, fmt.Errorf("rate_limit.limit must be >= 1, got %d", c.RateLimit.Limit))
	}
	if c.RateLimit.Window <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit.window must be > 0, got %s", c.RateLimit.Window))
	}
	if c.Cache.TTL < 0 {
		errs = append(errs, fmt.Errorf("cache.ttl must be >= 0, got %s", c.Cache.TTL))
	}
	if c.Cache.MaxSize < 1 {
		errs = append(errs, fmt.Errorf("cache.max_size must be >= 1, got %d", c.Cache.MaxSize))
	}
	if c.Cache.CleanupInterval <= 0 {
		errs = append(errs, fmt.Errorf("cache.cleanup_interval must be > 0, got %s", c.Cache.CleanupInterval))
	}

	return errors.Join(errs...)
}

// NarrativeEnabled reports whether a narrative credential is configured
func (c *Config) NarrativeEnabled() bool {
	return c.Narrative.APIKey != ""
}
