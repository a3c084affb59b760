// Package config loads kennel settings from built-in defaults and KENNEL_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "KENNEL_"

// Preference backends
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds the resolved settings
type Config struct {
	DataDir string      `koanf:"data_dir" validate:"required"`
	Prefs   PrefsConfig `koanf:"prefs"`
	List    ListConfig  `koanf:"list"`
	Log     LogConfig   `koanf:"log"`
}

// PrefsConfig selects where column preferences are kept
type PrefsConfig struct {
	Backend     string `koanf:"backend" validate:"oneof=sqlite redis memory"`
	RedisAddr   string `koanf:"redis_addr" validate:"required_if=Backend redis"`
	RedisDB     int    `koanf:"redis_db" validate:"gte=0"`
	RedisPrefix string `koanf:"redis_prefix"`
	CacheSize   int    `koanf:"cache_size" validate:"gte=0"`
}

// ListConfig holds list defaults shared by every surface
type ListConfig struct {
	PageSize int    `koanf:"page_size" validate:"gt=0"`
	SortKey  string `koanf:"sort_key" validate:"required"`
}

// LogConfig configures the process logger
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `koanf:"json"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		DataDir: DefaultDataDir(),
		Prefs: PrefsConfig{
			Backend:     BackendSQLite,
			RedisAddr:   "localhost:6379",
			RedisPrefix: "kennel:prefs:",
			CacheSize:   128,
		},
		List: ListConfig{
			PageSize: 25,
			SortKey:  "name",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultDataDir returns $XDG_DATA_HOME/kennel, or ~/.local/share/kennel
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "kennel")
	}
	return "~/.local/share/kennel"
}

// Load resolves the configuration. Sources apply in order: defaults,
// environment, then overrides keyed by koanf path (e.g. "list.page_size").
func Load(overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	envToPath := make(map[string]string)
	for _, key := range k.Keys() {
		envToPath[EnvName(key)] = key
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			// unknown variables map to "" and are skipped
			return envToPath[key], value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for key, value := range overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to apply override %s: %w", key, err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks field constraints
func Validate(cfg *Config) error {
	return validator.New().Struct(cfg)
}

// EnvName returns the environment variable for a koanf path:
// "prefs.redis_addr" -> "KENNEL_PREFS_REDIS_ADDR"
func EnvName(path string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(path, ".", "_"))
}
