package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/group-guard-bot/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	TelegramBotToken string         `koanf:"telegram_bot_token"`
	TelegramAPIURL   string         `koanf:"telegram_api_url"`
	OwnerID          int64          `koanf:"owner_id"`
	OwnerUsername    string         `koanf:"owner_username"`
	ChannelUsername  string         `koanf:"channel_username"`
	AppEnv           AppEnv         `koanf:"app_env"`
	LogLevel         string         `koanf:"log_level"`
	HTTPPort         string         `koanf:"http_port"`
	StorageBackend   StorageBackend `koanf:"storage_backend"`
	StoragePath      string         `koanf:"storage_path"`
	RedisURL         string         `koanf:"redis_url"`
	RequestTimeout   int            `koanf:"request_timeout"`
	AdminCacheTTL    int            `koanf:"admin_cache_ttl"`
	AdminCacheSize   int            `koanf:"admin_cache_size"`
	Workers          int            `koanf:"workers"`
	QueueSize        int            `koanf:"queue_size"`
	WarnInterval     int            `koanf:"warn_interval"`
}

var defaults = map[string]any{
	"telegram_api_url": "https://api.telegram.org",
	"app_env":          "production",
	"log_level":        "info",
	"http_port":        "8080",
	"storage_backend":  "file",
	"storage_path":     "./data",
	"redis_url":        "redis://localhost:6379/0",
	"request_timeout":  10,
	"admin_cache_ttl":  60,
	"admin_cache_size": 10000,
	"workers":          16,
	"queue_size":       256,
	"warn_interval":    10,
}

// positive lists the numeric keys that fall back to their default when
// set to zero or less.
var positive = []string{"request_timeout", "admin_cache_ttl", "admin_cache_size", "workers", "queue_size"}

func Load() (*Config, error) {
	// A .env file is optional; real environment variables still win.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, oops.With("context", "loading .env file").Wrap(err)
	}

	k := koanf.New(".")

	// Try to load config file from various formats
	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	// Use lo.Find to find the first existing config file
	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Load environment variables (they override config file values)
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	// Set defaults
	for key, value := range defaults {
		if !k.Exists(key) {
			k.Set(key, value)
		}
	}
	for _, key := range positive {
		if k.Int(key) <= 0 {
			k.Set(key, defaults[key])
		}
	}

	// Unmarshal into struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	if appEnv, err := ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = appEnv
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	backend, err := ParseStorageBackend(k.String("storage_backend"))
	if err != nil {
		return nil, oops.With("storage_backend", k.String("storage_backend")).Wrap(err)
	}
	cfg.StorageBackend = backend

	// Validate required fields
	if cfg.TelegramBotToken == "" {
		return nil, errors.ErrMissingBotToken
	}

	return &cfg, nil
}

// Level returns the configured slog level, info when unrecognized.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c *Config) RequestTimeoutDuration() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

func (c *Config) AdminCacheTTLDuration() time.Duration {
	return time.Duration(c.AdminCacheTTL) * time.Second
}

// WarnIntervalDuration is zero when lock warnings are disabled.
func (c *Config) WarnIntervalDuration() time.Duration {
	return time.Duration(max(c.WarnInterval, 0)) * time.Second
}
