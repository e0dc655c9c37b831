package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreDriverMemory = "memory"
	StoreDriverFile   = "file"
	StoreDriverSQLite = "sqlite"
)

var (
	ErrInvalidStoreDriver = errors.New("invalid store driver")
	ErrInvalidStrategy    = errors.New("invalid input strategy")
	ErrMissingStorePath   = errors.New("store path is required")
	ErrInvalidPort        = errors.New("invalid http port")
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Checkbox sync
	Store      StoreConfig
	Identifier IdentifierConfig
	Input      InputConfig
	Toggle     ToggleConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int // 0 disables the limiter
}

type StoreConfig struct {
	Driver     string
	FileRoot   string // Vault directory for the file driver
	SQLitePath string
}

type IdentifierConfig struct {
	Length int
}

type InputConfig struct {
	Strategy string // applied | pending
}

type ToggleConfig struct {
	NativeMarker string // Attribute marking host-native task checkboxes
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Checkbox sync
	cfg.Store.Driver = strings.ToLower(v.GetString("store.driver"))
	cfg.Store.FileRoot = v.GetString("store.file_root")
	cfg.Store.SQLitePath = v.GetString("store.sqlite_path")
	cfg.Identifier.Length = v.GetInt("identifier.length")
	cfg.Input.Strategy = strings.ToLower(v.GetString("input.strategy"))
	cfg.Toggle.NativeMarker = v.GetString("toggle.native_marker")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.HTTPServer.Port)
	}

	switch c.Store.Driver {
	case StoreDriverMemory:
	case StoreDriverFile:
		if c.Store.FileRoot == "" {
			return fmt.Errorf("%w: store.file_root", ErrMissingStorePath)
		}
	case StoreDriverSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("%w: store.sqlite_path", ErrMissingStorePath)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStoreDriver, c.Store.Driver)
	}

	switch c.Input.Strategy {
	case "applied", "pending":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStrategy, c.Input.Strategy)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 600)

	v.SetDefault("store.driver", StoreDriverMemory)
	v.SetDefault("store.file_root", "./vault")
	v.SetDefault("store.sqlite_path", "./data/documents.db")
	v.SetDefault("identifier.length", 8)
	v.SetDefault("input.strategy", "applied")
	v.SetDefault("toggle.native_marker", "data-task")
}
