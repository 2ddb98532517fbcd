package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

var GlobalConfig *Config

// Config global configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	MySQL   MySQLConfig   `yaml:"mysql"`
	Redis   RedisConfig   `yaml:"redis"`
	Queue   QueueConfig   `yaml:"queue"`
	Logger  LoggerConfig  `yaml:"logger"`
	Catalog CatalogConfig `yaml:"catalog"`
	Cache   CacheConfig   `yaml:"cache"`
}

// ServerConfig server configuration
type ServerConfig struct {
	Port   int    `yaml:"port"`
	Mode   string `yaml:"mode"`    // debug, release
	APIKey string `yaml:"api_key"` // API key for write endpoints (optional, empty disables auth)
}

// MySQLConfig MySQL configuration
type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// RedisConfig Redis configuration
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// QueueConfig re-evaluation queue configuration
type QueueConfig struct {
	Concurrency int `yaml:"concurrency"`  // queue processing concurrency
	MaxRetry    int `yaml:"max_retry"`    // maximum retry count
	TaskTimeout int `yaml:"task_timeout"` // task timeout (seconds)
}

// LoggerConfig logger configuration
type LoggerConfig struct {
	Level  string           `yaml:"level"`  // debug, info, warn, error
	Output string           `yaml:"output"` // console, file, both
	File   LoggerFileConfig `yaml:"file"`
}

// LoggerFileConfig logger file configuration
type LoggerFileConfig struct {
	Path string `yaml:"path"`
}

// CatalogConfig physical-spec catalog configuration
type CatalogConfig struct {
	SeedPath string `yaml:"seed_path"` // optional YAML seed merged over the built-in tables
	// CheckInterval controls how often the catalog watcher job looks for a
	// version change (seconds). 0 disables the watcher.
	CheckInterval int `yaml:"check_interval"`
}

// CacheConfig evaluation result cache configuration
type CacheConfig struct {
	TTLSeconds int `yaml:"ttl_seconds"` // 0 = default TTL
}

// Init initializes configuration
func Init() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}

	validateAndApplyDefaults(&cfg)

	GlobalConfig = &cfg
	return nil
}

// validateAndApplyDefaults replaces missing or invalid values with defaults
// so a sparse config file still yields an operational service.
func validateAndApplyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}
	if cfg.Queue.Concurrency <= 0 {
		cfg.Queue.Concurrency = 5
	}
	if cfg.Queue.MaxRetry < 0 {
		cfg.Queue.MaxRetry = 3
	}
	if cfg.Queue.TaskTimeout <= 0 {
		cfg.Queue.TaskTimeout = 30
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}
	if cfg.Logger.Output == "" {
		cfg.Logger.Output = "console"
	}
	if cfg.Catalog.CheckInterval < 0 {
		cfg.Catalog.CheckInterval = 0
	}
	if cfg.Cache.TTLSeconds < 0 {
		cfg.Cache.TTLSeconds = 0
	}
}
