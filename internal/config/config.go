// Package config loads circuitd settings from config.yaml, CIRCUITD_*
// environment variables (optionally seeded from a .env file) and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "CIRCUITD"

type Config struct {
	Node    NodeConfig    `mapstructure:"node"`
	Storage StorageConfig `mapstructure:"storage"`
	NATS    NATSConfig    `mapstructure:"nats"`
	GRPC    ListenConfig  `mapstructure:"grpc"`
	HTTP    ListenConfig  `mapstructure:"http"`
	Metrics ListenConfig  `mapstructure:"metrics"`
	Log     LogConfig     `mapstructure:"log"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Admin   AdminConfig   `mapstructure:"admin"`
}

type NodeConfig struct {
	ID       string `mapstructure:"id"`
	Endpoint string `mapstructure:"endpoint"`
}

type StorageConfig struct {
	Engine string `mapstructure:"engine"`
	Path   string `mapstructure:"path"`
}

type NATSConfig struct {
	URL           string `mapstructure:"url"`
	SubjectPrefix string `mapstructure:"subject_prefix"`
	EventSubject  string `mapstructure:"event_subject"`
}

type ListenConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type AdminConfig struct {
	StorageRetries   uint64        `mapstructure:"storage_retries"`
	RetryInterval    time.Duration `mapstructure:"retry_interval"`
	PendingVoteLimit int           `mapstructure:"pending_vote_limit"`
}

// SetDefaults registers the default for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("node.endpoint", "")
	v.SetDefault("storage.engine", "badger")
	v.SetDefault("storage.path", "data")
	v.SetDefault("nats.url", "nats://127.0.0.1:4222")
	v.SetDefault("nats.subject_prefix", "circuitd")
	v.SetDefault("nats.event_subject", "circuits.events")
	v.SetDefault("grpc.addr", ":50051")
	v.SetDefault("http.addr", ":8085")
	v.SetDefault("metrics.addr", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("admin.storage_retries", 5)
	v.SetDefault("admin.retry_interval", "50ms")
	v.SetDefault("admin.pending_vote_limit", 64)
}

// BindFlags maps command line flags onto their config keys.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"node-id":   "node.id",
		"data-dir":  "storage.path",
		"engine":    "storage.engine",
		"nats-url":  "nats.url",
		"grpc-addr": "grpc.addr",
		"http-addr": "http.addr",
		"log-level": "log.level",
	}
	for flag, key := range bindings {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// Load reads configFile (if non-empty) and the environment into a Config.
// A .env file in the working directory is applied to the environment first.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Node.ID == "" {
		return errors.New("node.id is required")
	}
	switch c.Storage.Engine {
	case "badger", "leveldb":
	default:
		return fmt.Errorf("storage.engine must be badger or leveldb, got %q", c.Storage.Engine)
	}
	if c.NATS.SubjectPrefix == "" {
		return errors.New("nats.subject_prefix is required")
	}
	return nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err == nil {
		return godotenv.Load(path)
	}
	return nil
}
