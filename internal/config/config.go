package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	EnvStoreURL = "TRAINSMART_STORE_URL"
	EnvStoreKey = "TRAINSMART_STORE_KEY"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// backing store, endpoint and key come from the environment only
	StoreURL string `toml:"-"`
	StoreKey string `toml:"-"`

	// redis, used for rate limiting the mutating routes
	RedisHost                string `toml:"redis_host"`
	RedisPort                string `toml:"redis_port"`
	RateLimitEnabled         bool   `toml:"rate_limit_enabled"`
	MutationsRateLimitPerMin int    `toml:"mutations_rate_limit_per_min"`

	// domain events, publishing is off when no brokers are set
	KafkaBrokers []string `toml:"kafka_brokers"`
	KafkaTopic   string   `toml:"kafka_topic"`

	AllowedOrigins []string `toml:"allowed_origins"`

	ProfileCacheSizeMB    int `toml:"profile_cache_size_mb"`
	ProfileCacheTTLSec    int `toml:"profile_cache_ttl_sec"`
	PickerSessionTTLMin   int `toml:"picker_session_ttl_min"`
	PickerReconcileTimeMs int `toml:"picker_reconcile_timeout_ms"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	return cfg, nil
}

// Load reads the TOML config for the given env and completes it from the
// environment. A .env file in the working dir is loaded first, if present.
func Load(env, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("load .env file: %s", err)
	}

	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)
	cfg.StoreURL = os.Getenv(EnvStoreURL)
	cfg.StoreKey = os.Getenv(EnvStoreKey)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.KafkaTopic == "" {
		c.KafkaTopic = "trainsmart.events"
	}
	if c.MutationsRateLimitPerMin <= 0 {
		c.MutationsRateLimitPerMin = 120
	}
	if c.ProfileCacheSizeMB <= 0 {
		c.ProfileCacheSizeMB = 8
	}
	if c.ProfileCacheTTLSec <= 0 {
		c.ProfileCacheTTLSec = 60
	}
	if c.PickerSessionTTLMin <= 0 {
		c.PickerSessionTTLMin = 30
	}
	if c.PickerReconcileTimeMs <= 0 {
		c.PickerReconcileTimeMs = 5000
	}
}

func (c *Config) Validate() error {
	if c.StoreURL == "" {
		return fmt.Errorf("store endpoint not set, use %s env var", EnvStoreURL)
	}
	if c.RateLimitEnabled && c.RedisHost == "" {
		return errors.New("rate limiting enabled but redis host not set")
	}
	return nil
}

func (c *Config) ProfileCacheTTL() time.Duration {
	return time.Duration(c.ProfileCacheTTLSec) * time.Second
}

func (c *Config) PickerSessionTTL() time.Duration {
	return time.Duration(c.PickerSessionTTLMin) * time.Minute
}

func (c *Config) PickerReconcileTimeout() time.Duration {
	return time.Duration(c.PickerReconcileTimeMs) * time.Millisecond
}
