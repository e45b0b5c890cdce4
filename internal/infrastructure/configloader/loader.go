package configloader

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"walletstate/internal/domain/entity"
)

// ServerConfig holds the HTTP server configuration. Timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout"`
	IdleTimeout  int    `yaml:"idleTimeout"`
}

// LoggingConfig holds the configuration for logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
}

// StateConfig controls how the store is seeded and read.
type StateConfig struct {
	SeedFile    string `yaml:"seedFile"`
	NetworkType string `yaml:"networkType"`
	Colorway    string `yaml:"colorway"`
}

// SchedulerConfig limits how often observers run.
type SchedulerConfig struct {
	TicksPerSecond float64 `yaml:"ticksPerSecond"`
	Burst          int     `yaml:"burst"`
}

// PopulatedConfig holds freshness windows for per-chain cached data.
type PopulatedConfig struct {
	TTLSeconds             int `yaml:"ttlSeconds"`
	CleanupIntervalSeconds int `yaml:"cleanupIntervalSeconds"`
}

// FeesConfig holds fee presentation settings.
type FeesConfig struct {
	WarningThresholdUSD   float64 `yaml:"warningThresholdUSD"`
	NativeDisplayDecimals int32   `yaml:"nativeDisplayDecimals"`
}

// EventsConfig sizes the event hub.
type EventsConfig struct {
	SubscriberBuffer int `yaml:"subscriberBuffer"`
	HistorySize      int `yaml:"historySize"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	State     StateConfig     `yaml:"state"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Populated PopulatedConfig `yaml:"populated"`
	Fees      FeesConfig      `yaml:"fees"`
	Events    EventsConfig    `yaml:"events"`
}

// Load reads the YAML configuration file from the given path and applies defaults.
func Load(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	logrus.Info("Configuration loaded successfully.")
	return cfg, nil
}

// Parse decodes YAML config data and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = ":8080"
		logrus.Infof("Server.Port not set, defaulting to %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout <= 0 {
		cfg.Server.IdleTimeout = 60
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.State.NetworkType == "" {
		cfg.State.NetworkType = entity.DefaultNetworkType
		logrus.Infof("State.NetworkType not set, defaulting to %s", cfg.State.NetworkType)
	}
	if cfg.State.Colorway == "" {
		cfg.State.Colorway = string(entity.ColorwayDark)
	}
	if cfg.State.SeedFile == "" {
		logrus.Info("State.SeedFile not set, built-in networks will be used")
	}

	if cfg.Scheduler.TicksPerSecond == 0 {
		cfg.Scheduler.TicksPerSecond = 20
		logrus.Infof("Scheduler.TicksPerSecond not set, defaulting to %v", cfg.Scheduler.TicksPerSecond)
	}
	if cfg.Scheduler.Burst <= 0 {
		cfg.Scheduler.Burst = 5
	}

	if cfg.Populated.TTLSeconds == 0 {
		cfg.Populated.TTLSeconds = 300
		logrus.Infof("Populated.TTLSeconds not set, defaulting to %d seconds", cfg.Populated.TTLSeconds)
	}
	if cfg.Populated.CleanupIntervalSeconds <= 0 {
		cfg.Populated.CleanupIntervalSeconds = 60
	}

	if cfg.Fees.WarningThresholdUSD == 0 {
		cfg.Fees.WarningThresholdUSD = 50
	}
	if cfg.Fees.NativeDisplayDecimals <= 0 {
		cfg.Fees.NativeDisplayDecimals = 6
	}

	if cfg.Events.SubscriberBuffer <= 0 {
		cfg.Events.SubscriberBuffer = 100
	}
	if cfg.Events.HistorySize <= 0 {
		cfg.Events.HistorySize = 256
	}
}

func validate(cfg *Config) error {
	switch entity.Colorway(cfg.State.Colorway) {
	case entity.ColorwayLight, entity.ColorwayDark:
	default:
		return fmt.Errorf("state.colorway must be %q or %q, got %q", entity.ColorwayLight, entity.ColorwayDark, cfg.State.Colorway)
	}
	if cfg.Scheduler.TicksPerSecond < 0 {
		logrus.Warnf("Scheduler.TicksPerSecond is negative (%v), observer ticks will not be rate limited", cfg.Scheduler.TicksPerSecond)
	}
	if cfg.Fees.WarningThresholdUSD < 0 {
		return fmt.Errorf("fees.warningThresholdUSD must not be negative, got %v", cfg.Fees.WarningThresholdUSD)
	}
	return nil
}
