package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultEndpoint     = "https://restcountries.com/v3.1/all"
	DefaultMaxRetries   = 3
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 720
)

// Config holds every tunable of the application
type Config struct {
	Endpoint       string        `yaml:"endpoint"`
	MaxRetries     int           `yaml:"max_retries"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	LogLevel       string        `yaml:"log_level"`
	JSONLogs       bool          `yaml:"json_logs"`
	WindowWidth    float32       `yaml:"window_width"`
	WindowHeight   float32       `yaml:"window_height"`
}

// Default returns the configuration used when no file or environment override is present
func Default() Config {
	return Config{
		Endpoint:     DefaultEndpoint,
		MaxRetries:   DefaultMaxRetries,
		LogLevel:     "info",
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

// Load builds the configuration from defaults, an optional YAML file and the environment.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvironment(); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate rejects configurations the application cannot run with
func (c Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return fmt.Errorf("endpoint must not be empty")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0, got %d", c.MaxRetries)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must be >= 0, got %s", c.RequestTimeout)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %.0fx%.0f", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

func (c *Config) applyEnvironment() error {
	if v := os.Getenv("POBLACIONES_ENDPOINT"); v != "" {
		c.Endpoint = v
	}

	if v := os.Getenv("POBLACIONES_MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid POBLACIONES_MAX_RETRIES %q: %w", v, err)
		}
		c.MaxRetries = n
	}

	if v := os.Getenv("POBLACIONES_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid POBLACIONES_REQUEST_TIMEOUT %q: %w", v, err)
		}
		c.RequestTimeout = d
	}

	if os.Getenv("POBLACIONES_JSON_LOGS") == "true" {
		c.JSONLogs = true
	}

	switch v := strings.ToLower(os.Getenv("LOG_LEVEL")); v {
	case "debug", "info", "warn", "error":
		c.LogLevel = v
	default:
		if os.Getenv("DEBUG") == "1" {
			c.LogLevel = "debug"
		}
	}

	return nil
}
