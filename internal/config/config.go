package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/etnz/nextfinance"
)

// DefaultPath is the configuration file read when NF_CONFIG is not set.
const DefaultPath = "nf.yaml"

// Config holds all application configuration.
type Config struct {
	Chart struct {
		Length     int     `yaml:"length"`
		Padding    float64 `yaml:"padding"`
		RandomSeed uint64  `yaml:"random_seed"` // 0 draws a new seed per run
	} `yaml:"chart"`
	Dashboard struct {
		LoadDelay time.Duration `yaml:"load_delay"`
		SeedFile  string        `yaml:"seed_file"`
	} `yaml:"dashboard"`
	Server struct {
		Addr         string   `yaml:"addr"`
		AllowOrigins []string `yaml:"allow_origins"` // empty allows any origin
	} `yaml:"server"`
	Schedule struct {
		Refresh string `yaml:"refresh"`
	} `yaml:"schedule"`
}

// Path returns the configuration file path, honouring NF_CONFIG.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv("NF_CONFIG"); v != "" {
		return v
	}
	return DefaultPath
}

// Load reads .env and the YAML file at path, then applies environment
// variable overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	cfg := &Config{}
	cfg.Chart.Padding = -1 // distinguishes an explicit 0 from a missing value

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// Defaults
	if cfg.Chart.Length == 0 {
		cfg.Chart.Length = nextfinance.DefaultSeriesLength
	}
	if cfg.Chart.Padding < 0 {
		cfg.Chart.Padding = nextfinance.DefaultPadding
	}
	if cfg.Dashboard.LoadDelay == 0 {
		cfg.Dashboard.LoadDelay = nextfinance.DefaultLoadDelay
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":9095"
	}
	if cfg.Schedule.Refresh == "" {
		cfg.Schedule.Refresh = "@every 5s"
	}
	return cfg, nil
}

// applyEnv overrides the file values with NF_* environment variables.
func (c *Config) applyEnv() error {
	if v := os.Getenv("NF_SERIES_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NF_SERIES_LENGTH: %w", err)
		}
		c.Chart.Length = n
	}
	if v := os.Getenv("NF_PADDING"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("NF_PADDING: %w", err)
		}
		c.Chart.Padding = p
	}
	if v := os.Getenv("NF_RANDOM_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("NF_RANDOM_SEED: %w", err)
		}
		c.Chart.RandomSeed = n
	}
	if v := os.Getenv("NF_LOAD_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("NF_LOAD_DELAY: %w", err)
		}
		c.Dashboard.LoadDelay = d
	}
	if v := os.Getenv("NF_SEED_FILE"); v != "" {
		c.Dashboard.SeedFile = v
	}
	if v := os.Getenv("NF_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("NF_CORS_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i, o := range origins {
			origins[i] = strings.TrimSpace(o)
		}
		c.Server.AllowOrigins = origins
	}
	if v := os.Getenv("NF_REFRESH"); v != "" {
		c.Schedule.Refresh = v
	}
	return nil
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if c.Chart.Length < 0 {
		return fmt.Errorf("chart.length must not be negative")
	}
	if c.Chart.Padding < 0 || c.Chart.Padding >= 1 {
		return fmt.Errorf("chart.padding must be in [0, 1)")
	}
	if c.Dashboard.LoadDelay < 0 {
		return fmt.Errorf("dashboard.load_delay must not be negative")
	}
	return nil
}

// SessionOptions turns the chart settings into session options.
func (c *Config) SessionOptions() []nextfinance.SessionOption {
	return []nextfinance.SessionOption{
		nextfinance.WithSeriesLength(c.Chart.Length),
		nextfinance.WithPadding(c.Chart.Padding),
		nextfinance.WithRandomSource(nextfinance.NewRandomSource(c.Chart.RandomSeed)),
	}
}
