package utils

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"edgedata/pkg/datafactory"
)

// Environment variables that override the config file.
const (
	EnvRunOneDatapoint = "EDGEDATA_RUN_ONE_DATAPOINT"
	EnvSeed            = "EDGEDATA_SEED"
)

// Config represents the main configuration structure
type Config struct {
	DataFactory datafactory.Settings `yaml:"datafactory"`
	Probe       ProbeConfig          `yaml:"probe"`
	Output      OutputConfig         `yaml:"output"`
}

type ProbeConfig struct {
	Threads    int               `yaml:"threads"`
	Timeout    string            `yaml:"timeout"`
	MaxRetries int               `yaml:"max_retries"`
	RateLimit  int               `yaml:"rate_limit"`
	Delay      string            `yaml:"delay"`
	VerifyTLS  bool              `yaml:"verify_tls"`
	Method     string            `yaml:"method"`
	Field      string            `yaml:"field"`
	Username   string            `yaml:"username"`
	Password   string            `yaml:"password"`
	Headers    map[string]string `yaml:"headers"`
}

type OutputConfig struct {
	Format  string `yaml:"format"`
	Verbose bool   `yaml:"verbose"`
	NoColor bool   `yaml:"no_color"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		DataFactory: datafactory.Settings{
			RunOneDatapoint: false,
			MinLength:       datafactory.DefaultMinLength,
			MaxLength:       datafactory.DefaultMaxLength,
		},
		Probe: ProbeConfig{
			Threads:    5,
			Timeout:    "10s",
			MaxRetries: 2,
			RateLimit:  10,
			Delay:      "0s",
			VerifyTLS:  true,
			Method:     "POST",
			Field:      "name",
			Headers:    map[string]string{},
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// ApplyEnv overrides config values from the environment.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvRunOneDatapoint); ok {
		one, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRunOneDatapoint, err)
		}
		c.DataFactory.RunOneDatapoint = one
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.DataFactory.Seed = seed
	}
	return nil
}

func (c *Config) Validate() error {
	if err := datafactory.CheckLengthRange(c.DataFactory.MinLength, c.DataFactory.MaxLength); err != nil {
		return fmt.Errorf("datafactory: %w", err)
	}
	if c.Probe.Threads <= 0 {
		return fmt.Errorf("probe threads must be positive, got %d", c.Probe.Threads)
	}
	if _, err := c.Probe.TimeoutDuration(); err != nil {
		return err
	}
	if _, err := c.Probe.DelayDuration(); err != nil {
		return err
	}
	return nil
}

func (p ProbeConfig) TimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(p.Timeout)
	if err != nil {
		return 0, fmt.Errorf("probe timeout: %w", err)
	}
	return d, nil
}

func (p ProbeConfig) DelayDuration() (time.Duration, error) {
	if p.Delay == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(p.Delay)
	if err != nil {
		return 0, fmt.Errorf("probe delay: %w", err)
	}
	return d, nil
}
