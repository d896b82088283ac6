// Package config loads runtime configuration for the benchmark demo and
// the pricing service.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Scenario ScenarioConfig `mapstructure:"scenario"`
	Bench    BenchConfig    `mapstructure:"bench"`
}

// ServerConfig holds the HTTP service configuration
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// ScenarioConfig is the market parameter tuple priced by the demo
type ScenarioConfig struct {
	Spot     float64 `mapstructure:"spot"`
	Strike   float64 `mapstructure:"strike"`
	Maturity float64 `mapstructure:"maturity"`
	Rate     float64 `mapstructure:"rate"`
	Steps    int     `mapstructure:"steps"`
	Up       float64 `mapstructure:"up"`
	Kind     string  `mapstructure:"kind"`
}

// BenchConfig holds the step counts swept by the benchmark
type BenchConfig struct {
	Steps []int `mapstructure:"steps"`
}

// Load reads configuration from file and environment variables
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)
	v.SetEnvPrefix("BINOMIAL")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("BINOMIAL")
	v.AutomaticEnv()

	var cfg Config
	// defaults always unmarshal cleanly
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", "0.0.0.0:8080")

	// Reference scenario: 3-step CRR call struck at the money
	v.SetDefault("scenario.spot", 100.0)
	v.SetDefault("scenario.strike", 100.0)
	v.SetDefault("scenario.maturity", 1.0)
	v.SetDefault("scenario.rate", 0.06)
	v.SetDefault("scenario.steps", 3)
	v.SetDefault("scenario.up", 1.1)
	v.SetDefault("scenario.kind", "call")

	v.SetDefault("bench.steps", []int{100, 500, 1000, 5000, 10000})
}

// Validate checks that all configuration values are usable
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("server.address is required")
	}
	if c.Scenario.Spot <= 0 || c.Scenario.Strike <= 0 || c.Scenario.Maturity <= 0 {
		return fmt.Errorf("scenario spot, strike and maturity must be positive")
	}
	if c.Scenario.Steps < 1 {
		return fmt.Errorf("scenario.steps must be at least 1")
	}
	if c.Scenario.Up <= 1 {
		return fmt.Errorf("scenario.up must exceed 1")
	}
	if len(c.Bench.Steps) == 0 {
		return fmt.Errorf("bench.steps must contain at least one step count")
	}
	for _, n := range c.Bench.Steps {
		if n < 1 {
			return fmt.Errorf("bench.steps entries must be at least 1")
		}
	}
	return nil
}
