package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 3, cfg.Scenario.Steps)
	require.Equal(t, 1.1, cfg.Scenario.Up)
	require.NotEmpty(t, cfg.Bench.Steps)
}

func TestLoad(t *testing.T) {
	content := `
server:
  address: "127.0.0.1:9000"

scenario:
  spot: 120
  strike: 110
  maturity: 0.5
  rate: 0.03
  steps: 100
  up: 1.2
  kind: "put"

bench:
  steps: [10, 100, 1000]
`
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, "127.0.0.1:9000", cfg.Server.Address)
	require.Equal(t, 120.0, cfg.Scenario.Spot)
	require.Equal(t, "put", cfg.Scenario.Kind)
	require.Equal(t, []int{10, 100, 1000}, cfg.Bench.Steps)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does-not-exist.yaml")
	require.Error(t, err)
}

func TestValidateErrors(t *testing.T) {
	type testCases struct {
		name   string
		mutate func(*Config)
	}

	for _, test := range []testCases{
		{name: "EMPTY_ADDRESS", mutate: func(c *Config) { c.Server.Address = "" }},
		{name: "NEGATIVE_SPOT", mutate: func(c *Config) { c.Scenario.Spot = -1 }},
		{name: "ZERO_STEPS", mutate: func(c *Config) { c.Scenario.Steps = 0 }},
		{name: "UP_NOT_ABOVE_ONE", mutate: func(c *Config) { c.Scenario.Up = 1.0 }},
		{name: "EMPTY_SWEEP", mutate: func(c *Config) { c.Bench.Steps = nil }},
		{name: "ZERO_SWEEP_ENTRY", mutate: func(c *Config) { c.Bench.Steps = []int{100, 0} }},
	} {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
