package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultSeed        = 42
	defaultCapacity    = 500.0
	defaultMaxWeight   = 100.0
	defaultMaxValue    = 1000.0
	defaultTimeHorizon = 100
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	// CoinSystem names a registered denomination set; Denominations, when
	// non-empty, takes precedence over it.
	CoinSystem    string  `yaml:"coin_system"`
	Denominations []int   `yaml:"denominations"`
	ChangeAmounts []int   `yaml:"change_amounts"`
	KnapsackRuns  []int   `yaml:"knapsack_runs"`
	BaseCapacity  float64 `yaml:"base_capacity"`
	MaxWeight     float64 `yaml:"max_weight"`
	MaxValue      float64 `yaml:"max_value"`
	ActivityRuns  []int   `yaml:"activity_runs"`
	TimeHorizon   int     `yaml:"time_horizon"`
	Seed          int64   `yaml:"seed"`
	Verify        bool    `yaml:"verify"`
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	CoinSystem    string       `yaml:"coin_system"`
	Denominations []int        `yaml:"denominations"`
	ChangeAmounts []int        `yaml:"change_amounts"`
	Knapsack      yamlKnapsack `yaml:"knapsack"`
	Activities    yamlActivity `yaml:"activities"`
	Seed          *int64       `yaml:"seed"`
	Verify        *bool        `yaml:"verify"`
}

// yamlKnapsack represents the knapsack section in YAML.
type yamlKnapsack struct {
	Runs         []int   `yaml:"runs"`
	BaseCapacity float64 `yaml:"base_capacity"`
	MaxWeight    float64 `yaml:"max_weight"`
	MaxValue     float64 `yaml:"max_value"`
}

// yamlActivity represents the activities section in YAML.
type yamlActivity struct {
	Runs        []int `yaml:"runs"`
	TimeHorizon int   `yaml:"time_horizon"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile       string
	CoinSystem       *string
	DenominationsStr *string
	Seed             *int64
	Verify           *bool
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	applyEnvConfig(&cfg)

	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config mirroring the fixed demo scenarios.
// Denominations stays empty so the coin system resolves through the registry.
func defaultConfig() Config {
	return Config{
		CoinSystem:    "usd",
		ChangeAmounts: []int{1, 4, 5, 10, 25, 26, 30, 37, 49, 50, 67, 99, 100, 123, 250},
		KnapsackRuns:  []int{10, 100, 1000},
		BaseCapacity:  defaultCapacity,
		MaxWeight:     defaultMaxWeight,
		MaxValue:      defaultMaxValue,
		ActivityRuns:  []int{20, 50},
		TimeHorizon:   defaultTimeHorizon,
		Seed:          defaultSeed,
		Verify:        true,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.CoinSystem != "" {
		cfg.CoinSystem = yamlCfg.CoinSystem
	}

	if len(yamlCfg.Denominations) > 0 {
		cfg.Denominations = yamlCfg.Denominations
	}

	if len(yamlCfg.ChangeAmounts) > 0 {
		cfg.ChangeAmounts = yamlCfg.ChangeAmounts
	}

	if len(yamlCfg.Knapsack.Runs) > 0 {
		cfg.KnapsackRuns = yamlCfg.Knapsack.Runs
	}

	if yamlCfg.Knapsack.BaseCapacity > 0 {
		cfg.BaseCapacity = yamlCfg.Knapsack.BaseCapacity
	}

	if yamlCfg.Knapsack.MaxWeight > 0 {
		cfg.MaxWeight = yamlCfg.Knapsack.MaxWeight
	}

	if yamlCfg.Knapsack.MaxValue > 0 {
		cfg.MaxValue = yamlCfg.Knapsack.MaxValue
	}

	if len(yamlCfg.Activities.Runs) > 0 {
		cfg.ActivityRuns = yamlCfg.Activities.Runs
	}

	if yamlCfg.Activities.TimeHorizon > 0 {
		cfg.TimeHorizon = yamlCfg.Activities.TimeHorizon
	}

	if yamlCfg.Seed != nil {
		cfg.Seed = *yamlCfg.Seed
	}

	if yamlCfg.Verify != nil {
		cfg.Verify = *yamlCfg.Verify
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if system := strings.TrimSpace(os.Getenv("COIN_SYSTEM")); system != "" {
		cfg.CoinSystem = system
	}

	if rawDenoms := strings.TrimSpace(os.Getenv("DENOMINATIONS")); rawDenoms != "" {
		denominations, err := ParseIntList(rawDenoms)
		if err == nil && len(denominations) > 0 {
			cfg.Denominations = denominations
		}
	}

	if seed := strings.TrimSpace(os.Getenv("DEMO_SEED")); seed != "" {
		if value, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Seed = value
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.CoinSystem != nil && *overrides.CoinSystem != "" {
		cfg.CoinSystem = *overrides.CoinSystem
	}

	if overrides.DenominationsStr != nil && *overrides.DenominationsStr != "" {
		denominations, err := ParseIntList(*overrides.DenominationsStr)
		if err != nil {
			return fmt.Errorf("parse denominations: %w", err)
		}
		cfg.Denominations = denominations
	}

	if overrides.Seed != nil {
		cfg.Seed = *overrides.Seed
	}

	if overrides.Verify != nil {
		cfg.Verify = *overrides.Verify
	}

	return nil
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.CoinSystem == "" && len(cfg.Denominations) == 0 {
		return fmt.Errorf("either a coin system or explicit denominations are required")
	}
	if cfg.BaseCapacity < 0 {
		return fmt.Errorf("base capacity must be >= 0")
	}
	if cfg.MaxWeight <= 0 || cfg.MaxValue <= 0 {
		return fmt.Errorf("max weight and max value must be positive")
	}
	if cfg.TimeHorizon < 2 {
		return fmt.Errorf("time horizon must be at least 2")
	}
	for _, amount := range cfg.ChangeAmounts {
		if amount < 0 {
			return fmt.Errorf("change amounts must be non-negative, got %d", amount)
		}
	}
	for _, n := range cfg.KnapsackRuns {
		if n <= 0 {
			return fmt.Errorf("knapsack run sizes must be positive, got %d", n)
		}
	}
	for _, n := range cfg.ActivityRuns {
		if n <= 0 {
			return fmt.Errorf("activity run sizes must be positive, got %d", n)
		}
	}
	return nil
}

// ParseIntList parses a comma-separated string of positive integers.
func ParseIntList(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", part)
		}
		if value <= 0 {
			return nil, fmt.Errorf("value must be positive, got %d", value)
		}
		values = append(values, value)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no values provided")
	}
	return values, nil
}
