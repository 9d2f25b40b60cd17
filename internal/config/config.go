// Package config loads keycrawl settings from a config file, the
// environment (KEYCRAWL_*) and command-line flags, in increasing priority.
package config

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/keycrawler/bfs"
	"github.com/katalvlaran/keycrawler/core"
	"github.com/katalvlaran/keycrawler/dfs"
)

// EnvPrefix prefixes environment overrides, e.g. KEYCRAWL_MAX_RESULTS.
const EnvPrefix = "KEYCRAWL"

// Setting keys, also used as flag names.
const (
	KeyStrategy   = "strategy"
	KeyOrder      = "order"
	KeyMaxDepth   = "max-depth"
	KeyMaxResults = "max-results"
	KeyFormat     = "format"
	KeyOutput     = "output"
	KeyLogLevel   = "log-level"
)

var (
	// ErrInvalidConfig is returned when a setting has an unsupported value.
	ErrInvalidConfig = errors.New("config: invalid setting")

	strategies = []string{"dfs", "bfs"}
	orders     = []string{"pre", "post"}
	formats    = []string{"json", "yaml", "yaml-node", "html"}
	outputs    = []string{"json", "yaml", "table"}
	levels     = []string{"debug", "info", "warn", "error"}
)

// Config holds the resolved settings of one run.
type Config struct {
	Strategy   string `mapstructure:"strategy"`
	Order      string `mapstructure:"order"`
	MaxDepth   int    `mapstructure:"max-depth"`
	MaxResults int    `mapstructure:"max-results"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	LogLevel   string `mapstructure:"log-level"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Strategy: "dfs",
		Order:    "pre",
		MaxDepth: 0,
		Format:   "json",
		Output:   "json",
		LogLevel: "warn",
	}
}

// New returns a viper instance primed with defaults and environment
// lookups. Callers bind their flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyStrategy, d.Strategy)
	v.SetDefault(KeyOrder, d.Order)
	v.SetDefault(KeyMaxDepth, d.MaxDepth)
	v.SetDefault(KeyMaxResults, d.MaxResults)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads file, when given, into v and returns the validated settings.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c *Config) normalize() {
	c.Strategy = strings.ToLower(strings.TrimSpace(c.Strategy))
	c.Order = strings.ToLower(strings.TrimSpace(c.Order))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

// Validate checks every setting against its allowed values.
func (c Config) Validate() error {
	checks := []struct {
		key, value string
		allowed    []string
	}{
		{KeyStrategy, c.Strategy, strategies},
		{KeyOrder, c.Order, orders},
		{KeyFormat, c.Format, formats},
		{KeyOutput, c.Output, outputs},
		{KeyLogLevel, c.LogLevel, levels},
	}
	for _, check := range checks {
		if !slices.Contains(check.allowed, check.value) {
			return fmt.Errorf("%w: %s=%q, want one of %v", ErrInvalidConfig, check.key, check.value, check.allowed)
		}
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: %s=%d is negative", ErrInvalidConfig, KeyMaxDepth, c.MaxDepth)
	}
	if c.MaxResults < 0 {
		return fmt.Errorf("%w: %s=%d is negative", ErrInvalidConfig, KeyMaxResults, c.MaxResults)
	}

	return nil
}

// NewStrategy builds the configured traversal strategy. Both strategies
// visit routes up to MaxDepth steps long and skip anything deeper; a
// MaxDepth of 0 means unlimited.
func (c Config) NewStrategy(ctx context.Context) (core.Strategy, error) {
	if c.Strategy == "bfs" {
		return bfs.New(bfs.WithContext(ctx), bfs.WithMaxDepth(c.MaxDepth))
	}
	opts := []dfs.Option{dfs.WithContext(ctx)}
	if c.Order == "post" {
		opts = append(opts, dfs.WithOrder(dfs.PostOrder))
	}
	if c.MaxDepth > 0 {
		opts = append(opts, dfs.WithPruneDepth(c.MaxDepth))
	}

	return dfs.New(opts...)
}
