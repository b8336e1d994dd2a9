package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Package-level tracking of the last successful load, so commands can
// reach the active configuration without threading it through cobra.
var (
	configFileUsed string
	currentConfig  *Config
)

// GetCurrentConfig returns the configuration from the last successful
// LoadConfig call, or nil before any load.
func GetCurrentConfig() *Config {
	return currentConfig
}

// GetConfigFileUsed returns the path of the config file used by the
// last LoadConfig call, or "" when none was found.
func GetConfigFileUsed() string {
	return configFileUsed
}

// findConfigFile picks the config file to use.
// Priority: explicit path > trendmill.yaml > trendmill.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"trendmill.yaml", "trendmill.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// LoadConfig loads configuration from file, environment variables, and
// flags. Precedence (highest to lowest): flags > env vars > config file
// > defaults.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"data_file":     "",
		"format":        "",
		"min_purchases": DefaultMinPurchases,
		"top_limit":     DefaultTopLimit,
		"output":        DefaultOutput,
		"verbose":       false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables: TRENDMILL_DATA_FILE -> data_file
	if err := k.Load(env.Provider("TRENDMILL_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "TRENDMILL_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only those explicitly set: --data-file -> data_file
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	currentConfig = &cfg
	return &cfg, nil
}
