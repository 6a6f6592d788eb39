package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for all engine settings.
const envPrefix = "REACTIONIQ"

// newViper builds a pre-configured Viper instance: YAML file type,
// REACTIONIQ_ env prefix, automatic env binding, and a key replacer mapping
// "." → "_" so that nested keys like "balancer.tolerance" resolve to
// "REACTIONIQ_BALANCER_TOLERANCE".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Registering defaults makes every key visible to AutomaticEnv, so
	// env-only loading works without a config file.
	v.SetDefault("balancer.tolerance", DefaultBalancerTolerance)
	v.SetDefault("balancer.max_denominator", DefaultBalancerMaxDenominator)
	v.SetDefault("classifier.redox_threshold", DefaultRedoxThreshold)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.addr", DefaultMetricsAddr)
	v.SetDefault("metrics.path", DefaultMetricsPath)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.output", DefaultLogOutput)
	return v
}

// Load reads the YAML file at configPath, merges any REACTIONIQ_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from REACTIONIQ_* environment
// variables, with no config file required.
//
// Naming convention:
//
//	REACTIONIQ_<SECTION>_<FIELD>   e.g.  REACTIONIQ_LOG_LEVEL
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

// unmarshalAndFinalize unmarshals viper state into a Config, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// MustLoad wraps Load and panics on any error.  For use in main() where a
// config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
