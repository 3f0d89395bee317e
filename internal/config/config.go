package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Pocket   PocketConfig   `mapstructure:"pocket"`
	Treasury TreasuryConfig `mapstructure:"treasury"`
	Metrics  *MetricsConfig `mapstructure:"metrics"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Pocket.Validate(); err != nil {
		return err
	}

	if err := cfg.Treasury.Validate(); err != nil {
		return err
	}

	// Metrics are optional; a missing section disables the endpoint.
	if cfg.Metrics != nil {
		if err := cfg.Metrics.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// New loads and validates the config file at the given path.
func New(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgPath)
	v.SetEnvPrefix("pocketknife")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cfgPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", cfgPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
