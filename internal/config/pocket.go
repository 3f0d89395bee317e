package config

import (
	"fmt"
	"time"
)

type PocketConfig struct {
	// LCDEndpoint is the base URL of the Pocket Network LCD REST API,
	// including the protocol prefix.
	LCDEndpoint   string        `mapstructure:"lcd-endpoint"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
	// Denom is the native denomination; rewards in any other denomination are
	// dropped with a warning.
	Denom string `mapstructure:"denom"`
}

func (cfg *PocketConfig) Validate() error {
	if cfg.LCDEndpoint == "" {
		return fmt.Errorf("pocket LCD endpoint is required")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("pocket LCD timeout is required")
	}
	if cfg.MaxRetryTimes == 0 {
		return fmt.Errorf("pocket LCD max-retry-times is required")
	}
	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("pocket LCD retry-interval is required")
	}
	if cfg.Denom == "" {
		return fmt.Errorf("pocket native denom is required")
	}

	return nil
}
