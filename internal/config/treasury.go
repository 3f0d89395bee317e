package config

import (
	"errors"
	"time"
)

type TreasuryConfig struct {
	// MaxWorkers bounds the number of concurrent per-address fetches.
	MaxWorkers int `mapstructure:"max-workers"`
	// QueryTimeout is the deadline applied to each external sub-query.
	QueryTimeout time.Duration `mapstructure:"query-timeout"`
}

func (cfg *TreasuryConfig) Validate() error {
	if cfg.MaxWorkers <= 0 {
		return errors.New("treasury max-workers must be positive")
	}

	if cfg.QueryTimeout <= 0 {
		return errors.New("treasury query-timeout must be positive")
	}

	return nil
}
