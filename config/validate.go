package config

import (
	"fmt"
	"strings"

	"github.com/lehongvo/errc1155-revenue/ledger"
)

// validLogLevels lists the accepted log level strings.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidateConfig checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func ValidateConfig(cfg Config) error {
	if cfg.DataDir == "" {
		return ErrEmptyDataDir
	}

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return ErrInvalidLogLevel
	}

	if cfg.MintAuthority != "" {
		if _, err := ledger.ParseAddress(cfg.MintAuthority); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidMintAuthority, err)
		}
	}

	for _, op := range cfg.Operators {
		if _, err := ledger.ParseAddress(op); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidOperator, op)
		}
	}

	return nil
}
