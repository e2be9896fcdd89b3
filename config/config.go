// Package config holds the host-side configuration for the revenue ledger:
// where the state database lives, how to log, and which addresses hold the
// mint-authority and operator roles.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lehongvo/errc1155-revenue/ledger"
)

// Config is the full configuration, serialized as TOML.
type Config struct {
	// DataDir is the base directory for persistent state.
	DataDir string `toml:"data_dir"`

	// LedgerFile is the bolt database file name inside DataDir.
	LedgerFile string `toml:"ledger_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// LogFile is an optional log destination; empty means stderr.
	LogFile string `toml:"log_file"`

	// MintAuthority is the hex address allowed to mint token types.
	MintAuthority string `toml:"mint_authority"`

	// Operators are the hex addresses allowed to deposit revenue.
	Operators []string `toml:"operators"`
}

// DefaultConfig returns the defaults: state under ~/.errc1155, info logging,
// no roles granted.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DataDir:    filepath.Join(home, ".errc1155"),
		LedgerFile: "ledger.db",
		LogLevel:   "info",
	}
}

// LedgerPath returns the full path of the bolt database file.
func (c Config) LedgerPath() string {
	return filepath.Join(c.DataDir, c.LedgerFile)
}

// AccessControl builds the static role table the ledger consumes, parsing
// the configured addresses.
func (c Config) AccessControl() (*ledger.StaticAccessControl, error) {
	var authority ledger.Address
	if c.MintAuthority != "" {
		var err error
		authority, err = ledger.ParseAddress(c.MintAuthority)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMintAuthority, err)
		}
	}
	operators := make([]ledger.Address, 0, len(c.Operators))
	for _, s := range c.Operators {
		addr, err := ledger.ParseAddress(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOperator, err)
		}
		operators = append(operators, addr)
	}
	return ledger.NewStaticAccessControl(authority, operators...), nil
}

// LoadConfig reads a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes the configuration as TOML, creating the parent
// directory if needed.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}
