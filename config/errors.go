package config

import "errors"

var (
	// ErrEmptyDataDir indicates the data directory path is empty.
	ErrEmptyDataDir = errors.New("config: data directory must not be empty")

	// ErrInvalidLogLevel indicates the log level is not recognized.
	ErrInvalidLogLevel = errors.New("config: invalid log level (must be \"debug\", \"info\", \"warn\", or \"error\")")

	// ErrInvalidMintAuthority indicates the mint authority address is malformed.
	ErrInvalidMintAuthority = errors.New("config: invalid mint authority address")

	// ErrInvalidOperator indicates an operator address is malformed.
	ErrInvalidOperator = errors.New("config: invalid operator address")

	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: configuration file not found")
)
