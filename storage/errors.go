package storage

import "errors"

var (
	// ErrNoSnapshot indicates the database holds no saved ledger state.
	ErrNoSnapshot = errors.New("storage: no snapshot stored")

	// ErrCorruptRecord indicates a stored record failed to decode.
	ErrCorruptRecord = errors.New("storage: corrupt record")
)
