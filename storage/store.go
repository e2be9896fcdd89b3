// Package storage persists ledger snapshots. The ledger itself is an
// in-memory engine; hosts that need durability export a Snapshot after each
// batch of operations and load it back on startup.
package storage

import "github.com/lehongvo/errc1155-revenue/ledger"

// Store saves and recovers ledger snapshots.
type Store interface {
	// Save replaces the stored state with snap.
	Save(snap *ledger.Snapshot) error

	// Load returns the stored state, or ErrNoSnapshot if none was saved.
	Load() (*ledger.Snapshot, error)

	// Close releases the underlying resources.
	Close() error
}
