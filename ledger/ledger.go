// Package ledger implements a multi-asset ledger with epoch-based
// proportional revenue distribution. Token types carry an append-only
// sequence of revenue epochs, each snapshotting the deposited amount and the
// total supply at deposit time; ownership lots walk that sequence to claim
// their share exactly once, across transfers and merges.
package ledger

import (
	"sync"
	"time"
)

// Ledger is the arena of token types, ownership lots and revenue epochs.
// Every mutation serializes behind one mutex and commits all-or-nothing:
// state is touched only after every precondition and arithmetic check has
// passed.
type Ledger struct {
	mu       sync.Mutex
	auth     AccessControl
	sink     Sink
	now      func() time.Time
	newLotID func() LotID

	nextToken TokenID
	tokens    map[TokenID]*tokenState
	lots      map[LotID]*lotState

	// holdings is the derived owner → token → aggregate balance index.
	// Lots are authoritative; this index only serves introspection.
	holdings map[Address]map[TokenID]uint64
}

// Option configures a Ledger at construction time.
type Option func(*Ledger)

// WithSink routes operation records to s instead of discarding them.
func WithSink(s Sink) Option {
	return func(l *Ledger) { l.sink = s }
}

// WithClock substitutes the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithLotIDs substitutes the lot id generator, for deterministic tests.
func WithLotIDs(gen func() LotID) Option {
	return func(l *Ledger) { l.newLotID = gen }
}

// NewLedger creates an empty ledger guarded by auth.
func NewLedger(auth AccessControl, opts ...Option) *Ledger {
	l := &Ledger{
		auth:      auth,
		sink:      NopSink{},
		now:       time.Now,
		newLotID:  NewLotID,
		nextToken: 1,
		tokens:    make(map[TokenID]*tokenState),
		lots:      make(map[LotID]*lotState),
		holdings:  make(map[Address]map[TokenID]uint64),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}
