package storage

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"go.etcd.io/bbolt"

	"github.com/lehongvo/errc1155-revenue/ledger"
)

var (
	bucketMeta   = []byte("meta")
	bucketTokens = []byte("tokens")
	bucketLots   = []byte("lots")

	keyNextToken = []byte("next_token")
)

// cbor encoding mode: RFC3339 timestamps so epoch times survive round-trips
// with full precision.
var encMode = func() cbor.EncMode {
	em, err := cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// BoltStore persists ledger snapshots in a bbolt database. Token records
// (with their epoch sequences) and lot records are stored individually, CBOR
// encoded; Save replaces the previous state wholesale so the database always
// holds exactly one consistent snapshot.
type BoltStore struct {
	db *bbolt.DB
}

var _ Store = (*BoltStore)(nil)

// OpenBoltStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("storage: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("storage: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketMeta, bucketTokens, bucketLots} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: create buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// Save replaces the stored ledger state with snap, in one bolt transaction.
func (s *BoltStore) Save(snap *ledger.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("storage: nil snapshot")
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketMeta, bucketTokens, bucketLots} {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("clear bucket %q: %w", name, err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("recreate bucket %q: %w", name, err)
			}
		}

		meta := tx.Bucket(bucketMeta)
		if err := meta.Put(keyNextToken, tokenKey(uint64(snap.NextToken))); err != nil {
			return fmt.Errorf("put next token: %w", err)
		}

		tokens := tx.Bucket(bucketTokens)
		for i := range snap.Tokens {
			data, err := encMode.Marshal(&snap.Tokens[i])
			if err != nil {
				return fmt.Errorf("encode token %d: %w", snap.Tokens[i].ID, err)
			}
			if err := tokens.Put(tokenKey(uint64(snap.Tokens[i].ID)), data); err != nil {
				return fmt.Errorf("put token %d: %w", snap.Tokens[i].ID, err)
			}
		}

		lots := tx.Bucket(bucketLots)
		for i := range snap.Lots {
			data, err := encMode.Marshal(&snap.Lots[i])
			if err != nil {
				return fmt.Errorf("encode lot %s: %w", snap.Lots[i].ID, err)
			}
			if err := lots.Put(snap.Lots[i].ID[:], data); err != nil {
				return fmt.Errorf("put lot %s: %w", snap.Lots[i].ID, err)
			}
		}
		return nil
	})
}

// Load reads the stored ledger state. Tokens come back ordered by id and
// lots by lot id, matching bolt's key order.
func (s *BoltStore) Load() (*ledger.Snapshot, error) {
	snap := &ledger.Snapshot{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		meta := tx.Bucket(bucketMeta)
		next := meta.Get(keyNextToken)
		if next == nil {
			return ErrNoSnapshot
		}
		if len(next) != 8 {
			return fmt.Errorf("%w: next token key has %d bytes", ErrCorruptRecord, len(next))
		}
		snap.NextToken = ledger.TokenID(binary.BigEndian.Uint64(next))

		err := tx.Bucket(bucketTokens).ForEach(func(k, v []byte) error {
			var ts ledger.TokenSnapshot
			if err := cbor.Unmarshal(v, &ts); err != nil {
				return fmt.Errorf("%w: token %x: %v", ErrCorruptRecord, k, err)
			}
			snap.Tokens = append(snap.Tokens, ts)
			return nil
		})
		if err != nil {
			return err
		}

		return tx.Bucket(bucketLots).ForEach(func(k, v []byte) error {
			var ls ledger.LotSnapshot
			if err := cbor.Unmarshal(v, &ls); err != nil {
				return fmt.Errorf("%w: lot %x: %v", ErrCorruptRecord, k, err)
			}
			snap.Lots = append(snap.Lots, ls)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// tokenKey encodes an id as an 8-byte big-endian key for sorted storage.
func tokenKey(id uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, id)
	return k
}
