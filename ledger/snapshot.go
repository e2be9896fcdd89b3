package ledger

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/lehongvo/errc1155-revenue/safemath"
)

// Snapshot is a deep copy of the ledger's durable state, suitable for
// persistence. The holder balance index is derived from lots and therefore
// omitted; RestoreLedger rebuilds it.
type Snapshot struct {
	NextToken TokenID         `cbor:"1,keyasint"`
	Tokens    []TokenSnapshot `cbor:"2,keyasint"`
	Lots      []LotSnapshot   `cbor:"3,keyasint"`
}

// TokenSnapshot is the durable form of one token type and its epochs.
type TokenSnapshot struct {
	ID                 TokenID         `cbor:"1,keyasint"`
	Meta               Metadata        `cbor:"2,keyasint"`
	TotalSupply        uint64          `cbor:"3,keyasint"`
	PoolBalance        uint64          `cbor:"4,keyasint"`
	CumulativeDeposits uint64          `cbor:"5,keyasint"`
	CreatedAt          time.Time       `cbor:"6,keyasint"`
	Epochs             []EpochSnapshot `cbor:"7,keyasint"`
}

// EpochSnapshot is the durable form of one revenue epoch.
type EpochSnapshot struct {
	Index              uint64    `cbor:"1,keyasint"`
	Amount             uint64    `cbor:"2,keyasint"`
	SupplySnapshot     uint64    `cbor:"3,keyasint"`
	CumulativeDeposits uint64    `cbor:"4,keyasint"`
	DepositedAt        time.Time `cbor:"5,keyasint"`
	Claimed            []Address `cbor:"6,keyasint"` // sorted
}

// LotSnapshot is the durable form of one ownership lot.
type LotSnapshot struct {
	ID                LotID    `cbor:"1,keyasint"`
	Token             TokenID  `cbor:"2,keyasint"`
	Owner             Address  `cbor:"3,keyasint"`
	Balance           uint64   `cbor:"4,keyasint"`
	Cursor            uint64   `cbor:"5,keyasint"`
	CumulativeClaimed uint64   `cbor:"6,keyasint"`
	ClaimedEpochs     []uint64 `cbor:"7,keyasint"`
}

// Snapshot exports the full ledger state, deterministically ordered.
func (l *Ledger) Snapshot() *Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := &Snapshot{NextToken: l.nextToken}

	for _, tok := range l.tokens {
		ts := TokenSnapshot{
			ID:                 tok.id,
			Meta:               tok.meta,
			TotalSupply:        tok.supply,
			PoolBalance:        tok.pool,
			CumulativeDeposits: tok.deposited,
			CreatedAt:          tok.createdAt,
		}
		for _, epoch := range tok.epochs {
			ts.Epochs = append(ts.Epochs, EpochSnapshot{
				Index:              epoch.index,
				Amount:             epoch.amount,
				SupplySnapshot:     epoch.supply,
				CumulativeDeposits: epoch.cumulative,
				DepositedAt:        epoch.depositedAt,
				Claimed:            sortedAddresses(epoch.claimed),
			})
		}
		snap.Tokens = append(snap.Tokens, ts)
	}
	sort.Slice(snap.Tokens, func(i, j int) bool {
		return snap.Tokens[i].ID < snap.Tokens[j].ID
	})

	for _, lot := range l.lots {
		snap.Lots = append(snap.Lots, LotSnapshot{
			ID:                lot.id,
			Token:             lot.token,
			Owner:             lot.owner,
			Balance:           lot.balance,
			Cursor:            lot.cursor,
			CumulativeClaimed: lot.claimed,
			ClaimedEpochs:     append([]uint64(nil), lot.history...),
		})
	}
	sort.Slice(snap.Lots, func(i, j int) bool {
		return bytes.Compare(snap.Lots[i].ID[:], snap.Lots[j].ID[:]) < 0
	})

	return snap
}

// RestoreLedger rebuilds a ledger from a snapshot, revalidating referential
// integrity and the conservation law (per token, lot balances must sum to
// the recorded total supply) before accepting it.
func RestoreLedger(snap *Snapshot, auth AccessControl, opts ...Option) (*Ledger, error) {
	l := NewLedger(auth, opts...)
	if snap == nil {
		return l, nil
	}
	if snap.NextToken > 0 {
		l.nextToken = snap.NextToken
	}

	for _, ts := range snap.Tokens {
		if _, dup := l.tokens[ts.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate token %d", ErrCorruptSnapshot, ts.ID)
		}
		tok := &tokenState{
			id:        ts.ID,
			meta:      ts.Meta,
			supply:    ts.TotalSupply,
			pool:      ts.PoolBalance,
			deposited: ts.CumulativeDeposits,
			createdAt: ts.CreatedAt,
		}
		for i, es := range ts.Epochs {
			if es.Index != uint64(i) {
				return nil, fmt.Errorf("%w: token %d epoch %d stored at position %d",
					ErrCorruptSnapshot, ts.ID, es.Index, i)
			}
			epoch := &revenueEpoch{
				index:       es.Index,
				amount:      es.Amount,
				supply:      es.SupplySnapshot,
				cumulative:  es.CumulativeDeposits,
				depositedAt: es.DepositedAt,
				claimed:     make(map[Address]struct{}, len(es.Claimed)),
			}
			for _, addr := range es.Claimed {
				epoch.claimed[addr] = struct{}{}
			}
			tok.epochs = append(tok.epochs, epoch)
		}
		l.tokens[ts.ID] = tok
	}

	totals := make(map[TokenID]uint64, len(l.tokens))
	for _, ls := range snap.Lots {
		if _, dup := l.lots[ls.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate lot %s", ErrCorruptSnapshot, ls.ID)
		}
		tok, ok := l.tokens[ls.Token]
		if !ok {
			return nil, fmt.Errorf("%w: lot %s references unknown token %d",
				ErrCorruptSnapshot, ls.ID, ls.Token)
		}
		if ls.Cursor > uint64(len(tok.epochs)) {
			return nil, fmt.Errorf("%w: lot %s cursor %d beyond %d epochs",
				ErrCorruptSnapshot, ls.ID, ls.Cursor, len(tok.epochs))
		}
		// Claim histories must reference existing epochs and stay strictly
		// ascending; Transfer indexes epochs by these entries and Merge
		// unions them assuming sorted order.
		for i, idx := range ls.ClaimedEpochs {
			if idx >= uint64(len(tok.epochs)) {
				return nil, fmt.Errorf("%w: lot %s claims unknown epoch %d of token %d",
					ErrCorruptSnapshot, ls.ID, idx, ls.Token)
			}
			if i > 0 && idx <= ls.ClaimedEpochs[i-1] {
				return nil, fmt.Errorf("%w: lot %s claim history out of order at epoch %d",
					ErrCorruptSnapshot, ls.ID, idx)
			}
		}
		lot := &lotState{
			id:      ls.ID,
			token:   ls.Token,
			owner:   ls.Owner,
			balance: ls.Balance,
			cursor:  ls.Cursor,
			claimed: ls.CumulativeClaimed,
			history: append([]uint64(nil), ls.ClaimedEpochs...),
		}
		l.lots[ls.ID] = lot
		l.credit(ls.Owner, ls.Token, ls.Balance)

		sum, err := safemath.CheckedAdd(totals[ls.Token], ls.Balance)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d balances overflow", ErrCorruptSnapshot, ls.Token)
		}
		totals[ls.Token] = sum
	}

	for id, tok := range l.tokens {
		if totals[id] != tok.supply {
			return nil, fmt.Errorf("%w: token %d lot balances sum to %d, supply is %d",
				ErrCorruptSnapshot, id, totals[id], tok.supply)
		}
	}

	return l, nil
}
