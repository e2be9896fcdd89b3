package ledger

import (
	"bytes"
	"fmt"
	"sort"
)

// Exists reports whether a token type is registered.
func (l *Ledger) Exists(token TokenID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.tokens[token]
	return ok
}

// TotalSupply returns the token's recorded total supply.
func (l *Ledger) TotalSupply(token TokenID) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tok, ok := l.tokens[token]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrTokenNotFound, token)
	}
	return tok.supply, nil
}

// TokenMetadata returns the token's immutable descriptive record.
func (l *Ledger) TokenMetadata(token TokenID) (Metadata, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tok, ok := l.tokens[token]
	if !ok {
		return Metadata{}, fmt.Errorf("%w: %d", ErrTokenNotFound, token)
	}
	return tok.meta, nil
}

// Token returns a read-only summary of the token type.
func (l *Ledger) Token(token TokenID) (TokenInfo, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tok, ok := l.tokens[token]
	if !ok {
		return TokenInfo{}, fmt.Errorf("%w: %d", ErrTokenNotFound, token)
	}
	return TokenInfo{
		ID:                 tok.id,
		Meta:               tok.meta,
		TotalSupply:        tok.supply,
		PoolBalance:        tok.pool,
		CumulativeDeposits: tok.deposited,
		EpochCount:         uint64(len(tok.epochs)),
		CreatedAt:          tok.createdAt,
	}, nil
}

// EpochCount returns the number of revenue epochs recorded for the token.
func (l *Ledger) EpochCount(token TokenID) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tok, ok := l.tokens[token]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrTokenNotFound, token)
	}
	return uint64(len(tok.epochs)), nil
}

// Epoch returns a read-only copy of one revenue epoch.
func (l *Ledger) Epoch(token TokenID, index uint64) (EpochInfo, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tok, ok := l.tokens[token]
	if !ok {
		return EpochInfo{}, fmt.Errorf("%w: %d", ErrTokenNotFound, token)
	}
	if index >= uint64(len(tok.epochs)) {
		return EpochInfo{}, fmt.Errorf("%w: token %d has %d epochs, requested %d",
			ErrEpochNotFound, token, len(tok.epochs), index)
	}
	epoch := tok.epochs[index]
	return EpochInfo{
		Index:              epoch.index,
		Amount:             epoch.amount,
		SupplySnapshot:     epoch.supply,
		CumulativeDeposits: epoch.cumulative,
		DepositedAt:        epoch.depositedAt,
		ClaimedBy:          sortedAddresses(epoch.claimed),
	}, nil
}

// PoolBalance returns the undistributed revenue held for the token.
func (l *Ledger) PoolBalance(token TokenID) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tok, ok := l.tokens[token]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrTokenNotFound, token)
	}
	return tok.pool, nil
}

// CumulativeDeposits returns the running total of all revenue ever deposited
// for the token, including amounts already withdrawn.
func (l *Ledger) CumulativeDeposits(token TokenID) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tok, ok := l.tokens[token]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrTokenNotFound, token)
	}
	return tok.deposited, nil
}

// Lot returns a read-only copy of one ownership lot.
func (l *Ledger) Lot(id LotID) (LotInfo, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	lot, ok := l.lots[id]
	if !ok {
		return LotInfo{}, fmt.Errorf("%w: %s", ErrLotNotFound, id)
	}
	return LotInfo{
		ID:                lot.id,
		Token:             lot.token,
		Owner:             lot.owner,
		Balance:           lot.balance,
		Cursor:            lot.cursor,
		CumulativeClaimed: lot.claimed,
		ClaimedEpochs:     append([]uint64(nil), lot.history...),
	}, nil
}

// LotsOf returns read-only copies of every lot owned by owner, ordered by
// lot id for determinism.
func (l *Ledger) LotsOf(owner Address) []LotInfo {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []LotInfo
	for _, lot := range l.lots {
		if lot.owner != owner {
			continue
		}
		out = append(out, LotInfo{
			ID:                lot.id,
			Token:             lot.token,
			Owner:             lot.owner,
			Balance:           lot.balance,
			Cursor:            lot.cursor,
			CumulativeClaimed: lot.claimed,
			ClaimedEpochs:     append([]uint64(nil), lot.history...),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].ID[:], out[j].ID[:]) < 0
	})
	return out
}

// sortedAddresses flattens a claim set into a deterministic slice.
func sortedAddresses(set map[Address]struct{}) []Address {
	out := make([]Address, 0, len(set))
	for addr := range set {
		out = append(out, addr)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i][:], out[j][:]) < 0
	})
	return out
}
