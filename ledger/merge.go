package ledger

import (
	"fmt"

	"github.com/lehongvo/errc1155-revenue/safemath"
)

// Merge absorbs lot src into lot dst and discards src. Both lots must
// reference the same token type and belong to the caller.
//
// Cumulative-claimed counters are summed, matching Transfer's additive
// carry-over, and the cursor takes the further-advanced of the two so no
// epoch either side already resolved is resolved again. Claimed-epoch
// histories are unioned.
func (l *Ledger) Merge(caller Address, dst, src LotID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if dst == src {
		return fmt.Errorf("%w: cannot merge a lot into itself", ErrInvalidRecipient)
	}
	into, ok := l.lots[dst]
	if !ok {
		return fmt.Errorf("%w: %s", ErrLotNotFound, dst)
	}
	from, ok := l.lots[src]
	if !ok {
		return fmt.Errorf("%w: %s", ErrLotNotFound, src)
	}
	if into.owner != caller || from.owner != caller {
		return fmt.Errorf("%w: both lots must be owned by %s", ErrUnauthorized, caller)
	}
	if into.token != from.token {
		return fmt.Errorf("%w: %d vs %d", ErrTokenMismatch, into.token, from.token)
	}

	balance, err := safemath.CheckedAdd(into.balance, from.balance)
	if err != nil {
		return fmt.Errorf("ledger: merged balance: %w", err)
	}
	claimed, err := safemath.CheckedAdd(into.claimed, from.claimed)
	if err != nil {
		return fmt.Errorf("ledger: merged claimed counter: %w", err)
	}

	into.balance = balance
	into.claimed = claimed
	into.history = unionSorted(into.history, from.history)
	if from.cursor > into.cursor {
		into.cursor = from.cursor
	}
	delete(l.lots, src)
	// Same owner and token type: the holder index aggregate is unchanged.

	l.sink.MergeRecorded(MergeRecord{
		Token:             into.token,
		Into:              dst,
		From:              src,
		Owner:             caller,
		Balance:           into.balance,
		CumulativeClaimed: into.claimed,
		Timestamp:         l.now(),
	})
	return nil
}

// unionSorted merges two ascending index lists, dropping duplicates.
func unionSorted(a, b []uint64) []uint64 {
	out := make([]uint64, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
