package ledger

import (
	"fmt"

	"github.com/lehongvo/errc1155-revenue/safemath"
)

// Withdraw resolves every unresolved revenue epoch for the caller's lot and
// pays out the aggregate share as a fresh Value.
//
// Claims are keyed by address within each epoch, not by lot: the first
// withdrawal by an address against an epoch wins that epoch's share for
// every lot the address holds; later withdrawals by the same address skip
// it. A lot whose balance has been fully transferred out cannot withdraw,
// even with unresolved epochs; the transferred balance carries the
// entitlement to its new owner.
//
// The call either commits in full (claim markers, cursor advance, pool
// debit, payout) or fails with no state change.
func (l *Ledger) Withdraw(caller Address, lotID LotID) (*Value, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lot, ok := l.lots[lotID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLotNotFound, lotID)
	}
	if lot.owner != caller {
		return nil, fmt.Errorf("%w: lot %s is not owned by %s", ErrUnauthorized, lotID, caller)
	}
	tok, ok := l.tokens[lot.token]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrTokenNotFound, lot.token)
	}
	if lot.balance == 0 {
		return nil, fmt.Errorf("%w: lot %s has zero balance", ErrInsufficientBalance, lotID)
	}

	current := uint64(len(tok.epochs))
	if current <= lot.cursor {
		return nil, ErrNoNewRevenue
	}

	var payout uint64
	var touched []uint64
	for i := lot.cursor; i < current; i++ {
		epoch := tok.epochs[i]
		if _, done := epoch.claimed[caller]; done {
			continue
		}
		share, _, err := safemath.ShareAndRemainder(epoch.amount, lot.balance, epoch.supply)
		if err != nil {
			return nil, fmt.Errorf("ledger: share of epoch %d: %w", i, err)
		}
		if share == 0 {
			continue
		}
		payout, err = safemath.CheckedAdd(payout, share)
		if err != nil {
			return nil, fmt.Errorf("ledger: payout total: %w", err)
		}
		touched = append(touched, i)
	}
	if payout == 0 {
		return nil, ErrNoNewRevenue
	}

	// Unreachable while the share math is sound; checked before every debit.
	if tok.pool < payout {
		return nil, fmt.Errorf("%w: pool holds %d, payout needs %d", ErrInvalidAmount, tok.pool, payout)
	}
	claimedTotal, err := safemath.CheckedAdd(lot.claimed, payout)
	if err != nil {
		return nil, fmt.Errorf("ledger: claimed counter: %w", err)
	}

	for _, i := range touched {
		tok.epochs[i].claimed[caller] = struct{}{}
	}
	lot.cursor = current
	lot.history = append(lot.history, touched...)
	lot.claimed = claimedTotal
	tok.pool -= payout

	l.sink.WithdrawalRecorded(WithdrawalRecord{
		Token:             lot.token,
		Lot:               lotID,
		Owner:             caller,
		Epochs:            append([]uint64(nil), touched...),
		Amount:            payout,
		PoolBalance:       tok.pool,
		CumulativeClaimed: lot.claimed,
		LotBalance:        lot.balance,
		Timestamp:         l.now(),
	})
	return &Value{amount: payout}, nil
}
