package ledger

import (
	"fmt"

	"github.com/lehongvo/errc1155-revenue/safemath"
)

// Deposit appends a revenue epoch for token, funding it from payment. The
// deposited amount is split off payment and held in the token's pool until
// holders withdraw their shares. The epoch snapshots the total supply at
// this moment, so later mints of other types or transfers never dilute it.
// Returns the new epoch's index.
func (l *Ledger) Deposit(caller Address, token TokenID, payment *Value, amount uint64) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.auth.IsOperator(caller) {
		return 0, fmt.Errorf("%w: %s is not an operator", ErrUnauthorized, caller)
	}
	tok, ok := l.tokens[token]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrTokenNotFound, token)
	}
	if amount == 0 {
		return 0, fmt.Errorf("%w: deposit amount must be positive", ErrInvalidAmount)
	}
	if payment == nil || payment.Amount() < amount {
		var have uint64
		if payment != nil {
			have = payment.Amount()
		}
		return 0, fmt.Errorf("%w: payment holds %d, deposit needs %d", ErrInvalidAmount, have, amount)
	}
	if tok.supply == 0 {
		return 0, fmt.Errorf("%w: token %d", ErrZeroSupply, token)
	}

	pool, err := safemath.CheckedAdd(tok.pool, amount)
	if err != nil {
		return 0, fmt.Errorf("ledger: pool credit: %w", err)
	}
	cumulative, err := safemath.CheckedAdd(tok.deposited, amount)
	if err != nil {
		return 0, fmt.Errorf("ledger: cumulative deposits: %w", err)
	}

	epoch := &revenueEpoch{
		index:       uint64(len(tok.epochs)),
		amount:      amount,
		supply:      tok.supply,
		cumulative:  cumulative,
		depositedAt: l.now(),
		claimed:     make(map[Address]struct{}),
	}

	// All checks passed; absorb the payment slice into the pool and commit.
	if _, err := payment.Split(amount); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	tok.epochs = append(tok.epochs, epoch)
	tok.pool = pool
	tok.deposited = cumulative

	l.sink.DepositRecorded(DepositRecord{
		Token:          token,
		Epoch:          epoch.index,
		Amount:         amount,
		SupplySnapshot: epoch.supply,
		PoolBalance:    tok.pool,
		Operator:       caller,
		Timestamp:      epoch.depositedAt,
	})
	return epoch.index, nil
}
