package ledger

import (
	"fmt"

	"github.com/lehongvo/errc1155-revenue/safemath"
)

// Transfer moves amount units out of the caller's lot into a new lot owned
// by recipient, returning the new lot's id.
//
// The new lot inherits a pro-rated slice of the source lot's claimed-revenue
// history: floor(claimed * amount / balance) of the cumulative-claimed
// counter moves with the balance, the claimed-epoch list is copied, and the
// cursor carries over. For every epoch the sender's address has already been
// paid from, the recipient's address is marked claimed too whenever the
// transferred balance would earn a non-zero share, so the moved balance can
// never claim those epochs a second time.
func (l *Ledger) Transfer(caller Address, lotID LotID, amount uint64, recipient Address) (LotID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lot, ok := l.lots[lotID]
	if !ok {
		return LotID{}, fmt.Errorf("%w: %s", ErrLotNotFound, lotID)
	}
	if lot.owner != caller {
		return LotID{}, fmt.Errorf("%w: lot %s is not owned by %s", ErrUnauthorized, lotID, caller)
	}
	tok, ok := l.tokens[lot.token]
	if !ok {
		return LotID{}, fmt.Errorf("%w: %d", ErrTokenNotFound, lot.token)
	}
	if amount == 0 {
		return LotID{}, fmt.Errorf("%w: transfer amount must be positive", ErrInvalidAmount)
	}
	if recipient.IsZero() {
		return LotID{}, fmt.Errorf("%w: zero recipient", ErrInvalidAddress)
	}
	if recipient == lot.owner {
		return LotID{}, fmt.Errorf("%w: transfer to current owner", ErrInvalidRecipient)
	}
	if lot.balance < amount {
		return LotID{}, fmt.Errorf("%w: balance %d, transfer %d", ErrInsufficientBalance, lot.balance, amount)
	}

	carried, _, err := safemath.ShareAndRemainder(lot.claimed, amount, lot.balance)
	if err != nil {
		return LotID{}, fmt.Errorf("ledger: carried claim: %w", err)
	}
	remainingClaimed, err := safemath.CheckedSub(lot.claimed, carried)
	if err != nil {
		return LotID{}, fmt.Errorf("ledger: claimed counter: %w", err)
	}
	remainingBalance, err := safemath.CheckedSub(lot.balance, amount)
	if err != nil {
		return LotID{}, fmt.Errorf("ledger: lot balance: %w", err)
	}

	// Epochs the sender's address already claimed and where the transferred
	// balance would still earn a share: the recipient inherits the claimed
	// marker for those.
	var propagate []uint64
	for _, i := range lot.history {
		epoch := tok.epochs[i]
		if _, done := epoch.claimed[lot.owner]; !done {
			continue
		}
		share, _, err := safemath.ShareAndRemainder(epoch.amount, amount, epoch.supply)
		if err != nil {
			return LotID{}, fmt.Errorf("ledger: share of epoch %d: %w", i, err)
		}
		if share > 0 {
			propagate = append(propagate, i)
		}
	}

	dest := &lotState{
		id:      l.newLotID(),
		token:   lot.token,
		owner:   recipient,
		balance: amount,
		cursor:  lot.cursor,
		claimed: carried,
		history: append([]uint64(nil), lot.history...),
	}

	l.lots[dest.id] = dest
	lot.balance = remainingBalance
	lot.claimed = remainingClaimed
	l.debit(caller, lot.token, amount)
	l.credit(recipient, lot.token, amount)
	for _, i := range propagate {
		tok.epochs[i].claimed[recipient] = struct{}{}
	}

	l.sink.TransferRecorded(TransferRecord{
		Token:          lot.token,
		FromLot:        lotID,
		ToLot:          dest.id,
		From:           caller,
		To:             recipient,
		Amount:         amount,
		CarriedClaimed: carried,
		EpochCount:     uint64(len(tok.epochs)),
		Timestamp:      l.now(),
	})
	return dest.id, nil
}
