package ledger

import "fmt"

// Mint registers a new token type and issues its entire initial supply to
// recipient as one lot. The caller must be the mint authority. Metadata is
// immutable after this point, and the supply counter never changes: this
// design has no burn or follow-up mint.
func (l *Ledger) Mint(caller Address, meta Metadata, initialSupply uint64, recipient Address) (TokenID, LotID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.auth.IsMintAuthority(caller) {
		return 0, LotID{}, fmt.Errorf("%w: %s is not the mint authority", ErrUnauthorized, caller)
	}
	if initialSupply == 0 {
		return 0, LotID{}, fmt.Errorf("%w: initial supply must be positive", ErrInvalidAmount)
	}
	if recipient.IsZero() {
		return 0, LotID{}, fmt.Errorf("%w: zero recipient", ErrInvalidAddress)
	}

	token := &tokenState{
		id:        l.nextToken,
		meta:      meta,
		supply:    initialSupply,
		createdAt: l.now(),
	}
	lot := &lotState{
		id:      l.newLotID(),
		token:   token.id,
		owner:   recipient,
		balance: initialSupply,
	}

	l.nextToken++
	l.tokens[token.id] = token
	l.lots[lot.id] = lot
	l.credit(recipient, token.id, initialSupply)

	l.sink.MintRecorded(MintRecord{
		Token:         token.id,
		Lot:           lot.id,
		Recipient:     recipient,
		InitialSupply: initialSupply,
		Timestamp:     token.createdAt,
	})
	return token.id, lot.id, nil
}
