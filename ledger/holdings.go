package ledger

// credit adds amount to owner's aggregate balance for token.
// Callers hold l.mu.
func (l *Ledger) credit(owner Address, token TokenID, amount uint64) {
	byToken := l.holdings[owner]
	if byToken == nil {
		byToken = make(map[TokenID]uint64)
		l.holdings[owner] = byToken
	}
	byToken[token] += amount
}

// debit removes amount from owner's aggregate balance for token, dropping
// empty entries. Callers hold l.mu and have already validated against the
// authoritative lot balance, so the index cannot go negative.
func (l *Ledger) debit(owner Address, token TokenID, amount uint64) {
	byToken := l.holdings[owner]
	if byToken == nil {
		return
	}
	byToken[token] -= amount
	if byToken[token] == 0 {
		delete(byToken, token)
	}
	if len(byToken) == 0 {
		delete(l.holdings, owner)
	}
}

// BalanceOf reports owner's aggregate balance across all lots of token.
func (l *Ledger) BalanceOf(owner Address, token TokenID) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holdings[owner][token]
}

// HoldingsOf returns owner's aggregate balance per token type.
func (l *Ledger) HoldingsOf(owner Address) map[TokenID]uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[TokenID]uint64, len(l.holdings[owner]))
	for token, balance := range l.holdings[owner] {
		out[token] = balance
	}
	return out
}
