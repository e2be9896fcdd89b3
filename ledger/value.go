package ledger

import (
	"fmt"

	"github.com/lehongvo/errc1155-revenue/safemath"
)

// Value is an in-memory stand-in for the host's transferable value asset.
// Deposits split the deposited amount off a payment Value into the token's
// pool; withdrawals produce a fresh Value holding the payout. Splitting and
// merging conserve the total amount.
type Value struct {
	amount uint64
}

// NewValue creates a value unit holding amount.
func NewValue(amount uint64) *Value {
	return &Value{amount: amount}
}

// Amount returns the units currently held.
func (v *Value) Amount() uint64 {
	return v.amount
}

// Split removes amount units from v and returns them as a new Value.
func (v *Value) Split(amount uint64) (*Value, error) {
	if amount > v.amount {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientValue, v.amount, amount)
	}
	v.amount -= amount
	return &Value{amount: amount}, nil
}

// Merge moves every unit of other into v, leaving other empty.
func (v *Value) Merge(other *Value) error {
	sum, err := safemath.CheckedAdd(v.amount, other.amount)
	if err != nil {
		return fmt.Errorf("ledger: merge value: %w", err)
	}
	v.amount = sum
	other.amount = 0
	return nil
}
