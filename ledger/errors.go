package ledger

import "errors"

var (
	// ErrUnauthorized indicates the caller lacks the role or ownership the
	// operation requires.
	ErrUnauthorized = errors.New("ledger: caller not authorized")

	// ErrTokenNotFound indicates the token type id has no registry entry.
	ErrTokenNotFound = errors.New("ledger: token type not found")

	// ErrLotNotFound indicates the lot id has no stored lot.
	ErrLotNotFound = errors.New("ledger: lot not found")

	// ErrEpochNotFound indicates the epoch index is out of range.
	ErrEpochNotFound = errors.New("ledger: epoch not found")

	// ErrInsufficientBalance indicates a lot's balance is below the requested
	// amount, or zero on withdrawal.
	ErrInsufficientBalance = errors.New("ledger: insufficient lot balance")

	// ErrInvalidAmount indicates a zero amount, or a payment too small to
	// back the requested deposit.
	ErrInvalidAmount = errors.New("ledger: invalid amount")

	// ErrZeroSupply indicates a deposit against a token type with no supply.
	ErrZeroSupply = errors.New("ledger: token has zero total supply")

	// ErrNoNewRevenue indicates a withdrawal found no unresolved epoch with a
	// non-zero share since the lot's cursor.
	ErrNoNewRevenue = errors.New("ledger: no new revenue to withdraw")

	// ErrInvalidRecipient indicates a transfer target equal to the current
	// owner, or a merge of a lot into itself.
	ErrInvalidRecipient = errors.New("ledger: invalid recipient")

	// ErrTokenMismatch indicates a merge of lots from different token types.
	ErrTokenMismatch = errors.New("ledger: lots reference different token types")

	// ErrInvalidAddress indicates a malformed address string or the zero
	// address where a real account is required.
	ErrInvalidAddress = errors.New("ledger: invalid address")

	// ErrInsufficientValue indicates a value split larger than the unit holds.
	ErrInsufficientValue = errors.New("ledger: value holds less than requested")

	// ErrCorruptSnapshot indicates a snapshot that fails restore validation.
	ErrCorruptSnapshot = errors.New("ledger: corrupt snapshot")
)
