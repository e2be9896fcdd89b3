package ledger

import (
	"time"

	"github.com/google/uuid"
)

// TokenID identifies one mintable asset class. Ids are dense and start at 1;
// the zero value is never a valid token.
type TokenID uint64

// LotID uniquely identifies an ownership lot.
type LotID uuid.UUID

// NewLotID returns a fresh random lot id.
func NewLotID() LotID {
	return LotID(uuid.New())
}

// String renders the lot id in canonical UUID form.
func (id LotID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether the id is the all-zero placeholder.
func (id LotID) IsZero() bool {
	return id == LotID{}
}

// Metadata is the immutable descriptive record of a token type.
type Metadata struct {
	Name        string
	Description string
	URI         string
}

// tokenState is the registry entry for one token type, owning its append-only
// epoch sequence and its revenue pool.
type tokenState struct {
	id        TokenID
	meta      Metadata
	supply    uint64
	epochs    []*revenueEpoch
	pool      uint64 // deposited value not yet withdrawn
	deposited uint64 // running total of all deposits
	createdAt time.Time
}

// revenueEpoch snapshots one deposit event. Immutable after creation except
// for the address-keyed claim set.
type revenueEpoch struct {
	index       uint64
	amount      uint64
	supply      uint64 // total supply at deposit time, fixed forever
	cumulative  uint64 // running deposit total including this epoch
	depositedAt time.Time
	claimed     map[Address]struct{}
}

// lotState is one owner's claim to a balance of one token type, plus its
// revenue-claim cursor. Epochs with index < cursor are resolved for this lot.
type lotState struct {
	id      LotID
	token   TokenID
	owner   Address
	balance uint64
	cursor  uint64
	claimed uint64   // cumulative revenue already paid out to this lot lineage
	history []uint64 // epoch indices this lineage has claimed, ascending
}

// TokenInfo is a read-only view of a token type.
type TokenInfo struct {
	ID                 TokenID
	Meta               Metadata
	TotalSupply        uint64
	PoolBalance        uint64
	CumulativeDeposits uint64
	EpochCount         uint64
	CreatedAt          time.Time
}

// EpochInfo is a read-only view of one revenue epoch.
type EpochInfo struct {
	Index              uint64
	Amount             uint64
	SupplySnapshot     uint64
	CumulativeDeposits uint64
	DepositedAt        time.Time
	ClaimedBy          []Address // sorted
}

// LotInfo is a read-only view of one ownership lot.
type LotInfo struct {
	ID                LotID
	Token             TokenID
	Owner             Address
	Balance           uint64
	Cursor            uint64
	CumulativeClaimed uint64
	ClaimedEpochs     []uint64
}
