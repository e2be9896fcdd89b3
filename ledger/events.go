package ledger

import "time"

// Sink receives a structured record for every state-changing ledger
// operation, after the operation has committed. Transport and serialization
// are the sink's concern; the ledger only hands over the record.
type Sink interface {
	MintRecorded(MintRecord)
	DepositRecorded(DepositRecord)
	WithdrawalRecorded(WithdrawalRecord)
	TransferRecorded(TransferRecord)
	MergeRecorded(MergeRecord)
}

// MintRecord reports a newly registered token type and its initial lot.
type MintRecord struct {
	Token         TokenID
	Lot           LotID
	Recipient     Address
	InitialSupply uint64
	Timestamp     time.Time
}

// DepositRecord reports one appended revenue epoch.
type DepositRecord struct {
	Token          TokenID
	Epoch          uint64
	Amount         uint64
	SupplySnapshot uint64
	PoolBalance    uint64 // pool after the deposit
	Operator       Address
	Timestamp      time.Time
}

// WithdrawalRecord reports one successful revenue withdrawal.
type WithdrawalRecord struct {
	Token             TokenID
	Lot               LotID
	Owner             Address
	Epochs            []uint64 // epoch indices paid out in this withdrawal
	Amount            uint64
	PoolBalance       uint64 // pool after the debit
	CumulativeClaimed uint64 // lot's claimed counter after the payout
	LotBalance        uint64
	Timestamp         time.Time
}

// TransferRecord reports a lot split to a new owner.
type TransferRecord struct {
	Token          TokenID
	FromLot        LotID
	ToLot          LotID
	From           Address
	To             Address
	Amount         uint64
	CarriedClaimed uint64 // claimed-revenue history carried to the new lot
	EpochCount     uint64 // epochs existing at transfer time
	Timestamp      time.Time
}

// MergeRecord reports one lot absorbing another.
type MergeRecord struct {
	Token             TokenID
	Into              LotID
	From              LotID
	Owner             Address
	Balance           uint64 // surviving lot's balance after the merge
	CumulativeClaimed uint64
	Timestamp         time.Time
}

// NopSink discards every record.
type NopSink struct{}

var _ Sink = NopSink{}

func (NopSink) MintRecorded(MintRecord)             {}
func (NopSink) DepositRecorded(DepositRecord)       {}
func (NopSink) WithdrawalRecorded(WithdrawalRecord) {}
func (NopSink) TransferRecorded(TransferRecord)     {}
func (NopSink) MergeRecorded(MergeRecord)           {}
