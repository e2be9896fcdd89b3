package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Basic withdrawal flow
// ---------------------------------------------------------------------------

// Sole holder of the full supply collects the whole deposit.
func TestWithdrawFullSupply(t *testing.T) {
	l, sink := newTestLedger(t)
	token, lot := mintToken(t, l, 100, alice)
	deposit(t, l, token, 1000)

	payout, err := l.Withdraw(alice, lot)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), payout.Amount())

	pool, err := l.PoolBalance(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), pool)

	info, err := l.Lot(lot)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), info.Cursor)
	assert.Equal(t, uint64(1000), info.CumulativeClaimed)
	assert.Equal(t, []uint64{0}, info.ClaimedEpochs)

	require.Len(t, sink.withdrawals, 1)
	record := sink.withdrawals[0]
	assert.Equal(t, []uint64{0}, record.Epochs)
	assert.Equal(t, uint64(1000), record.Amount)
	assert.Equal(t, uint64(0), record.PoolBalance)
	assert.Equal(t, uint64(1000), record.CumulativeClaimed)
	assert.Equal(t, uint64(100), record.LotBalance)
}

// A second withdrawal with no new deposit fails with no state change.
func TestWithdrawTwiceNoNewRevenue(t *testing.T) {
	l, _ := newTestLedger(t)
	token, lot := mintToken(t, l, 100, alice)
	deposit(t, l, token, 1000)

	_, err := l.Withdraw(alice, lot)
	require.NoError(t, err)

	_, err = l.Withdraw(alice, lot)
	assert.ErrorIs(t, err, ErrNoNewRevenue)

	info, err := l.Lot(lot)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), info.CumulativeClaimed)
}

func TestWithdrawNoEpochs(t *testing.T) {
	l, _ := newTestLedger(t)
	_, lot := mintToken(t, l, 100, alice)

	_, err := l.Withdraw(alice, lot)
	assert.ErrorIs(t, err, ErrNoNewRevenue)
}

func TestWithdrawRejections(t *testing.T) {
	l, _ := newTestLedger(t)
	token, lot := mintToken(t, l, 100, alice)
	deposit(t, l, token, 1000)

	_, err := l.Withdraw(bob, lot)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = l.Withdraw(alice, NewLotID())
	assert.ErrorIs(t, err, ErrLotNotFound)
}

// A lot fully transferred out has zero balance and cannot withdraw, even
// with unresolved epochs; the moved balance carries the entitlement.
func TestWithdrawZeroBalanceLot(t *testing.T) {
	l, _ := newTestLedger(t)
	token, lot := mintToken(t, l, 100, alice)
	_, err := l.Transfer(alice, lot, 100, bob)
	require.NoError(t, err)
	deposit(t, l, token, 1000)

	_, err = l.Withdraw(alice, lot)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

// ---------------------------------------------------------------------------
// Proportional distribution across transfers
// ---------------------------------------------------------------------------

// Mint 1000 to alice; deposit 1000; transfer 500 to bob; deposit 500.
// Alice's lot (balance 500) resolves epoch 0 for 500 and epoch 1 for 250.
// Bob's lot (balance 500) was split before alice claimed anything, so it
// resolves epoch 0 for 500 and epoch 1 for 250 as well. Everything deposited
// is distributed exactly once; the pool drains to zero.
func TestWithdrawAfterTransferSplitsEpochShares(t *testing.T) {
	l, _ := newTestLedger(t)
	token, aliceLot := mintToken(t, l, 1000, alice)

	deposit(t, l, token, 1000)
	bobLot, err := l.Transfer(alice, aliceLot, 500, bob)
	require.NoError(t, err)
	deposit(t, l, token, 500)

	alicePayout, err := l.Withdraw(alice, aliceLot)
	require.NoError(t, err)
	assert.Equal(t, uint64(750), alicePayout.Amount())

	bobPayout, err := l.Withdraw(bob, bobLot)
	require.NoError(t, err)
	assert.Equal(t, uint64(750), bobPayout.Amount())

	pool, err := l.PoolBalance(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), pool)

	epoch0, err := l.Epoch(token, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []Address{alice, bob}, epoch0.ClaimedBy)
}

// Withdraw, then transfer, then deposit again: the recipient inherits the
// sender's claimed marker for the already-claimed epoch and collects only
// from the new one.
func TestTransferAfterWithdrawBlocksReclaim(t *testing.T) {
	l, _ := newTestLedger(t)
	token, aliceLot := mintToken(t, l, 1000, alice)

	deposit(t, l, token, 1000)
	payout, err := l.Withdraw(alice, aliceLot)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), payout.Amount())

	bobLot, err := l.Transfer(alice, aliceLot, 500, bob)
	require.NoError(t, err)

	deposit(t, l, token, 500)

	bobPayout, err := l.Withdraw(bob, bobLot)
	require.NoError(t, err)
	assert.Equal(t, uint64(250), bobPayout.Amount(), "epoch 0 is inherited as claimed; only epoch 1 pays")

	alicePayout, err := l.Withdraw(alice, aliceLot)
	require.NoError(t, err)
	assert.Equal(t, uint64(250), alicePayout.Amount())

	pool, err := l.PoolBalance(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), pool)
}

// ---------------------------------------------------------------------------
// Address-keyed claims
// ---------------------------------------------------------------------------

// One address holding two lots of the same token claims an epoch only once:
// the first withdrawal wins it, the second finds it already claimed.
func TestAddressClaimsEpochOnlyOnce(t *testing.T) {
	l, _ := newTestLedger(t)
	token, aliceLot := mintToken(t, l, 1000, alice)

	// Give carol two lots via two transfers.
	carolLotA, err := l.Transfer(alice, aliceLot, 300, carol)
	require.NoError(t, err)
	carolLotB, err := l.Transfer(alice, aliceLot, 200, carol)
	require.NoError(t, err)

	deposit(t, l, token, 1000)

	first, err := l.Withdraw(carol, carolLotA)
	require.NoError(t, err)
	assert.Equal(t, uint64(300), first.Amount())

	// The second lot sees the epoch already claimed by carol's address.
	_, err = l.Withdraw(carol, carolLotB)
	assert.ErrorIs(t, err, ErrNoNewRevenue)

	// But the second lot's cursor did not advance (the failed call committed
	// nothing), so a later epoch is still collectable.
	deposit(t, l, token, 1000)
	second, err := l.Withdraw(carol, carolLotB)
	require.NoError(t, err)
	assert.Equal(t, uint64(200), second.Amount(),
		"epoch 0 stays claimed for carol; epoch 1 pays lot B's 200 balance")
}

// ---------------------------------------------------------------------------
// Dust and zero shares
// ---------------------------------------------------------------------------

// A balance too small for a floor share gets nothing; the epoch is resolved
// by cursor advance without marking the address claimed.
func TestWithdrawZeroShareFails(t *testing.T) {
	l, _ := newTestLedger(t)
	token, aliceLot := mintToken(t, l, 1000, alice)
	bobLot, err := l.Transfer(alice, aliceLot, 1, bob)
	require.NoError(t, err)

	// 1/1000 of 500 floors to zero.
	deposit(t, l, token, 500)

	_, err = l.Withdraw(bob, bobLot)
	assert.ErrorIs(t, err, ErrNoNewRevenue)

	epoch, err := l.Epoch(token, 0)
	require.NoError(t, err)
	assert.Empty(t, epoch.ClaimedBy, "zero-share scan must not mark the address claimed")
}

// Floor-division remainders stay in the pool as dust.
func TestWithdrawLeavesDustInPool(t *testing.T) {
	l, _ := newTestLedger(t)
	token, aliceLot := mintToken(t, l, 3, alice)
	bobLot, err := l.Transfer(alice, aliceLot, 1, bob)
	require.NoError(t, err)
	carolLot, err := l.Transfer(alice, aliceLot, 1, carol)
	require.NoError(t, err)

	deposit(t, l, token, 100)

	for _, w := range []struct {
		caller Address
		lot    LotID
	}{{alice, aliceLot}, {bob, bobLot}, {carol, carolLot}} {
		payout, err := l.Withdraw(w.caller, w.lot)
		require.NoError(t, err)
		assert.Equal(t, uint64(33), payout.Amount())
	}

	pool, err := l.PoolBalance(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), pool, "the 100 - 3*33 remainder stays as dust")
}
