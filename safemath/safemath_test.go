package safemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- CheckedAdd / CheckedSub tests ---

func TestCheckedAdd(t *testing.T) {
	tests := []struct {
		name    string
		a, b    uint64
		want    uint64
		wantErr error
	}{
		{"zero plus zero", 0, 0, 0, nil},
		{"simple", 2, 3, 5, nil},
		{"max plus zero", math.MaxUint64, 0, math.MaxUint64, nil},
		{"max plus one overflows", math.MaxUint64, 1, 0, ErrOverflow},
		{"halves overflow", math.MaxUint64/2 + 1, math.MaxUint64/2 + 1, 0, ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckedAdd(tt.a, tt.b)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckedSub(t *testing.T) {
	tests := []struct {
		name    string
		a, b    uint64
		want    uint64
		wantErr error
	}{
		{"simple", 5, 3, 2, nil},
		{"to zero", 7, 7, 0, nil},
		{"underflow", 3, 5, 0, ErrUnderflow},
		{"underflow from zero", 0, 1, 0, ErrUnderflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckedSub(tt.a, tt.b)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// --- MulDivFloor tests ---

func TestMulDivFloor(t *testing.T) {
	tests := []struct {
		name                           string
		amount, numerator, denominator uint64
		want                           uint64
		wantErr                        error
	}{
		{"full share", 1000, 100, 100, 1000, nil},
		{"half share", 1000, 500, 1000, 500, nil},
		{"floors down", 1000, 1, 3, 333, nil},
		{"tiny share floors to zero", 2, 1, 3, 0, nil},
		{"zero amount", 0, 5, 10, 0, nil},
		{"zero numerator", 1000, 0, 10, 0, nil},
		{"wide intermediate", math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64, nil},
		{"divide by zero", 1, 1, 0, 0, ErrDivideByZero},
		{"quotient overflows", math.MaxUint64, 2, 1, 0, ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MulDivFloor(tt.amount, tt.numerator, tt.denominator)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestMulDivFloorNeverOverpays checks that a floor share with numerator <=
// denominator can never exceed the amount, across a grid of values.
func TestMulDivFloorNeverOverpays(t *testing.T) {
	amounts := []uint64{0, 1, 2, 3, 999, 1000, 1001, math.MaxUint64 / 2, math.MaxUint64}
	supplies := []uint64{1, 2, 3, 10, 999, 1000, math.MaxUint64}

	for _, amount := range amounts {
		for _, supply := range supplies {
			for _, balance := range []uint64{0, 1, supply / 2, supply - 1, supply} {
				if balance > supply {
					continue
				}
				share, err := MulDivFloor(amount, balance, supply)
				require.NoError(t, err)
				assert.LessOrEqual(t, share, amount,
					"amount=%d balance=%d supply=%d", amount, balance, supply)
			}
		}
	}
}

// --- ShareAndRemainder tests ---

func TestShareAndRemainder(t *testing.T) {
	share, remainder, err := ShareAndRemainder(1000, 250, 1000)
	require.NoError(t, err)
	assert.Equal(t, uint64(250), share)
	assert.Equal(t, uint64(750), remainder)
}

func TestShareAndRemainderZeroSupply(t *testing.T) {
	_, _, err := ShareAndRemainder(1000, 250, 0)
	assert.ErrorIs(t, err, ErrDivideByZero)
}

// TestShareSumNeverExceedsAmount distributes one epoch amount across holder
// balances summing to the supply and checks the shares never exceed it.
func TestShareSumNeverExceedsAmount(t *testing.T) {
	const supply = 1000
	holders := [][]uint64{
		{1000},
		{500, 500},
		{333, 333, 334},
		{1, 1, 998},
		{999, 1},
		{100, 200, 300, 400},
	}

	for _, balances := range holders {
		for _, amount := range []uint64{1, 7, 999, 1000, 123456789} {
			var total uint64
			for _, balance := range balances {
				share, _, err := ShareAndRemainder(amount, balance, supply)
				require.NoError(t, err)
				total += share
			}
			assert.LessOrEqual(t, total, amount, "balances=%v amount=%d", balances, amount)
		}
	}
}
