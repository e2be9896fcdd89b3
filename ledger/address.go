package ledger

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// AddressSize is the length of an account address in bytes.
const AddressSize = 20

// Address identifies an account that can own lots and receive payouts.
// Claim sets inside revenue epochs are keyed by Address, not by lot id.
type Address [AddressSize]byte

// ParseAddress decodes a 40-digit hex address, with or without a 0x prefix.
// Mixed-case input must carry a valid Keccak-256 checksum; all-lower or
// all-upper input is accepted unchecked.
func ParseAddress(s string) (Address, error) {
	var a Address
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(trimmed) != AddressSize*2 {
		return a, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return a, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	copy(a[:], raw)
	if trimmed != strings.ToLower(trimmed) && trimmed != strings.ToUpper(trimmed) {
		if a.checksumHex() != trimmed {
			return Address{}, fmt.Errorf("%w: checksum mismatch in %q", ErrInvalidAddress, s)
		}
	}
	return a, nil
}

// String renders the address as 0x-prefixed hex with the Keccak-256
// mixed-case checksum applied.
func (a Address) String() string {
	return "0x" + a.checksumHex()
}

// IsZero reports whether the address is the all-zero placeholder.
func (a Address) IsZero() bool {
	return a == Address{}
}

// checksumHex returns the 40-digit hex form with checksum casing: a hex
// letter is upper-cased when the corresponding nibble of
// keccak256(lowercase hex) is >= 8.
func (a Address) checksumHex() string {
	lower := hex.EncodeToString(a[:])
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	sum := h.Sum(nil)

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := sum[i/2] >> 4
		if i%2 == 1 {
			nibble = sum[i/2] & 0x0f
		}
		if nibble >= 8 {
			out[i] = c - ('a' - 'A')
		}
	}
	return string(out)
}
