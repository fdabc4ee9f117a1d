package host

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Uint128 is an unsigned 128-bit ledger amount. It serializes as a decimal
// string on the wire, matching the chain's native representation.
type Uint128 struct {
	i uint256.Int
}

// ZeroUint128 returns a zero amount.
func ZeroUint128() Uint128 { return Uint128{} }

// NewUint128 builds an amount from a uint64.
func NewUint128(v uint64) Uint128 {
	var u Uint128
	u.i.SetUint64(v)
	return u
}

// ParseUint128 parses a non-negative decimal string, rejecting values that
// do not fit in 128 bits.
func ParseUint128(s string) (Uint128, error) {
	var u Uint128
	if err := u.i.SetFromDecimal(s); err != nil {
		return Uint128{}, fmt.Errorf("invalid uint128 %q: %w", s, err)
	}
	if u.i.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("value %q exceeds 128 bits", s)
	}
	return u, nil
}

// MustUint128 is ParseUint128 for literals in tests and fixtures.
func MustUint128(s string) Uint128 {
	u, err := ParseUint128(s)
	if err != nil {
		panic(err)
	}
	return u
}

func (u Uint128) IsZero() bool          { return u.i.IsZero() }
func (u Uint128) Lt(other Uint128) bool { return u.i.Lt(&other.i) }
func (u Uint128) Eq(other Uint128) bool { return u.i.Eq(&other.i) }
func (u Uint128) String() string        { return u.i.Dec() }

func (u Uint128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.i.Dec() + `"`), nil
}

func (u *Uint128) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("uint128 must be a decimal string, got %s", data)
	}
	parsed, err := ParseUint128(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
