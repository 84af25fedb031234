// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// maxBalanceBits is the width of an on-chain amount.
const maxBalanceBits = 128

var (
	ErrBalanceOverflow = errors.New("amount does not fit in 128 bits")
	ErrInvalidBalance  = errors.New("invalid amount")
	ErrDivisionByZero  = errors.New("division by zero")
)

// Balance is an unsigned 128-bit amount of attounc.
// The zero value is a valid zero amount.
type Balance struct {
	v uint256.Int
}

func NewBalance(v uint64) Balance {
	var b Balance
	b.v.SetUint64(v)
	return b
}

// ParseBalance parses a base 10 amount of attounc.
func ParseBalance(s string) (Balance, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Balance{}, fmt.Errorf("%w: empty string", ErrInvalidBalance)
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Balance{}, fmt.Errorf("%w %q: %w", ErrInvalidBalance, s, err)
	}
	if v.BitLen() > maxBalanceBits {
		return Balance{}, fmt.Errorf("%w: %s", ErrBalanceOverflow, s)
	}
	return Balance{v: *v}, nil
}

// MustParseBalance is ParseBalance that panics on error. Intended for constants and tests.
func MustParseBalance(s string) Balance {
	b, err := ParseBalance(s)
	if err != nil {
		panic(err)
	}
	return b
}

func balanceFromInt(v *uint256.Int) (Balance, error) {
	if v.BitLen() > maxBalanceBits {
		return Balance{}, ErrBalanceOverflow
	}
	return Balance{v: *v}, nil
}

// Pow10 returns 10^exp attounc.
func Pow10(exp uint64) Balance {
	var b Balance
	b.v.Exp(uint256.NewInt(10), uint256.NewInt(exp))
	return b
}

func (b Balance) IsZero() bool {
	return b.v.IsZero()
}

// Cmp returns -1, 0 or +1.
func (b Balance) Cmp(o Balance) int {
	return b.v.Cmp(&o.v)
}

func (b Balance) Add(o Balance) (Balance, error) {
	var z uint256.Int
	z.Add(&b.v, &o.v)
	return balanceFromInt(&z)
}

// SaturatingSub returns b - o, or zero when o is larger than b.
func (b Balance) SaturatingSub(o Balance) Balance {
	var z Balance
	if _, underflow := z.v.SubOverflow(&b.v, &o.v); underflow {
		return Balance{}
	}
	return z
}

func (b Balance) MulUint64(m uint64) (Balance, error) {
	var z uint256.Int
	z.Mul(&b.v, uint256.NewInt(m))
	return balanceFromInt(&z)
}

// Mul multiplies two amounts. Used for per-byte storage pricing.
func (b Balance) Mul(o Balance) (Balance, error) {
	var z uint256.Int
	if _, overflow := z.MulOverflow(&b.v, &o.v); overflow {
		return Balance{}, ErrBalanceOverflow
	}
	return balanceFromInt(&z)
}

// Div is floor division.
func (b Balance) Div(o Balance) (Balance, error) {
	if o.IsZero() {
		return Balance{}, ErrDivisionByZero
	}
	var z Balance
	z.v.Div(&b.v, &o.v)
	return z, nil
}

func (b Balance) DivUint64(d uint64) (Balance, error) {
	return b.Div(NewBalance(d))
}

func (b Balance) Mod(o Balance) (Balance, error) {
	if o.IsZero() {
		return Balance{}, ErrDivisionByZero
	}
	var z Balance
	z.v.Mod(&b.v, &o.v)
	return z, nil
}

// IsUint64 reports whether the amount fits in a uint64.
func (b Balance) IsUint64() bool {
	return b.v.IsUint64()
}

func (b Balance) Uint64() uint64 {
	return b.v.Uint64()
}

func (b Balance) String() string {
	return b.v.Dec()
}

// MarshalJSON encodes the amount as a decimal string, the way the node encodes u128.
func (b Balance) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON accepts both a decimal string and a bare JSON number.
func (b *Balance) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*b = Balance{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	parsed, err := ParseBalance(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalYAML renders the amount as a decimal string.
func (b Balance) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

// SumBalances adds up amounts, failing on 128-bit overflow.
func SumBalances(amounts []Balance) (Balance, error) {
	var total Balance
	for _, a := range amounts {
		var err error
		if total, err = total.Add(a); err != nil {
			return Balance{}, err
		}
	}
	return total, nil
}
