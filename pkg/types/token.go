// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"
	"strings"

	"github.com/unc-network/unc-cli/pkg/constants"
)

var (
	oneUnc      = Pow10(constants.OneUncExponent)
	oneMilliUnc = Pow10(constants.OneMilliUncExponent)
	attoLimit   = NewBalance(1_000)
)

// UncToken is a Balance rendered for humans.
type UncToken Balance

func OneUnc() Balance {
	return oneUnc
}

func OneMilliUnc() Balance {
	return oneMilliUnc
}

func (t UncToken) AsAttoUnc() Balance {
	return Balance(t)
}

// String renders "0 unc", "<n> attounc" for dust up to 1000 attounc,
// "<n> unc" for whole amounts and "<int>.<frac> unc" otherwise.
func (t UncToken) String() string {
	b := Balance(t)
	switch {
	case b.IsZero():
		return "0 unc"
	case b.Cmp(attoLimit) <= 0:
		return b.String() + " attounc"
	}
	whole, _ := b.Div(oneUnc)
	frac, _ := b.Mod(oneUnc)
	if frac.IsZero() {
		return whole.String() + " unc"
	}
	fracStr := fmt.Sprintf("%0*s", constants.OneUncExponent, frac.String())
	return whole.String() + "." + strings.TrimRight(fracStr, "0") + " unc"
}

// ParseUncToken parses "<amount> unc" (up to 24 fractional digits) or "<amount> attounc".
func ParseUncToken(s string) (UncToken, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	var (
		num  string
		atto bool
	)
	switch {
	case strings.HasSuffix(s, "attounc"):
		num, atto = strings.TrimSpace(strings.TrimSuffix(s, "attounc")), true
	case strings.HasSuffix(s, "unc"):
		num = strings.TrimSpace(strings.TrimSuffix(s, "unc"))
	default:
		return UncToken{}, fmt.Errorf("%w %q: expected a unit, e.g. \"1.5 unc\" or \"100 attounc\"", ErrInvalidBalance, s)
	}
	num = strings.ReplaceAll(num, "_", "")
	if atto {
		b, err := ParseBalance(num)
		return UncToken(b), err
	}
	intPart, fracPart, _ := strings.Cut(num, ".")
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > constants.OneUncExponent {
		return UncToken{}, fmt.Errorf("%w %q: too many fractional digits", ErrInvalidBalance, s)
	}
	fracPart += strings.Repeat("0", constants.OneUncExponent-len(fracPart))
	digits := strings.TrimLeft(intPart+fracPart, "0")
	if digits == "" {
		return UncToken{}, nil
	}
	b, err := ParseBalance(digits)
	return UncToken(b), err
}

func (t UncToken) MarshalJSON() ([]byte, error) {
	return Balance(t).MarshalJSON()
}

func (t *UncToken) UnmarshalJSON(data []byte) error {
	return (*Balance)(t).UnmarshalJSON(data)
}
