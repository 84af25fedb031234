// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	minAccountIDLen      = 2
	maxAccountIDLen      = 64
	implicitAccountIDLen = 64
)

var (
	ErrInvalidAccountID = errors.New("invalid account id")

	accountIDRegexp = regexp.MustCompile(`^(([a-z\d]+[\-_])*[a-z\d]+\.)*([a-z\d]+[\-_])*[a-z\d]+$`)
)

// AccountID is a validated account identifier.
type AccountID string

func ParseAccountID(s string) (AccountID, error) {
	if err := ValidateAccountID(s); err != nil {
		return "", err
	}
	return AccountID(s), nil
}

func ValidateAccountID(s string) error {
	switch {
	case len(s) < minAccountIDLen:
		return fmt.Errorf("%w %q: shorter than %d characters", ErrInvalidAccountID, s, minAccountIDLen)
	case len(s) > maxAccountIDLen:
		return fmt.Errorf("%w %q: longer than %d characters", ErrInvalidAccountID, s, maxAccountIDLen)
	case !accountIDRegexp.MatchString(s):
		return fmt.Errorf("%w %q: only lowercase alphanumerics separated by single '-', '_' or '.' are allowed", ErrInvalidAccountID, s)
	}
	return nil
}

// IsImplicit reports whether the id is a 64 character hex encoded ed25519 public key.
func (a AccountID) IsImplicit() bool {
	if len(a) != implicitAccountIDLen {
		return false
	}
	_, err := hex.DecodeString(string(a))
	return err == nil
}

// IsSubAccountOf reports whether a is a direct sub-account of parent.
func (a AccountID) IsSubAccountOf(parent AccountID) bool {
	prefix, ok := strings.CutSuffix(string(a), "."+string(parent))
	return ok && prefix != "" && !strings.Contains(prefix, ".")
}

func (a AccountID) String() string {
	return string(a)
}

func (a *AccountID) UnmarshalText(text []byte) error {
	id, err := ParseAccountID(string(text))
	if err != nil {
		return err
	}
	*a = id
	return nil
}

func (a AccountID) MarshalText() ([]byte, error) {
	return []byte(a), nil
}
