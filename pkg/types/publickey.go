// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
)

const ED25519Prefix = "ed25519:"

var ErrInvalidPublicKey = errors.New("invalid public key")

// PublicKey is an ed25519 public key in its "ed25519:<base58>" form.
type PublicKey struct {
	data [ed25519.PublicKeySize]byte
}

func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	var pk PublicKey
	if len(b) != ed25519.PublicKeySize {
		return pk, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPublicKey, ed25519.PublicKeySize, len(b))
	}
	copy(pk.data[:], b)
	return pk, nil
}

// ParsePublicKey accepts "ed25519:<base58>" and a bare base58 string.
func ParsePublicKey(s string) (PublicKey, error) {
	s = strings.TrimSpace(s)
	if curve, rest, ok := strings.Cut(s, ":"); ok {
		if curve != strings.TrimSuffix(ED25519Prefix, ":") {
			return PublicKey{}, fmt.Errorf("%w %q: unsupported curve %q", ErrInvalidPublicKey, s, curve)
		}
		s = rest
	}
	raw := base58.Decode(s)
	if len(raw) == 0 {
		return PublicKey{}, fmt.Errorf("%w %q: not base58", ErrInvalidPublicKey, s)
	}
	return PublicKeyFromBytes(raw)
}

func (pk PublicKey) Bytes() []byte {
	return pk.data[:]
}

func (pk PublicKey) String() string {
	return ED25519Prefix + base58.Encode(pk.data[:])
}

func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

func (pk *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*pk = parsed
	return nil
}
