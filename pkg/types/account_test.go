// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAccountID(t *testing.T) {
	valid := []string{"ok", "alice.unc", "pool_1.pledging.unc", "a-b.c_d", strings.Repeat("a", 64)}
	for _, id := range valid {
		require.NoError(t, ValidateAccountID(id), id)
	}
	invalid := []string{"a", "Alice", "a..b", "-a", "a-", "a--b", "a.b.", strings.Repeat("a", 65), "a b"}
	for _, id := range invalid {
		require.ErrorIs(t, ValidateAccountID(id), ErrInvalidAccountID, id)
	}
}

func TestAccountIDKinds(t *testing.T) {
	require := require.New(t)

	implicit := AccountID(hex.EncodeToString(make([]byte, 32)))
	require.True(implicit.IsImplicit())
	require.False(AccountID("alice.unc").IsImplicit())

	require.True(AccountID("bob.alice.unc").IsSubAccountOf("alice.unc"))
	require.False(AccountID("c.bob.alice.unc").IsSubAccountOf("alice.unc"))
	require.False(AccountID("alice.unc").IsSubAccountOf("alice.unc"))
}

func TestPublicKeyRoundTrip(t *testing.T) {
	require := require.New(t)

	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = byte(i)
	}
	pk, err := PublicKeyFromBytes(raw)
	require.NoError(err)
	require.True(strings.HasPrefix(pk.String(), ED25519Prefix))

	parsed, err := ParsePublicKey(pk.String())
	require.NoError(err)
	require.Equal(pk, parsed)

	_, err = ParsePublicKey("secp256k1:abc")
	require.ErrorIs(err, ErrInvalidPublicKey)

	_, err = ParsePublicKey("ed25519:2")
	require.ErrorIs(err, ErrInvalidPublicKey)
}
