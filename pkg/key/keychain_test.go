// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package key

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unc-network/unc-cli/pkg/constants"
	"github.com/unc-network/unc-cli/pkg/types"
)

func TestKeychainSave(t *testing.T) {
	require := require.New(t)

	kc := Keychain{Dir: t.TempDir()}
	kp, err := FromSeedPhrase(testMnemonic, constants.DefaultSeedPhraseHDPath)
	require.NoError(err)

	res, err := kc.Save("testnet", "alice.unc", kp)
	require.NoError(err)
	require.Len(res.Written, 2)
	require.Empty(res.Skipped)

	accountFile := filepath.Join(kc.Dir, "testnet", "alice.unc.json")
	require.Contains(res.Written, accountFile)
	data, err := os.ReadFile(accountFile)
	require.NoError(err)
	var saved map[string]string
	require.NoError(json.Unmarshal(data, &saved))
	require.Equal("alice.unc", saved["account_id"])
	require.Equal(kp.PublicKey.String(), saved["public_key"])
	require.Equal(kp.PrivateKey, saved["private_key"])

	require.NoError(os.WriteFile(accountFile, []byte("keep"), constants.WriteReadUserOnlyPerms))
	res, err = kc.Save("testnet", "alice.unc", kp)
	require.NoError(err)
	require.Empty(res.Written)
	require.Len(res.Skipped, 2)
	require.Contains(res.String(), "already exists! Therefore it was not overwritten.")

	data, err = os.ReadFile(accountFile)
	require.NoError(err)
	require.Equal("keep", string(data))
}

func TestKeychainAccounts(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	kc := Keychain{Dir: dir}

	ids, err := Keychain{Dir: filepath.Join(dir, "missing")}.Accounts()
	require.NoError(err)
	require.Empty(ids)

	require.NoError(os.MkdirAll(filepath.Join(dir, "testnet", "bob.unc"), constants.UserOnlyDirPerms))
	require.NoError(os.MkdirAll(filepath.Join(dir, "mainnet"), constants.UserOnlyDirPerms))
	for _, p := range []string{
		filepath.Join(dir, "testnet", "alice.unc.json"),
		filepath.Join(dir, "mainnet", "alice.unc.json"),
		filepath.Join(dir, "mainnet", "notes.txt"),
		filepath.Join(dir, "mainnet", "Not Valid.json"),
		filepath.Join(dir, constants.UsedAccountListFileName),
	} {
		require.NoError(os.WriteFile(p, []byte("{}"), constants.WriteReadUserOnlyPerms))
	}

	ids, err = kc.Accounts()
	require.NoError(err)
	require.Equal([]types.AccountID{"alice.unc", "bob.unc"}, ids)
}
