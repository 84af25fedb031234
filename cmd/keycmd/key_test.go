// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package keycmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unc-network/unc-cli/pkg/application"
	"github.com/unc-network/unc-cli/pkg/config"
	"github.com/unc-network/unc-cli/pkg/prompts"
	"github.com/unc-network/unc-cli/pkg/rpc"
	"github.com/unc-network/unc-cli/pkg/rpc/mocks"
	"github.com/unc-network/unc-cli/pkg/types"
	"github.com/unc-network/unc-cli/pkg/usedaccounts"
	"github.com/unc-network/unc-cli/pkg/ux"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func newTestApp(t *testing.T, q *mocks.Querier) (*application.Unc, *bytes.Buffer) {
	t.Helper()
	a := application.New()
	a.NewClient = func(config.NetworkConfig) rpc.Querier { return q }
	a.UsedAccounts = usedaccounts.NewMemoryRepository()
	a.Setup(t.TempDir(), zap.NewNop(), config.New(), prompts.NewNonInteractivePrompter())
	require.NoError(t, a.LoadNetworks(t.TempDir()))
	out := &bytes.Buffer{}
	ux.Logger = ux.NewUserLog(zap.NewNop(), out)
	return a, out
}

func execute(a *application.Unc, args ...string) error {
	cmd := NewCmd(a)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd.Execute()
}

func TestFromSeedPhrase(t *testing.T) {
	require := require.New(t)
	a, out := newTestApp(t, &mocks.Querier{})

	require.NoError(execute(a, "from-seed-phrase", "--seed-phrase", testMnemonic))
	s := out.String()
	require.Contains(s, "Master Seed Phrase: "+testMnemonic)
	require.Contains(s, "Seed Phrase HD Path: m/44'/397'/0'")
	require.Contains(s, "Public Key: ed25519:")
	require.Contains(s, "SECRET KEYPAIR: ed25519:")

	err := execute(a, "from-seed-phrase", "--seed-phrase", "not a phrase")
	require.Error(err)
}

func TestFromSeedPhraseMissing(t *testing.T) {
	a, _ := newTestApp(t, &mocks.Querier{})
	require.ErrorContains(t, execute(a, "from-seed-phrase"), "--seed-phrase")
}

func TestSaveProbesNetworks(t *testing.T) {
	require := require.New(t)
	alice := types.AccountID("alice.testnet")
	q := &mocks.Querier{}
	q.On("NetworkName").Return("testnet")
	q.On("ViewAccount", mock.Anything, alice, rpc.Final()).Return(&rpc.AccountView{}, nil)
	a, out := newTestApp(t, q)

	require.NoError(execute(a, "from-seed-phrase", "--seed-phrase", testMnemonic, "--save", "--account-id", string(alice)))
	require.FileExists(filepath.Join(a.GetCredentialsDir(), "testnet", "alice.testnet.json"))
	require.Contains(out.String(), "The data for the access key is saved in a file")

	entries, err := a.UsedAccounts.List()
	require.NoError(err)
	require.Equal([]usedaccounts.Entry{{AccountID: alice, UsedAsSigner: true}}, entries)

	// saving again leaves the files alone
	out.Reset()
	require.NoError(execute(a, "from-seed-phrase", "--seed-phrase", testMnemonic, "--save", "--account-id", string(alice), "--network", "testnet"))
	require.Contains(out.String(), "already exists! Therefore it was not overwritten.")
}

func TestGenerateAndList(t *testing.T) {
	require := require.New(t)
	a, out := newTestApp(t, &mocks.Querier{})

	require.NoError(execute(a, "generate", "--save", "--network", "custom"))
	require.Contains(out.String(), "Implicit Account ID: ")

	entries, err := os.ReadDir(filepath.Join(a.GetCredentialsDir(), "betanet"))
	require.NoError(err)
	require.Len(entries, 2)

	out.Reset()
	require.NoError(execute(a, "list"))
	ids, err := a.Keychain().Accounts()
	require.NoError(err)
	require.Len(ids, 1)
	require.Contains(out.String(), ids[0].String())
}
