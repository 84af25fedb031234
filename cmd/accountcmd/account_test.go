// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package accountcmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unc-network/unc-cli/pkg/account"
	"github.com/unc-network/unc-cli/pkg/application"
	"github.com/unc-network/unc-cli/pkg/config"
	"github.com/unc-network/unc-cli/pkg/prompts"
	"github.com/unc-network/unc-cli/pkg/rpc"
	"github.com/unc-network/unc-cli/pkg/rpc/mocks"
	"github.com/unc-network/unc-cli/pkg/types"
	"github.com/unc-network/unc-cli/pkg/usedaccounts"
	"github.com/unc-network/unc-cli/pkg/ux"
)

const alice = types.AccountID("alice.testnet")

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

func TestViewAccount(t *testing.T) {
	require := require.New(t)
	q := &mocks.Querier{}
	q.On("NetworkName").Return("testnet")
	q.On("ViewAccount", mock.Anything, alice, rpc.Final()).Return(&rpc.AccountView{
		Amount:       types.OneUnc(),
		StorageUsage: 2500,
		BlockHeight:  7,
		BlockHash:    "blockhash",
	}, nil)
	pk, err := types.PublicKeyFromBytes(make([]byte, 32))
	require.NoError(err)
	q.On("ViewAccessKeyList", mock.Anything, alice, rpc.AtHash("blockhash")).Return(&rpc.AccessKeyList{
		Keys: []rpc.AccessKeyInfo{{PublicKey: pk, AccessKey: rpc.AccessKeyView{Nonce: 3}}},
	}, nil)
	a, out := newTestApp(t, q)

	require.NoError(execute(a, "view", string(alice), "--network", "testnet"))
	s := out.String()
	require.Contains(s, "Account details for <alice.testnet> at block #7 (blockhash) on <testnet>")
	require.Contains(s, "1 unc")
	require.Contains(s, "2_500 bytes")
	require.Contains(s, pk.String())
	require.Contains(s, "full access (nonce 3)")

	used, err := a.UsedAccounts.Accounts(false)
	require.NoError(err)
	require.Equal([]types.AccountID{alice}, used)
	q.AssertExpectations(t)
}

func TestViewUnknownAccount(t *testing.T) {
	require := require.New(t)
	q := &mocks.Querier{}
	q.On("NetworkName").Return("testnet")
	q.On("ViewAccount", mock.Anything, alice, rpc.Final()).Return(nil, &rpc.ServerError{
		Method: "query",
		Kind:   rpc.HandlerError,
		Cause:  rpc.CauseUnknownAccount,
	})
	a, _ := newTestApp(t, q)

	err := execute(a, "view", string(alice), "--network", "testnet")
	require.ErrorIs(err, account.ErrNotFound)
	require.ErrorContains(err, "account <alice.testnet> does not exist on network <testnet>")
	q.AssertNumberOfCalls(t, "ViewAccount", 1)
}

func TestVerifyKey(t *testing.T) {
	require := require.New(t)
	pk, err := types.PublicKeyFromBytes(bytes.Repeat([]byte{1}, 32))
	require.NoError(err)
	other, err := types.PublicKeyFromBytes(bytes.Repeat([]byte{2}, 32))
	require.NoError(err)

	q := &mocks.Querier{}
	q.On("NetworkName").Return("testnet")
	q.On("ViewAccessKey", mock.Anything, alice, pk, rpc.Final()).Return(&rpc.AccessKeyView{Nonce: 1}, nil)
	q.On("ViewAccessKey", mock.Anything, alice, other, rpc.Final()).Return(nil, &rpc.ServerError{
		Method: "query",
		Kind:   rpc.HandlerError,
		Cause:  rpc.CauseUnknownAccessKey,
	})
	a, out := newTestApp(t, q)

	require.NoError(execute(a, "verify-key", string(alice), pk.String(), "--network", "testnet"))
	require.Contains(out.String(), "is an access key of <alice.testnet>")

	err = execute(a, "verify-key", string(alice), other.String(), "--network", "testnet")
	require.ErrorIs(err, ErrAccessKeyNotFound)
}

func TestUsedAccounts(t *testing.T) {
	require := require.New(t)
	a, out := newTestApp(t, &mocks.Querier{})
	require.NoError(a.UsedAccounts.MarkUsed("bob.testnet", true))
	require.NoError(a.UsedAccounts.MarkUsed(alice, false))

	require.NoError(execute(a, "used"))
	require.Contains(out.String(), "Used accounts (total: 2)")

	out.Reset()
	require.NoError(execute(a, "used", "--signers"))
	s := out.String()
	require.Contains(s, "Used accounts (total: 1)")
	require.Contains(s, "bob.testnet")
	require.NotContains(s, "alice.testnet")
}

func TestDescribePermission(t *testing.T) {
	require := require.New(t)
	require.Equal("full access (nonce 5)", describePermission(rpc.AccessKeyView{Nonce: 5}))

	fc := rpc.AccessKeyView{Permission: rpc.AccessKeyPermission{FunctionCall: &rpc.FunctionCallPermission{
		ReceiverID:  "app.testnet",
		MethodNames: []string{"vote"},
		Allowance:   optional.Some(types.OneUnc()),
	}}}
	require.Equal("only [vote] on <app.testnet> with 1 unc allowance (nonce 0)", describePermission(fc))

	fc.Permission.FunctionCall.MethodNames = nil
	fc.Permission.FunctionCall.Allowance = optional.None[types.Balance]()
	require.Equal("only any method on <app.testnet> with unlimited allowance (nonce 0)", describePermission(fc))
}

type failingRepository struct {
	usedaccounts.Repository
	err error
}

func (r failingRepository) MarkUsed(types.AccountID, bool) error {
	return r.err
}

func TestMarkUsedLogsFailure(t *testing.T) {
	require := require.New(t)
	a, _ := newTestApp(t, &mocks.Querier{})
	core, logs := observer.New(zapcore.WarnLevel)
	a.Log = zap.New(core)
	a.UsedAccounts = failingRepository{Repository: usedaccounts.NewMemoryRepository(), err: errors.New("disk full")}
	app = a

	markUsed(alice, false)

	entries := logs.FilterMessage("failed to update the used account list").All()
	require.Len(entries, 1)
	require.Equal("disk full", entries[0].ContextMap()["error"])
}
