// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unc-network/unc-cli/pkg/application"
	"github.com/unc-network/unc-cli/pkg/config"
	"github.com/unc-network/unc-cli/pkg/prompts"
	"github.com/unc-network/unc-cli/pkg/usedaccounts"
	"github.com/unc-network/unc-cli/pkg/ux"
)

func newTestApp(t *testing.T) (*application.Unc, *bytes.Buffer) {
	t.Helper()
	prompts.SetNonInteractive(true)
	t.Cleanup(func() { prompts.SetNonInteractive(false) })
	a := application.New()
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

var localArgs = []string{
	"add-connection",
	"--connection-name", "local",
	"--network-name", "localnet",
	"--rpc-url", "http://127.0.0.1:3030",
	"--wallet-url", "http://127.0.0.1:4000",
	"--explorer-transaction-url", "http://127.0.0.1:5000/transactions/",
	"--rpc-api-key", "secret",
}

func TestAddConnectionPersists(t *testing.T) {
	require := require.New(t)
	a, out := newTestApp(t)

	require.NoError(execute(a, localArgs...))
	require.Contains(out.String(), `Network connection "local" was saved`)

	loaded, err := config.LoadNetworks(a.GetNetworkConfigPath())
	require.NoError(err)
	c, err := loaded.Get("local")
	require.NoError(err)
	require.Equal("localnet", c.NetworkName)
	require.Equal("secret", c.RPCAPIKey)
}

func TestAddConnectionMissingRequired(t *testing.T) {
	require := require.New(t)
	a, _ := newTestApp(t)

	err := execute(a, "add-connection", "--connection-name", "local")
	require.ErrorContains(err, "--network-name")
	require.ErrorContains(err, "--rpc-url")
	require.ErrorContains(err, "--explorer-transaction-url")
}

func TestAddConnectionExistingNeedsForce(t *testing.T) {
	require := require.New(t)
	a, _ := newTestApp(t)

	require.NoError(execute(a, localArgs...))
	require.ErrorContains(execute(a, localArgs...), "use --force")
	require.NoError(execute(a, append(localArgs, "--force")...))
}

func TestAddConnectionInvalidURL(t *testing.T) {
	require := require.New(t)
	a, _ := newTestApp(t)

	args := append([]string{}, localArgs...)
	args[6] = "not a url"
	require.Error(execute(a, args...))
	require.NotContains(a.Networks.Names(), "local")
}

func TestDeleteConnection(t *testing.T) {
	require := require.New(t)
	a, _ := newTestApp(t)

	require.NoError(execute(a, localArgs...))
	require.NoError(execute(a, "delete-connection", "local"))
	require.NotContains(a.Networks.Names(), "local")

	loaded, err := config.LoadNetworks(a.GetNetworkConfigPath())
	require.NoError(err)
	require.NotContains(loaded.Names(), "local")

	require.Error(execute(a, "delete-connection", "local"))
	require.ErrorContains(execute(a, "delete-connection"), "<connection-name>")
}

func TestShowHidesAPIKey(t *testing.T) {
	require := require.New(t)
	a, out := newTestApp(t)

	require.NoError(execute(a, localArgs...))
	out.Reset()
	require.NoError(execute(a, "show"))
	s := out.String()
	require.Contains(s, a.GetNetworkConfigPath())
	require.Contains(s, "local")
	require.Contains(s, "http://127.0.0.1:3030")
	require.NotContains(s, "secret")
}
