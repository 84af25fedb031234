// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/pkg/config"
	"github.com/unc-network/unc-cli/pkg/prompts"
	"github.com/unc-network/unc-cli/pkg/ux"
)

var (
	addConnection config.NetworkConfig
	addForce      bool
)

func newAddConnectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-connection",
		Short: "Add or replace a network connection",
		Long: `Adds a network connection to config.toml. Connection name, network name,
RPC URL, wallet URL and explorer transaction URL are required and prompted for
when missing.

Example:
  unc config add-connection --connection-name local --network-name localnet \
    --rpc-url http://127.0.0.1:3030 --wallet-url http://127.0.0.1:4000 \
    --explorer-transaction-url http://127.0.0.1:5000/transactions/`,
		Args: cobra.NoArgs,
		RunE: addNetworkConnection,
	}
	f := cmd.Flags()
	f.StringVar(&addConnection.ConnectionName, "connection-name", "", "name the connection is selected by")
	f.StringVar(&addConnection.NetworkName, "network-name", "", "name of the network, used for the keychain directory")
	f.StringVar(&addConnection.RPCURL, "rpc-url", "", "JSON-RPC endpoint")
	f.StringVar(&addConnection.RPCAPIKey, "rpc-api-key", "", "API key sent with every RPC request")
	f.StringVar(&addConnection.WalletURL, "wallet-url", "", "wallet URL")
	f.StringVar(&addConnection.ExplorerTransactionURL, "explorer-transaction-url", "", "explorer URL prefix for transactions")
	f.StringVar(&addConnection.LinkdropAccountID, "linkdrop-account-id", "", "top level account of named accounts on this network")
	f.StringVar(&addConnection.FaucetURL, "faucet-url", "", "faucet URL")
	f.StringVar(&addConnection.MetaTransactionRelayerURL, "meta-transaction-relayer-url", "", "meta transaction relayer URL")
	f.BoolVar(&addForce, "force", false, "replace an existing connection without asking")
	return cmd
}

func addNetworkConnection(cmd *cobra.Command, _ []string) error {
	c := addConnection
	err := prompts.NewValidator(cmd.CommandPath()).
		Require(&c.ConnectionName, prompts.MissingOpt{Flag: "--connection-name", Prompt: "What is the name of the connection?"}).
		Require(&c.NetworkName, prompts.MissingOpt{Flag: "--network-name", Prompt: "What is the name of the network?"}).
		Require(&c.RPCURL, prompts.MissingOpt{Flag: "--rpc-url", Prompt: "What is the RPC endpoint?"}).
		Require(&c.WalletURL, prompts.MissingOpt{Flag: "--wallet-url", Prompt: "What is the wallet URL?"}).
		Require(&c.ExplorerTransactionURL, prompts.MissingOpt{Flag: "--explorer-transaction-url", Prompt: "What is the explorer transaction URL?"}).
		Resolve(func(m prompts.MissingOpt) (string, error) {
			if m.Flag == "--connection-name" || m.Flag == "--network-name" {
				return app.Prompt.CaptureString(m.Prompt)
			}
			return app.Prompt.CaptureURL(m.Prompt)
		})
	if err != nil {
		return err
	}

	if slices.Contains(app.Networks.Names(), c.ConnectionName) && !addForce {
		if !prompts.IsInteractive() {
			return fmt.Errorf("network connection %q already exists, use --force to replace it", c.ConnectionName)
		}
		replace, err := app.CaptureYesNo(fmt.Sprintf("Network connection %q already exists. Replace it?", c.ConnectionName))
		if err != nil || !replace {
			ux.Logger.PrintToUser("Network connection %q was left unchanged", c.ConnectionName)
			return nil
		}
	}
	if err := app.Networks.Upsert(c); err != nil {
		return err
	}
	if err := app.SaveNetworks(); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Network connection %q was saved to %s", c.ConnectionName, app.GetNetworkConfigPath())
	return nil
}
