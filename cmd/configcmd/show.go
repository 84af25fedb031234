// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/pkg/config"
	"github.com/unc-network/unc-cli/pkg/ux"
)

type connectionView struct {
	ConnectionName            string `json:"connection_name" yaml:"connection_name"`
	NetworkName               string `json:"network_name" yaml:"network_name"`
	RPCURL                    string `json:"rpc_url" yaml:"rpc_url"`
	WalletURL                 string `json:"wallet_url" yaml:"wallet_url"`
	ExplorerTransactionURL    string `json:"explorer_transaction_url" yaml:"explorer_transaction_url"`
	LinkdropAccountID         string `json:"linkdrop_account_id,omitempty" yaml:"linkdrop_account_id,omitempty"`
	FaucetURL                 string `json:"faucet_url,omitempty" yaml:"faucet_url,omitempty"`
	MetaTransactionRelayerURL string `json:"meta_transaction_relayer_url,omitempty" yaml:"meta_transaction_relayer_url,omitempty"`
	HasRPCAPIKey              bool   `json:"has_rpc_api_key" yaml:"has_rpc_api_key"`
}

type configView struct {
	Path               string           `json:"path" yaml:"path"`
	SettingsPath       string           `json:"settings_path,omitempty" yaml:"settings_path,omitempty"`
	CredentialsHomeDir string           `json:"credentials_home_dir" yaml:"credentials_home_dir"`
	Connections        []connectionView `json:"connections" yaml:"connections"`
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the network connections",
		Long:  `Shows the location of config.toml and its content. RPC API keys are not printed.`,
		Args:  cobra.NoArgs,
		RunE:  show,
	}
}

func newConfigView(path, settingsPath string, n *config.Networks) configView {
	v := configView{Path: path, SettingsPath: settingsPath, CredentialsHomeDir: n.CredentialsHomeDir}
	for _, c := range n.Connections {
		v.Connections = append(v.Connections, connectionView{
			ConnectionName:            c.ConnectionName,
			NetworkName:               c.NetworkName,
			RPCURL:                    c.RPCURL,
			WalletURL:                 c.WalletURL,
			ExplorerTransactionURL:    c.ExplorerTransactionURL,
			LinkdropAccountID:         c.LinkdropAccountID,
			FaucetURL:                 c.FaucetURL,
			MetaTransactionRelayerURL: c.MetaTransactionRelayerURL,
			HasRPCAPIKey:              c.RPCAPIKey != "",
		})
	}
	return v
}

func show(_ *cobra.Command, _ []string) error {
	view := newConfigView(app.GetNetworkConfigPath(), app.Conf.GetConfigPath(), app.Networks)
	format, err := ux.ParseOutputFormat(app.Conf.OutputFormat())
	if err != nil {
		return err
	}
	return ux.Render(ux.Logger.Writer(), format, view, func(w io.Writer) error {
		return printConfig(w, view)
	})
}

func printConfig(w io.Writer, v configView) error {
	settings := v.SettingsPath
	if settings == "" {
		settings = "none"
	}
	if _, err := fmt.Fprintf(w, "Configuration: %s\nSettings: %s\nCredentials: %s\n\n", v.Path, settings, v.CredentialsHomeDir); err != nil {
		return err
	}
	t := ux.NewTable(w, "Connection", "Network", "RPC URL", "Linkdrop Account", "API Key")
	for _, c := range v.Connections {
		apiKey := ""
		if c.HasRPCAPIKey {
			apiKey = "set"
		}
		if err := t.AppendRow(c.ConnectionName, c.NetworkName, c.RPCURL, c.LinkdropAccountID, apiKey); err != nil {
			return err
		}
	}
	return t.RenderWithTitle(w, fmt.Sprintf("Network connections (total: %d)", len(v.Connections)))
}
