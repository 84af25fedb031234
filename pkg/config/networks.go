// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/unc-network/unc-cli/pkg/constants"
	"github.com/unc-network/unc-cli/pkg/types"
)

const networkConnectionTable = "network_connection"

var validate = validator.New(validator.WithRequiredStructEnabled())

// NetworkConfig describes how to reach one network.
type NetworkConfig struct {
	// ConnectionName is the key of the [network_connection.<name>] table.
	ConnectionName string `toml:"-" validate:"required"`

	NetworkName               string `toml:"network_name" validate:"required"`
	RPCURL                    string `toml:"rpc_url" validate:"required,url"`
	RPCAPIKey                 string `toml:"rpc_api_key,omitempty"`
	WalletURL                 string `toml:"wallet_url" validate:"required,url"`
	ExplorerTransactionURL    string `toml:"explorer_transaction_url" validate:"required,url"`
	LinkdropAccountID         string `toml:"linkdrop_account_id,omitempty"`
	FaucetURL                 string `toml:"faucet_url,omitempty" validate:"omitempty,url"`
	MetaTransactionRelayerURL string `toml:"meta_transaction_relayer_url,omitempty" validate:"omitempty,url"`
}

// Networks is the content of config.toml: the credentials location and an
// ordered list of network connections.
type Networks struct {
	CredentialsHomeDir string          `toml:"credentials_home_dir" validate:"required"`
	Connections        []NetworkConfig `toml:"-" validate:"unique=ConnectionName,dive"`
}

// DefaultNetworks returns the built-in mainnet, testnet and custom connections.
func DefaultNetworks(homeDir string) *Networks {
	return &Networks{
		CredentialsHomeDir: filepath.Join(homeDir, constants.CredentialsDirName),
		Connections: []NetworkConfig{
			{
				ConnectionName:         constants.MainnetNetworkName,
				NetworkName:            constants.MainnetNetworkName,
				RPCURL:                 constants.MainnetRPCURL,
				WalletURL:              constants.MainnetWalletURL,
				ExplorerTransactionURL: constants.MainnetExplorerTransactionURL,
				LinkdropAccountID:      constants.MainnetLinkdropAccountID,
			},
			{
				ConnectionName:         constants.TestnetNetworkName,
				NetworkName:            constants.TestnetNetworkName,
				RPCURL:                 constants.TestnetRPCURL,
				WalletURL:              constants.TestnetWalletURL,
				ExplorerTransactionURL: constants.TestnetExplorerTransactionURL,
				LinkdropAccountID:      constants.TestnetLinkdropAccountID,
				FaucetURL:              constants.TestnetFaucetURL,
			},
			{
				ConnectionName:         constants.CustomNetworkName,
				NetworkName:            constants.BetanetNetworkName,
				RPCURL:                 constants.BetanetRPCURL,
				WalletURL:              constants.TestnetWalletURL,
				ExplorerTransactionURL: constants.TestnetExplorerTransactionURL,
				LinkdropAccountID:      constants.TestnetLinkdropAccountID,
				FaucetURL:              constants.TestnetFaucetURL,
			},
		},
	}
}

func (n *Networks) Validate() error {
	if len(n.Connections) == 0 {
		return constants.ErrNoNetworkConnections
	}
	if err := validate.Struct(n); err != nil {
		return fmt.Errorf("invalid network configuration: %w", err)
	}
	for _, c := range n.Connections {
		if c.LinkdropAccountID == "" {
			continue
		}
		if err := types.ValidateAccountID(c.LinkdropAccountID); err != nil {
			return fmt.Errorf("network connection %q: linkdrop account: %w", c.ConnectionName, err)
		}
	}
	return nil
}

// Get returns the connection registered under name.
func (n *Networks) Get(name string) (NetworkConfig, error) {
	for _, c := range n.Connections {
		if c.ConnectionName == name {
			return c, nil
		}
	}
	return NetworkConfig{}, fmt.Errorf("%w: %q (available: %s)", constants.ErrUnknownNetwork, name, strings.Join(n.Names(), ", "))
}

// Names returns the connection names in file order.
func (n *Networks) Names() []string {
	names := make([]string, 0, len(n.Connections))
	for _, c := range n.Connections {
		names = append(names, c.ConnectionName)
	}
	return names
}

// Upsert replaces the connection with the same name or appends a new one.
func (n *Networks) Upsert(c NetworkConfig) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid network connection %q: %w", c.ConnectionName, err)
	}
	for i := range n.Connections {
		if n.Connections[i].ConnectionName == c.ConnectionName {
			n.Connections[i] = c
			return nil
		}
	}
	n.Connections = append(n.Connections, c)
	return nil
}

func (n *Networks) Delete(name string) error {
	for i := range n.Connections {
		if n.Connections[i].ConnectionName == name {
			n.Connections = append(n.Connections[:i], n.Connections[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", constants.ErrUnknownNetwork, name)
}

// OrderForAccounts returns the connection names with networks whose linkdrop
// account is a suffix of one of accountIDs first. File order is kept otherwise.
func (n *Networks) OrderForAccounts(accountIDs []types.AccountID) []string {
	if len(accountIDs) == 0 {
		return n.Names()
	}
	var matches, rest []string
	for _, c := range n.Connections {
		matched := false
		if c.LinkdropAccountID != "" {
			for _, id := range accountIDs {
				if strings.HasSuffix(string(id), c.LinkdropAccountID) {
					matched = true
					break
				}
			}
		}
		if matched {
			matches = append(matches, c.ConnectionName)
		} else {
			rest = append(rest, c.ConnectionName)
		}
	}
	return append(matches, rest...)
}

type networksFile struct {
	CredentialsHomeDir string                   `toml:"credentials_home_dir"`
	NetworkConnection  map[string]NetworkConfig `toml:"network_connection"`
}

// LoadNetworks reads config.toml, keeping the order of the connection tables.
func LoadNetworks(path string) (*Networks, error) {
	var raw networksFile
	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	n := &Networks{CredentialsHomeDir: raw.CredentialsHomeDir}
	seen := map[string]bool{}
	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != networkConnectionTable || seen[key[1]] {
			continue
		}
		seen[key[1]] = true
		c := raw.NetworkConnection[key[1]]
		c.ConnectionName = key[1]
		n.Connections = append(n.Connections, c)
	}
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// LoadOrCreateNetworks loads path, writing the defaults there first when it does not exist.
func LoadOrCreateNetworks(path, homeDir string) (*Networks, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		n := DefaultNetworks(homeDir)
		if err := n.Save(path); err != nil {
			return nil, err
		}
		return n, nil
	}
	return LoadNetworks(path)
}

// Encode renders the file with one table per connection in order.
func (n *Networks) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(struct {
		CredentialsHomeDir string `toml:"credentials_home_dir"`
	}{n.CredentialsHomeDir}); err != nil {
		return nil, err
	}
	for _, c := range n.Connections {
		fmt.Fprintf(&buf, "\n[%s.%s]\n", networkConnectionTable, toml.Key{c.ConnectionName})
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, fmt.Errorf("failed to encode network connection %q: %w", c.ConnectionName, err)
		}
	}
	return buf.Bytes(), nil
}

func (n *Networks) Save(path string) error {
	if err := n.Validate(); err != nil {
		return err
	}
	data, err := n.Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), constants.DefaultPerms755); err != nil {
		return err
	}
	return os.WriteFile(path, data, constants.WriteReadReadPerms)
}
