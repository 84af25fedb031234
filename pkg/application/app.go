// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/unc-network/unc-cli/pkg/account"
	"github.com/unc-network/unc-cli/pkg/config"
	"github.com/unc-network/unc-cli/pkg/constants"
	"github.com/unc-network/unc-cli/pkg/key"
	"github.com/unc-network/unc-cli/pkg/prompts"
	"github.com/unc-network/unc-cli/pkg/retry"
	"github.com/unc-network/unc-cli/pkg/rpc"
	"github.com/unc-network/unc-cli/pkg/usedaccounts"
)

// ClientFactory opens a query client for a network connection.
type ClientFactory func(network config.NetworkConfig) rpc.Querier

type Unc struct {
	Log          *zap.Logger
	baseDir      string
	Conf         *config.Config
	Prompt       prompts.Prompter
	Networks     *config.Networks
	UsedAccounts usedaccounts.Repository
	NewClient    ClientFactory
	Cmd          interface{} // Current command being executed (cobra.Command)
}

func New() *Unc {
	return &Unc{}
}

func (app *Unc) Setup(baseDir string, log *zap.Logger, conf *config.Config, prompt prompts.Prompter) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
	if app.NewClient == nil {
		app.NewClient = app.defaultClient
	}
}

func (app *Unc) defaultClient(network config.NetworkConfig) rpc.Querier {
	return rpc.NewClient(network, rpc.Options{
		RequestsPerSecond: app.Conf.RequestsPerSecond(),
		Logger:            app.Log,
	})
}

func (app *Unc) GetBaseDir() string {
	return app.baseDir
}

// GetNetworkConfigPath is config.toml, unless overridden in the CLI config.
func (app *Unc) GetNetworkConfigPath() string {
	if app.Conf != nil {
		if p := app.Conf.GetConfigStringValue(constants.ConfigNetworkConfigPathKey); p != "" {
			return p
		}
	}
	return filepath.Join(app.baseDir, constants.NetworkConfigFileName)
}

// LoadNetworks reads the network connections, creating the default file on
// first use, and opens the used account list of the credentials directory.
// The list is seeded from the keychain when it was never written.
func (app *Unc) LoadNetworks(homeDir string) error {
	networks, err := config.LoadOrCreateNetworks(app.GetNetworkConfigPath(), homeDir)
	if err != nil {
		return err
	}
	if app.Conf != nil {
		if dir := app.Conf.GetConfigStringValue(constants.ConfigCredentialsHomeDirKey); dir != "" {
			networks.CredentialsHomeDir = dir
		}
	}
	app.Networks = networks
	if app.UsedAccounts == nil {
		repo := usedaccounts.NewFileRepository(networks.CredentialsHomeDir)
		if !repo.Exists() {
			ids, err := app.Keychain().Accounts()
			if err != nil {
				return fmt.Errorf("failed to scan keychain: %w", err)
			}
			if err := repo.Rebuild(ids); err != nil {
				return err
			}
		}
		app.UsedAccounts = repo
	}
	return nil
}

func (app *Unc) SaveNetworks() error {
	return app.Networks.Save(app.GetNetworkConfigPath())
}

func (app *Unc) GetCredentialsDir() string {
	if app.Networks == nil {
		return ""
	}
	return app.Networks.CredentialsHomeDir
}

func (app *Unc) Keychain() key.Keychain {
	return key.Keychain{Dir: app.GetCredentialsDir()}
}

// Client opens a client for the named connection.
func (app *Unc) Client(connection string) (rpc.Querier, error) {
	if app.Networks == nil {
		return nil, constants.ErrNoNetworkConnections
	}
	network, err := app.Networks.Get(connection)
	if err != nil {
		return nil, err
	}
	return app.NewClient(network), nil
}

// Clients opens a client per connection, in order.
func (app *Unc) Clients(connections []string) ([]rpc.Querier, error) {
	out := make([]rpc.Querier, 0, len(connections))
	for _, name := range connections {
		c, err := app.Client(name)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// RetryPolicy asks the user when prompting is possible and otherwise
// retries up to the configured number of attempts.
func (app *Unc) RetryPolicy() retry.Policy {
	return retry.PolicyForMode(app.Prompt, prompts.IsInteractive(), app.Conf.RetryAttempts())
}

// Prober runs existence probes under RetryPolicy, reporting transient
// failures to notify.
func (app *Unc) Prober(notify func(string)) account.Prober {
	return account.Prober{Policy: app.RetryPolicy(), Notify: notify}
}

// CaptureYesNo delegates to the internal prompt
func (app *Unc) CaptureYesNo(prompt string) (bool, error) {
	return app.Prompt.CaptureYesNo(prompt)
}
