// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package accountcmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unc-network/unc-cli/pkg/account"
	"github.com/unc-network/unc-cli/pkg/application"
	"github.com/unc-network/unc-cli/pkg/config"
	"github.com/unc-network/unc-cli/pkg/networkoptions"
	"github.com/unc-network/unc-cli/pkg/rpc"
	"github.com/unc-network/unc-cli/pkg/types"
)

var app *application.Unc

// unc account
func NewCmd(injectedApp *application.Unc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Inspect accounts and their access keys",
		Long: `The account command suite views account state and access keys on a network,
and lists the accounts this CLI has worked with.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	// account view
	cmd.AddCommand(newViewCmd())
	// account verify-key
	cmd.AddCommand(newVerifyKeyCmd())
	// account list-keys
	cmd.AddCommand(newListKeysCmd())
	// account used
	cmd.AddCommand(newUsedCmd())
	return cmd
}

// accountContext is an account resolved on a network.
type accountContext struct {
	accountID types.AccountID
	network   config.NetworkConfig
	client    rpc.Querier
	prober    account.Prober
}

func resolveAccount(cmd *cobra.Command, accountID types.AccountID, networkFlags networkoptions.NetworkFlags) (*accountContext, error) {
	network, err := networkoptions.GetNetworkFromCmdLineFlags(app, cmd, "", networkFlags, []types.AccountID{accountID})
	if err != nil {
		return nil, err
	}
	client, err := app.Client(network.ConnectionName)
	if err != nil {
		return nil, err
	}
	return &accountContext{
		accountID: accountID,
		network:   network,
		client:    client,
		prober:    app.Prober(notifyUser),
	}, nil
}

// notifyUser reports retried failures on stderr, keeping stdout parseable.
func notifyUser(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	app.Log.Warn(strings.TrimSpace(msg))
}

// notFound wraps an unknown account error for the user.
func (c *accountContext) notFound(err error) error {
	if rpc.IsHandlerCause(err, rpc.CauseUnknownAccount) {
		return fmt.Errorf("account <%s> does not exist on network <%s>: %w", c.accountID, c.network.ConnectionName, account.ErrNotFound)
	}
	return err
}

func markUsed(accountID types.AccountID, asSigner bool) {
	if err := app.UsedAccounts.MarkUsed(accountID, asSigner); err != nil {
		app.Log.Warn("failed to update the used account list", zap.Error(err))
	}
}
