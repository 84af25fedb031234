// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package tokenscmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unc-network/unc-cli/cmd/flags"
	"github.com/unc-network/unc-cli/pkg/account"
	"github.com/unc-network/unc-cli/pkg/application"
	"github.com/unc-network/unc-cli/pkg/networkoptions"
	"github.com/unc-network/unc-cli/pkg/types"
	"github.com/unc-network/unc-cli/pkg/utils"
	"github.com/unc-network/unc-cli/pkg/ux"
)

var (
	app *application.Unc

	balanceNetworkFlags networkoptions.NetworkFlags
	balanceBlockFlags   flags.BlockFlags
)

// unc tokens
func NewCmd(injectedApp *application.Unc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "View native token balances",
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	// tokens view-balance
	cmd.AddCommand(newViewBalanceCmd())
	return cmd
}

func newViewBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view-balance [account-id]",
		Short: "View the balance an account can transfer",
		Long: `Shows the part of the native balance of an account that is available for
transfer, after the storage pledge and a pessimistic transaction fee.
Implicit accounts that were never funded have a zero balance.`,
		Args: cobra.MaximumNArgs(1),
		RunE: viewBalance,
	}
	networkoptions.AddNetworkFlagsToCmd(cmd, &balanceNetworkFlags)
	flags.AddBlockFlagsToCmd(cmd, &balanceBlockFlags)
	return cmd
}

type balanceReport struct {
	AccountID           types.AccountID `json:"account_id" yaml:"account_id"`
	Network             string          `json:"network" yaml:"network"`
	Available           types.Balance   `json:"available" yaml:"available"`
	Total               types.Balance   `json:"total" yaml:"total"`
	LiquidStoragePledge types.Balance   `json:"liquid_storage_pledge" yaml:"liquid_storage_pledge"`
	PessimisticFee      types.Balance   `json:"pessimistic_fee" yaml:"pessimistic_fee"`
}

func viewBalance(cmd *cobra.Command, args []string) error {
	accountID, err := flags.AccountIDArg(app, cmd, args, 0, "What Account ID do you need to view the balance of?")
	if err != nil {
		return err
	}
	network, err := networkoptions.GetNetworkFromCmdLineFlags(app, cmd, "", balanceNetworkFlags, []types.AccountID{accountID})
	if err != nil {
		return err
	}
	q, err := app.Client(network.ConnectionName)
	if err != nil {
		return err
	}
	ctx, cancel := utils.GetAPIContext()
	defer cancel()
	prober := app.Prober(func(msg string) {
		_, _ = fmt.Fprintln(os.Stderr, msg)
		app.Log.Warn(strings.TrimSpace(msg))
	})
	allowance, err := prober.TransferAllowance(ctx, q, accountID, balanceBlockFlags.BlockReference())
	if err != nil {
		return err
	}
	if err := app.UsedAccounts.MarkUsed(accountID, false); err != nil {
		app.Log.Warn("failed to update the used account list", zap.Error(err))
	}

	format, err := ux.ParseOutputFormat(app.Conf.OutputFormat())
	if err != nil {
		return err
	}
	report := newBalanceReport(network.ConnectionName, allowance)
	return ux.Render(ux.Logger.Writer(), format, report, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, allowance)
		return err
	})
}

func newBalanceReport(network string, a *account.TransferAllowance) balanceReport {
	return balanceReport{
		AccountID:           a.AccountID,
		Network:             network,
		Available:           a.Allowance(),
		Total:               a.Liquid,
		LiquidStoragePledge: a.LiquidStoragePledge(),
		PessimisticFee:      a.PessimisticFee,
	}
}
