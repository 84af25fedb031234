// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package pledgingcmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/pkg/networkoptions"
	"github.com/unc-network/unc-cli/pkg/pledging"
	"github.com/unc-network/unc-cli/pkg/types"
	"github.com/unc-network/unc-cli/pkg/utils"
	"github.com/unc-network/unc-cli/pkg/ux"
)

var validatorsNetworkFlags networkoptions.NetworkFlags

func newValidatorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validators",
		Short: "List the validator ids you can delegate to",
		Long: `Lists the validators of the latest epoch. Validators you used before are
listed first.`,
		Args: cobra.NoArgs,
		RunE: delegatedValidators,
	}
	networkoptions.AddNetworkFlagsToCmd(cmd, &validatorsNetworkFlags)
	return cmd
}

func delegatedValidators(cmd *cobra.Command, _ []string) error {
	used, err := app.UsedAccounts.Accounts(false)
	if err != nil {
		return err
	}
	network, err := networkoptions.GetNetworkFromCmdLineFlags(app, cmd, "", validatorsNetworkFlags, used)
	if err != nil {
		return err
	}
	q, err := app.Client(network.ConnectionName)
	if err != nil {
		return err
	}
	ctx, cancel := utils.GetAPIContext()
	defer cancel()
	ids, err := pledging.DelegatedValidators(ctx, q, used)
	if err != nil {
		return err
	}
	format, err := ux.ParseOutputFormat(app.Conf.OutputFormat())
	if err != nil {
		return err
	}
	return ux.Render(ux.Logger.Writer(), format, ids, func(w io.Writer) error {
		return printIDs(w, ids)
	})
}

func printIDs(w io.Writer, ids []types.AccountID) error {
	for _, id := range ids {
		if _, err := fmt.Fprintln(w, id); err != nil {
			return err
		}
	}
	return nil
}
