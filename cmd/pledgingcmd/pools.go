// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package pledgingcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/pkg/constants"
	"github.com/unc-network/unc-cli/pkg/networkoptions"
	"github.com/unc-network/unc-cli/pkg/pledging"
	"github.com/unc-network/unc-cli/pkg/prompts"
	"github.com/unc-network/unc-cli/pkg/types"
	"github.com/unc-network/unc-cli/pkg/utils"
	"github.com/unc-network/unc-cli/pkg/ux"
)

var (
	poolsNetworkFlags networkoptions.NetworkFlags
	poolsConcurrency  int
)

type poolsReport struct {
	Network string              `json:"network" yaml:"network"`
	Pools   []pledging.PoolInfo `json:"pools" yaml:"pools"`
}

func newPoolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "List the validators and their pledging pools",
		Long: `Queries the pledging pool contract of every proposed, current and next
validator. Validators that do not run a pool are listed without a fee and
delegator count.`,
		Args: cobra.NoArgs,
		RunE: pools,
	}
	networkoptions.AddNetworkFlagsToCmd(cmd, &poolsNetworkFlags)
	cmd.Flags().IntVar(&poolsConcurrency, "concurrency", constants.DefaultPoolQueryConcurrency, "number of pool contracts queried at once")
	return cmd
}

func pools(cmd *cobra.Command, _ []string) error {
	network, err := networkoptions.GetNetworkFromCmdLineFlags(app, cmd, "", poolsNetworkFlags, nil)
	if err != nil {
		return err
	}
	q, err := app.Client(network.ConnectionName)
	if err != nil {
		return err
	}
	format, err := ux.ParseOutputFormat(app.Conf.OutputFormat())
	if err != nil {
		return err
	}

	ctx, cancel := utils.GetAPILargeContext()
	defer cancel()
	progress := ux.NewProgress(os.Stderr, format == ux.Plaintext && prompts.IsInteractive(), "Querying pledging pools")
	infos, err := pledging.ListPools(ctx, q, pledging.Options{
		Concurrency: poolsConcurrency,
		OnProgress:  progress.Update,
	})
	progress.Finish()
	if err != nil {
		return err
	}
	app.Log.Debug("listed pledging pools")

	report := poolsReport{Network: network.ConnectionName, Pools: infos}
	return ux.Render(ux.Logger.Writer(), format, report, func(w io.Writer) error {
		return printPools(w, report)
	})
}

func printPools(w io.Writer, report poolsReport) error {
	t := ux.NewTable(w, "#", "Validator Id", "Fee", "Delegators", "Pledge")
	for i, p := range report.Pools {
		fee, delegators := "", ""
		if p.Fee.IsSome() {
			fee = p.Fee.Unwrap().String()
		}
		if p.Delegators.IsSome() {
			delegators = ux.ConvertToStringWithThousandSeparator(p.Delegators.Unwrap())
		}
		if err := t.AppendRow(
			strconv.Itoa(i+1),
			p.ValidatorID.String(),
			fee,
			delegators,
			types.UncToken(p.Pledge).String(),
		); err != nil {
			return err
		}
	}
	return t.RenderWithTitle(w, fmt.Sprintf("Validators on <%s> (total: %d)", report.Network, len(report.Pools)))
}
