// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validatorcmd

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/cmd/flags"
	"github.com/unc-network/unc-cli/pkg/networkoptions"
	"github.com/unc-network/unc-cli/pkg/types"
	"github.com/unc-network/unc-cli/pkg/utils"
	"github.com/unc-network/unc-cli/pkg/ux"
	"github.com/unc-network/unc-cli/pkg/validator"
)

var (
	currentNetworkFlags networkoptions.NetworkFlags
	currentBlockFlags   flags.BlockFlags
)

func newCurrentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "current",
		Short: "View the validators of an epoch",
		Long: `Shows the validators of the epoch containing the given block (the latest
epoch by default), with their pledge and how many of their expected blocks
and chunks they produced.`,
		Args: cobra.NoArgs,
		RunE: currentValidators,
	}
	networkoptions.AddNetworkFlagsToCmd(cmd, &currentNetworkFlags)
	flags.AddBlockFlagsToCmd(cmd, &currentBlockFlags)
	return cmd
}

func currentValidators(cmd *cobra.Command, _ []string) error {
	q, err := queryClient(cmd, currentNetworkFlags)
	if err != nil {
		return err
	}
	ctx, cancel := utils.GetAPIContext()
	defer cancel()
	report, err := validator.CurrentValidators(ctx, q, currentBlockFlags.EpochReference())
	if err != nil {
		return err
	}
	return render(report, func(w io.Writer) error {
		return printCurrentValidators(w, report)
	})
}

func printCurrentValidators(w io.Writer, report *validator.CurrentValidatorsReport) error {
	t := ux.NewTable(w, "Validator Id", "Pledge", "Online", "Blocks produced", "Blocks expected", "Chunks produced", "Chunks expected")
	for _, v := range report.Validators {
		online := "-"
		if o := v.Online(); !math.IsNaN(o) {
			online = ux.FormatPercent(o)
		}
		if err := t.AppendRow(
			v.AccountID.String(),
			types.UncToken(v.Pledge).String(),
			online,
			ux.ConvertToStringWithThousandSeparator(v.NumProducedBlocks),
			ux.ConvertToStringWithThousandSeparator(v.NumExpectedBlocks),
			ux.ConvertToStringWithThousandSeparator(v.NumProducedChunks),
			ux.ConvertToStringWithThousandSeparator(v.NumExpectedChunks),
		); err != nil {
			return err
		}
	}
	title := fmt.Sprintf("Validators (total: %d, seat price: %s)", len(report.Validators), types.UncToken(report.SeatPrice))
	return t.RenderWithTitle(w, title)
}
