// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validatorcmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/moznion/go-optional"
	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/pkg/networkoptions"
	"github.com/unc-network/unc-cli/pkg/types"
	"github.com/unc-network/unc-cli/pkg/utils"
	"github.com/unc-network/unc-cli/pkg/ux"
	"github.com/unc-network/unc-cli/pkg/validator"
)

var nextNetworkFlags networkoptions.NetworkFlags

func newNextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "View the validators of the next epoch",
		Long: `Shows the validators already selected for the next epoch. Validators of the
current epoch that were not selected are listed as kicked out.`,
		Args: cobra.NoArgs,
		RunE: nextValidators,
	}
	networkoptions.AddNetworkFlagsToCmd(cmd, &nextNetworkFlags)
	return cmd
}

func nextValidators(cmd *cobra.Command, _ []string) error {
	q, err := queryClient(cmd, nextNetworkFlags)
	if err != nil {
		return err
	}
	ctx, cancel := utils.GetAPIContext()
	defer cancel()
	report, err := validator.NextValidators(ctx, q)
	if err != nil {
		return err
	}
	return render(report, func(w io.Writer) error {
		return printNextValidators(w, report)
	})
}

func formatPledge(b optional.Option[types.Balance]) string {
	if b.IsNone() {
		return ""
	}
	return types.UncToken(b.Unwrap()).String()
}

func printNextValidators(w io.Writer, report *validator.NextValidatorsReport) error {
	t := ux.NewTable(w, "#", "Status", "Validator Id", "Previous Pledge", "Pledge")
	selected := 0
	for _, v := range report.Validators {
		index := ""
		if v.Status != types.KickedOut {
			selected++
			index = strconv.Itoa(selected)
		}
		if err := t.AppendRow(
			index,
			v.Status.String(),
			v.AccountID.String(),
			formatPledge(v.PreviousPledge),
			formatPledge(v.Pledge),
		); err != nil {
			return err
		}
	}
	title := fmt.Sprintf("Next validators (total: %d, seat price: %s)", selected, types.UncToken(report.SeatPrice))
	return t.RenderWithTitle(w, title)
}
