// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validatorcmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/pkg/networkoptions"
	"github.com/unc-network/unc-cli/pkg/types"
	"github.com/unc-network/unc-cli/pkg/utils"
	"github.com/unc-network/unc-cli/pkg/ux"
	"github.com/unc-network/unc-cli/pkg/validator"
)

var proposalsNetworkFlags networkoptions.NetworkFlags

func newProposalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposals",
		Short: "View the pledge proposals for the epoch after next",
		Long: `Joins the current validators, the next validators and the pending pledge
proposals, computes the expected seat price and shows which proposals pass.`,
		Args: cobra.NoArgs,
		RunE: proposals,
	}
	networkoptions.AddNetworkFlagsToCmd(cmd, &proposalsNetworkFlags)
	return cmd
}

func proposals(cmd *cobra.Command, _ []string) error {
	q, err := queryClient(cmd, proposalsNetworkFlags)
	if err != nil {
		return err
	}
	ctx, cancel := utils.GetAPIContext()
	defer cancel()
	report, err := validator.Proposals(ctx, q)
	if err != nil {
		return err
	}
	return render(report, func(w io.Writer) error {
		return printProposals(w, report)
	})
}

func printProposals(w io.Writer, report *validator.ProposalsReport) error {
	t := ux.NewTable(w, "#", "Status", "Validator Id", "Pledge", "New Pledge")
	for i, r := range report.Records {
		if err := t.AppendRow(
			strconv.Itoa(i+1),
			r.Status.String(),
			r.AccountID.String(),
			formatPledge(r.CurrentPledge),
			formatPledge(r.NewPledge),
		); err != nil {
			return err
		}
	}
	title := fmt.Sprintf(
		"Proposals for the epoch after next (new: %d, passing: %d, expected seat price = %s)",
		report.NewProposals,
		report.Passing,
		types.UncToken(report.SeatPrice),
	)
	return t.RenderWithTitle(w, title)
}
