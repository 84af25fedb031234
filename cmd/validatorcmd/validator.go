// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validatorcmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/pkg/application"
	"github.com/unc-network/unc-cli/pkg/networkoptions"
	"github.com/unc-network/unc-cli/pkg/rpc"
	"github.com/unc-network/unc-cli/pkg/ux"
)

var app *application.Unc

// unc validators
func NewCmd(injectedApp *application.Unc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validators",
		Short: "Lookup validators and pledge proposals",
		Long: `The validators command suite shows the validator set of the current and
the next epoch, and the pledge proposals for the epoch after next together
with the seat price they are expected to face.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	// validators current
	cmd.AddCommand(newCurrentCmd())
	// validators next
	cmd.AddCommand(newNextCmd())
	// validators proposals
	cmd.AddCommand(newProposalsCmd())
	return cmd
}

func queryClient(cmd *cobra.Command, networkFlags networkoptions.NetworkFlags) (rpc.Querier, error) {
	network, err := networkoptions.GetNetworkFromCmdLineFlags(app, cmd, "", networkFlags, nil)
	if err != nil {
		return nil, err
	}
	return app.Client(network.ConnectionName)
}

func render(report any, plain func(io.Writer) error) error {
	format, err := ux.ParseOutputFormat(app.Conf.OutputFormat())
	if err != nil {
		return err
	}
	return ux.Render(ux.Logger.Writer(), format, report, plain)
}
