// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package pledgingcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/pkg/application"
)

var app *application.Unc

// unc pledging
func NewCmd(injectedApp *application.Unc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pledging",
		Short: "Inspect pledging pools",
		Long: `The pledging command suite lists the validators of a network together with
the reward fee and delegator count of their pledging pool contract.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	// pledging pools
	cmd.AddCommand(newPoolsCmd())
	// pledging validators
	cmd.AddCommand(newValidatorsCmd())
	return cmd
}
