// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/pkg/application"
)

var app *application.Unc

func NewCmd(injectedApp *application.Unc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage network connections",
		Long: `Show and edit the network connections stored in config.toml in the CLI
base directory.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	// config show
	cmd.AddCommand(newShowCmd())
	// config add-connection
	cmd.AddCommand(newAddConnectionCmd())
	// config delete-connection
	cmd.AddCommand(newDeleteConnectionCmd())
	return cmd
}
