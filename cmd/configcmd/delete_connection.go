// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/pkg/prompts"
	"github.com/unc-network/unc-cli/pkg/ux"
)

func newDeleteConnectionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-connection [connection-name]",
		Short: "Delete a network connection",
		Args:  cobra.MaximumNArgs(1),
		RunE:  deleteNetworkConnection,
	}
}

func deleteNetworkConnection(cmd *cobra.Command, args []string) error {
	var name string
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		if !prompts.IsInteractive() {
			return prompts.MissingError(cmd.CommandPath(), []prompts.MissingOpt{{Flag: "<connection-name>"}})
		}
		var err error
		name, err = app.Prompt.CaptureList("Which connection do you want to delete?", app.Networks.Names())
		if err != nil {
			return err
		}
	}
	if err := app.Networks.Delete(name); err != nil {
		return err
	}
	if err := app.SaveNetworks(); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Network connection %q was deleted from %s", name, app.GetNetworkConfigPath())
	return nil
}
