// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package keycmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/pkg/ux"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the accounts with keys in the keychain",
		Args:  cobra.NoArgs,
		RunE:  listKeys,
	}
}

func listKeys(_ *cobra.Command, _ []string) error {
	ids, err := app.Keychain().Accounts()
	if err != nil {
		return err
	}
	format, err := ux.ParseOutputFormat(app.Conf.OutputFormat())
	if err != nil {
		return err
	}
	return ux.Render(ux.Logger.Writer(), format, ids, func(w io.Writer) error {
		t := ux.NewTable(w, "Account Id")
		for _, id := range ids {
			if err := t.AppendRow(id.String()); err != nil {
				return err
			}
		}
		return t.RenderWithTitle(w, "Keychain: "+app.GetCredentialsDir())
	})
}
