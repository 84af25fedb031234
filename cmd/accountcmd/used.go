// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package accountcmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/pkg/usedaccounts"
	"github.com/unc-network/unc-cli/pkg/ux"
)

var (
	usedSignersOnly bool
	usedRebuild     bool
)

func newUsedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "used",
		Short: "List the accounts this CLI worked with, most recent first",
		Args:  cobra.NoArgs,
		RunE:  usedAccounts,
	}
	cmd.Flags().BoolVar(&usedSignersOnly, "signers", false, "only list accounts that signed a transaction")
	cmd.Flags().BoolVar(&usedRebuild, "rebuild", false, "replace the list with the accounts found in the keychain")
	return cmd
}

func usedAccounts(_ *cobra.Command, _ []string) error {
	if usedRebuild {
		ids, err := app.Keychain().Accounts()
		if err != nil {
			return fmt.Errorf("failed to scan keychain: %w", err)
		}
		if err := app.UsedAccounts.Rebuild(ids); err != nil {
			return err
		}
		ux.Logger.GreenCheckmarkToUser("Rebuilt the used account list from %d keychain accounts", len(ids))
	}
	entries, err := app.UsedAccounts.List()
	if err != nil {
		return err
	}
	if usedSignersOnly {
		signers := make([]usedaccounts.Entry, 0, len(entries))
		for _, e := range entries {
			if e.UsedAsSigner {
				signers = append(signers, e)
			}
		}
		entries = signers
	}
	format, err := ux.ParseOutputFormat(app.Conf.OutputFormat())
	if err != nil {
		return err
	}
	return ux.Render(ux.Logger.Writer(), format, entries, func(w io.Writer) error {
		return printUsed(w, entries)
	})
}

func printUsed(w io.Writer, entries []usedaccounts.Entry) error {
	t := ux.NewTable(w, "Account Id", "Signer")
	for _, e := range entries {
		signer := ""
		if e.UsedAsSigner {
			signer = "yes"
		}
		if err := t.AppendRow(e.AccountID.String(), signer); err != nil {
			return err
		}
	}
	return t.RenderWithTitle(w, fmt.Sprintf("Used accounts (total: %d)", len(entries)))
}
