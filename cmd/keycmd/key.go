// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package keycmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/pkg/application"
)

var app *application.Unc

func NewCmd(injectedApp *application.Unc) *cobra.Command {
	app = injectedApp

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Create and manage ed25519 access keys",
		Long: `The key command suite derives ed25519 access keys from BIP-39 seed phrases
and stores them in the legacy keychain under the credentials directory.

To get started, use the key generate command.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}

	// unc key generate
	cmd.AddCommand(newGenerateCmd())

	// unc key from-seed-phrase
	cmd.AddCommand(newFromSeedPhraseCmd())

	// unc key list
	cmd.AddCommand(newListCmd())

	return cmd
}
