// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/pkg/application"
	"github.com/unc-network/unc-cli/pkg/prompts"
	"github.com/unc-network/unc-cli/pkg/types"
	"github.com/unc-network/unc-cli/pkg/utils"
)

// AccountIDArg takes the account id from args[idx] or asks for it,
// suggesting the recently used accounts.
func AccountIDArg(app *application.Unc, cmd *cobra.Command, args []string, idx int, promptStr string) (types.AccountID, error) {
	if len(args) > idx {
		return types.ParseAccountID(args[idx])
	}
	if !prompts.IsInteractive() {
		return "", prompts.MissingError(cmd.CommandPath(), []prompts.MissingOpt{{
			Flag: "<account-id>",
			Note: promptStr,
		}})
	}
	var suggestions []string
	if app.UsedAccounts != nil {
		used, err := app.UsedAccounts.Accounts(false)
		if err != nil {
			app.Log.Debug("failed to read used accounts")
		}
		suggestions = utils.AccountIDsToStrings(used)
	}
	return app.Prompt.CaptureAccountID(promptStr, suggestions)
}
