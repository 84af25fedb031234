// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package accountcmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/cmd/flags"
	"github.com/unc-network/unc-cli/pkg/networkoptions"
	"github.com/unc-network/unc-cli/pkg/prompts"
	"github.com/unc-network/unc-cli/pkg/rpc"
	"github.com/unc-network/unc-cli/pkg/types"
	"github.com/unc-network/unc-cli/pkg/utils"
	"github.com/unc-network/unc-cli/pkg/ux"
)

var ErrAccessKeyNotFound = errors.New("access key not found")

var verifyNetworkFlags networkoptions.NetworkFlags

func newVerifyKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify-key [account-id] [public-key]",
		Short: "Check that a public key is an access key of an account",
		Args:  cobra.MaximumNArgs(2),
		RunE:  verifyKey,
	}
	networkoptions.AddNetworkFlagsToCmd(cmd, &verifyNetworkFlags)
	return cmd
}

func publicKeyArg(cmd *cobra.Command, args []string, idx int) (types.PublicKey, error) {
	if len(args) > idx {
		return types.ParsePublicKey(args[idx])
	}
	if !prompts.IsInteractive() {
		return types.PublicKey{}, prompts.MissingError(cmd.CommandPath(), []prompts.MissingOpt{{Flag: "<public-key>"}})
	}
	return app.Prompt.CapturePublicKey("Enter the public key")
}

func verifyKey(cmd *cobra.Command, args []string) error {
	accountID, err := flags.AccountIDArg(app, cmd, args, 0, "Which account ID should the key be checked on?")
	if err != nil {
		return err
	}
	publicKey, err := publicKeyArg(cmd, args, 1)
	if err != nil {
		return err
	}
	c, err := resolveAccount(cmd, accountID, verifyNetworkFlags)
	if err != nil {
		return err
	}
	ctx, cancel := utils.GetAPIContext()
	defer cancel()
	key, err := c.prober.VerifyAccessKey(ctx, c.client, accountID, publicKey)
	switch {
	case rpc.IsHandlerCause(err, rpc.CauseUnknownAccessKey):
		return fmt.Errorf("public key <%s> on account <%s> on network <%s>: %w",
			publicKey, accountID, c.network.ConnectionName, ErrAccessKeyNotFound)
	case err != nil:
		return c.notFound(err)
	}
	markUsed(accountID, false)
	ux.Logger.GreenCheckmarkToUser("Public key <%s> is an access key of <%s> on <%s>: %s",
		publicKey, accountID, c.network.ConnectionName, describePermission(*key))
	return nil
}
