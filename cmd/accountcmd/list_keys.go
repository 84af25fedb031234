// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package accountcmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/cmd/flags"
	"github.com/unc-network/unc-cli/pkg/account"
	"github.com/unc-network/unc-cli/pkg/networkoptions"
	"github.com/unc-network/unc-cli/pkg/rpc"
	"github.com/unc-network/unc-cli/pkg/utils"
	"github.com/unc-network/unc-cli/pkg/ux"
)

var (
	listKeysNetworkFlags networkoptions.NetworkFlags
	listKeysBlockFlags   flags.BlockFlags
)

func newListKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-keys [account-id]",
		Short: "List the access keys of an account",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listKeys,
	}
	networkoptions.AddNetworkFlagsToCmd(cmd, &listKeysNetworkFlags)
	flags.AddBlockFlagsToCmd(cmd, &listKeysBlockFlags)
	return cmd
}

func listKeys(cmd *cobra.Command, args []string) error {
	accountID, err := flags.AccountIDArg(app, cmd, args, 0, "Which account ID do you need to list the access keys of?")
	if err != nil {
		return err
	}
	c, err := resolveAccount(cmd, accountID, listKeysNetworkFlags)
	if err != nil {
		return err
	}
	ctx, cancel := utils.GetAPIContext()
	defer cancel()
	list, err := account.AccessKeys(ctx, c.client, accountID, listKeysBlockFlags.BlockReference())
	if err != nil {
		return c.notFound(err)
	}
	markUsed(accountID, false)
	format, err := ux.ParseOutputFormat(app.Conf.OutputFormat())
	if err != nil {
		return err
	}
	return ux.Render(ux.Logger.Writer(), format, list, func(w io.Writer) error {
		return printAccessKeys(w, c.accountID.String(), list)
	})
}

func printAccessKeys(w io.Writer, accountID string, list *rpc.AccessKeyList) error {
	t := ux.NewTable(w, "#", "Public Key", "Nonce", "Permissions")
	for i, k := range list.Keys {
		if err := t.AppendRow(
			strconv.Itoa(i+1),
			k.PublicKey.String(),
			strconv.FormatUint(k.AccessKey.Nonce, 10),
			describePermission(k.AccessKey),
		); err != nil {
			return err
		}
	}
	title := fmt.Sprintf("Number of access keys of <%s>: %d (block #%d)", accountID, len(list.Keys), list.BlockHeight)
	return t.RenderWithTitle(w, title)
}
