// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package accountcmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/cmd/flags"
	"github.com/unc-network/unc-cli/pkg/account"
	"github.com/unc-network/unc-cli/pkg/networkoptions"
	"github.com/unc-network/unc-cli/pkg/rpc"
	"github.com/unc-network/unc-cli/pkg/types"
	"github.com/unc-network/unc-cli/pkg/utils"
	"github.com/unc-network/unc-cli/pkg/ux"
)

var (
	viewNetworkFlags networkoptions.NetworkFlags
	viewBlockFlags   flags.BlockFlags
)

type accountSummary struct {
	AccountID    types.AccountID     `json:"account_id" yaml:"account_id"`
	Network      string              `json:"network" yaml:"network"`
	BlockHeight  uint64              `json:"block_height" yaml:"block_height"`
	BlockHash    string              `json:"block_hash" yaml:"block_hash"`
	Balance      types.Balance       `json:"balance" yaml:"balance"`
	Pledging     types.Balance       `json:"pledging" yaml:"pledging"`
	StorageUsage uint64              `json:"storage_usage" yaml:"storage_usage"`
	CodeHash     string              `json:"code_hash" yaml:"code_hash"`
	AccessKeys   []rpc.AccessKeyInfo `json:"access_keys" yaml:"access_keys"`
}

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [account-id]",
		Short: "View the properties of an account",
		Long: `Shows the balance, pledge, storage usage, contract code hash and access keys
of an account at the given block (the latest final block by default).`,
		Args: cobra.MaximumNArgs(1),
		RunE: viewAccount,
	}
	networkoptions.AddNetworkFlagsToCmd(cmd, &viewNetworkFlags)
	flags.AddBlockFlagsToCmd(cmd, &viewBlockFlags)
	return cmd
}

func viewAccount(cmd *cobra.Command, args []string) error {
	accountID, err := flags.AccountIDArg(app, cmd, args, 0, "What Account ID do you need to view?")
	if err != nil {
		return err
	}
	c, err := resolveAccount(cmd, accountID, viewNetworkFlags)
	if err != nil {
		return err
	}
	ctx, cancel := utils.GetAPIContext()
	defer cancel()
	ref := viewBlockFlags.BlockReference()
	view, err := c.prober.GetAccountState(ctx, c.client, accountID, ref)
	if err != nil {
		return c.notFound(err)
	}
	// keys are read at the block the account was read at
	keys, err := account.AccessKeys(ctx, c.client, accountID, rpc.AtHash(view.BlockHash))
	if err != nil {
		return err
	}
	markUsed(accountID, false)

	summary := accountSummary{
		AccountID:    accountID,
		Network:      c.network.ConnectionName,
		BlockHeight:  view.BlockHeight,
		BlockHash:    view.BlockHash,
		Balance:      view.Amount,
		Pledging:     view.Pledging,
		StorageUsage: view.StorageUsage,
		CodeHash:     view.CodeHash,
		AccessKeys:   keys.Keys,
	}
	format, err := ux.ParseOutputFormat(app.Conf.OutputFormat())
	if err != nil {
		return err
	}
	return ux.Render(ux.Logger.Writer(), format, summary, func(w io.Writer) error {
		return printSummary(w, summary)
	})
}

func printSummary(w io.Writer, s accountSummary) error {
	t := ux.NewTable(w)
	rows := [][2]string{
		{"Native account balance", types.UncToken(s.Balance).String()},
		{"Validator pledge", types.UncToken(s.Pledging).String()},
		{"Storage used by the account", fmt.Sprintf("%s bytes", ux.ConvertToStringWithThousandSeparator(s.StorageUsage))},
		{"Contract (SHA-256 checksum hex)", s.CodeHash},
		{"Access keys", fmt.Sprintf("%d", len(s.AccessKeys))},
	}
	for _, r := range rows {
		if err := t.AppendRow(r[0], r[1]); err != nil {
			return err
		}
	}
	for _, k := range s.AccessKeys {
		if err := t.AppendRow(k.PublicKey.String(), describePermission(k.AccessKey)); err != nil {
			return err
		}
	}
	title := fmt.Sprintf("Account details for <%s> at block #%d (%s) on <%s>", s.AccountID, s.BlockHeight, s.BlockHash, s.Network)
	return t.RenderWithTitle(w, title)
}

func describePermission(k rpc.AccessKeyView) string {
	if k.Permission.IsFullAccess() {
		return fmt.Sprintf("full access (nonce %d)", k.Nonce)
	}
	fc := k.Permission.FunctionCall
	methods := "any method"
	if len(fc.MethodNames) > 0 {
		methods = fmt.Sprintf("%v", fc.MethodNames)
	}
	allowance := "unlimited"
	if fc.Allowance.IsSome() {
		allowance = types.UncToken(fc.Allowance.Unwrap()).String()
	}
	return fmt.Sprintf("only %s on <%s> with %s allowance (nonce %d)", methods, fc.ReceiverID, allowance, k.Nonce)
}
