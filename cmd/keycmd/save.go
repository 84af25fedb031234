// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package keycmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unc-network/unc-cli/pkg/account"
	"github.com/unc-network/unc-cli/pkg/config"
	"github.com/unc-network/unc-cli/pkg/key"
	"github.com/unc-network/unc-cli/pkg/networkoptions"
	"github.com/unc-network/unc-cli/pkg/types"
	"github.com/unc-network/unc-cli/pkg/utils"
	"github.com/unc-network/unc-cli/pkg/ux"
)

// saveFlags are shared by the commands producing a key pair.
type saveFlags struct {
	save         bool
	accountID    string
	networkFlags networkoptions.NetworkFlags
}

func addSaveFlags(cmd *cobra.Command, f *saveFlags) {
	cmd.Flags().BoolVar(&f.save, "save", false, "save the key pair to the keychain")
	cmd.Flags().StringVar(&f.accountID, "account-id", "", "account the key is saved for (the implicit account by default)")
	networkoptions.AddNetworkFlagsToCmd(cmd, &f.networkFlags)
}

// saveNetwork is the network the account lives on. Without --network the
// configured networks are probed in order; the user picks when none has it.
func saveNetwork(cmd *cobra.Command, f saveFlags, accountID types.AccountID) (config.NetworkConfig, error) {
	if f.networkFlags.Network != "" {
		return app.Networks.Get(f.networkFlags.Network)
	}
	names := app.Networks.OrderForAccounts([]types.AccountID{accountID})
	clients, err := app.Clients(names)
	if err != nil {
		return config.NetworkConfig{}, err
	}
	queriers := make([]account.Querier, 0, len(clients))
	for _, c := range clients {
		queriers = append(queriers, c)
	}
	ctx, cancel := utils.GetAPIContext()
	defer cancel()
	if q, ok := app.Prober(nil).FindNetwork(ctx, queriers, accountID); ok {
		return app.Networks.Get(q.NetworkName())
	}
	app.Log.Debug("account not found on any network")
	return networkoptions.GetNetworkFromCmdLineFlags(app, cmd, "Which network should the key be saved for?", f.networkFlags, []types.AccountID{accountID})
}

// emit prints kp and saves it when asked to.
func emit(cmd *cobra.Command, f saveFlags, kp *key.KeyPair) error {
	format, err := ux.ParseOutputFormat(app.Conf.OutputFormat())
	if err != nil {
		return err
	}
	if err := ux.Render(ux.Logger.Writer(), format, kp, func(w io.Writer) error {
		return printKeyPair(w, kp)
	}); err != nil {
		return err
	}
	if !f.save {
		return nil
	}
	accountID := kp.ImplicitAccountID
	if f.accountID != "" {
		if accountID, err = types.ParseAccountID(f.accountID); err != nil {
			return err
		}
	}
	network, err := saveNetwork(cmd, f, accountID)
	if err != nil {
		return err
	}
	res, err := app.Keychain().Save(network.NetworkName, accountID, kp)
	if err != nil {
		return fmt.Errorf("failed to save the key pair: %w", err)
	}
	ux.Logger.PrintToUser("%s", res)
	if err := app.UsedAccounts.MarkUsed(accountID, true); err != nil {
		app.Log.Warn("failed to update the used account list", zap.Error(err))
	}
	return nil
}

func printKeyPair(w io.Writer, kp *key.KeyPair) error {
	_, err := fmt.Fprintf(w,
		"Master Seed Phrase: %s\nSeed Phrase HD Path: %s\nImplicit Account ID: %s\nPublic Key: %s\nSECRET KEYPAIR: %s\n",
		kp.MasterSeedPhrase, kp.SeedPhraseHDPath, kp.ImplicitAccountID, kp.PublicKey, kp.PrivateKey,
	)
	return err
}
