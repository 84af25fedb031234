// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package keycmd

import (
	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/pkg/constants"
	"github.com/unc-network/unc-cli/pkg/key"
	"github.com/unc-network/unc-cli/pkg/prompts"
)

var (
	seedPhraseFlags saveFlags
	seedPhrase      string
	seedPhrasePath  string
)

func newFromSeedPhraseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from-seed-phrase",
		Short: "Derive the ed25519 key pair of a seed phrase",
		Args:  cobra.NoArgs,
		RunE:  runFromSeedPhrase,
	}
	cmd.Flags().StringVar(&seedPhrase, "seed-phrase", "", "BIP-39 seed phrase (read from "+constants.EnvPrefix+"_SEED_PHRASE when unset)")
	cmd.Flags().StringVar(&seedPhrasePath, "hd-path", constants.DefaultSeedPhraseHDPath, "SLIP-0010 derivation path")
	addSaveFlags(cmd, &seedPhraseFlags)
	return cmd
}

func runFromSeedPhrase(cmd *cobra.Command, _ []string) error {
	phrase := seedPhrase
	if phrase == "" {
		phrase = app.Conf.GetConfigStringValue(constants.ConfigSeedPhraseKey)
	}
	err := prompts.NewValidator(cmd.CommandPath()).
		Require(&phrase, prompts.MissingOpt{
			Flag:   "--seed-phrase",
			Env:    constants.EnvPrefix + "_SEED_PHRASE",
			Prompt: "Enter the seed-phrase for this account",
		}).
		Resolve(func(m prompts.MissingOpt) (string, error) {
			return app.Prompt.CaptureString(m.Prompt)
		})
	if err != nil {
		return err
	}
	kp, err := key.FromSeedPhrase(phrase, seedPhrasePath)
	if err != nil {
		return err
	}
	return emit(cmd, seedPhraseFlags, kp)
}
