// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package keycmd

import (
	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/pkg/key"
)

var generateFlags saveFlags

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new seed phrase and its ed25519 key pair",
		Long: `Generates a fresh 12 word seed phrase and derives the ed25519 key pair at
m/44'/397'/0'. The implicit account id is the hex encoded public key.

Examples:
  unc key generate
  unc key generate --save --network testnet --account-id alice.testnet`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
	addSaveFlags(cmd, &generateFlags)
	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	kp, err := key.Generate()
	if err != nil {
		return err
	}
	return emit(cmd, generateFlags, kp)
}
