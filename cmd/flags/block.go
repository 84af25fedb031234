// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/unc-network/unc-cli/pkg/rpc"
)

const (
	blockHeightFlag = "block-height"
	blockHashFlag   = "block-hash"
	optimisticFlag  = "optimistic"
)

// BlockFlags selects the block a query is made against. Final when unset.
type BlockFlags struct {
	Height     uint64
	Hash       string
	Optimistic bool
	heightSet  bool
}

// AddBlockFlagsToCmd registers the block selector as its own help group.
func AddBlockFlagsToCmd(cmd *cobra.Command, block *BlockFlags) GroupedFlags {
	group := RegisterFlagGroup(cmd, "Block Flags (Select One)", func(set *pflag.FlagSet) {
		set.Uint64Var(&block.Height, blockHeightFlag, 0, "query the state at the given block height")
		set.StringVar(&block.Hash, blockHashFlag, "", "query the state at the given block hash")
		set.BoolVar(&block.Optimistic, optimisticFlag, false, "query the latest block, even if it is not final yet")
	})
	cmd.SetHelpFunc(WithGroupedHelp([]GroupedFlags{group}))

	existingPreRunE := cmd.PreRunE
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if existingPreRunE != nil {
			if err := existingPreRunE(cmd, args); err != nil {
				return err
			}
		}
		block.heightSet = cmd.Flags().Changed(blockHeightFlag)
		if !EnsureMutuallyExclusive([]bool{block.heightSet, block.Hash != "", block.Optimistic}) {
			return fmt.Errorf("only one of --%s, --%s and --%s can be given", blockHeightFlag, blockHashFlag, optimisticFlag)
		}
		return nil
	}
	return group
}

func (b BlockFlags) BlockReference() rpc.BlockReference {
	switch {
	case b.heightSet:
		return rpc.AtHeight(b.Height)
	case b.Hash != "":
		return rpc.AtHash(b.Hash)
	case b.Optimistic:
		return rpc.Optimistic()
	default:
		return rpc.Final()
	}
}

// EpochReference is the epoch containing the selected block, or the latest
// one for the final and optimistic heads.
func (b BlockFlags) EpochReference() rpc.EpochReference {
	if !b.heightSet && b.Hash == "" {
		return rpc.LatestEpoch()
	}
	return rpc.EpochAtBlock(b.BlockReference())
}

// EnsureMutuallyExclusive reports whether at most one of the flags is set.
func EnsureMutuallyExclusive(flags []bool) bool {
	set := 0
	for _, f := range flags {
		if f {
			set++
		}
	}
	return set <= 1
}
