// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "fmt"

type finality string

const (
	finalityFinal      finality = "final"
	finalityOptimistic finality = "optimistic"
)

// BlockReference selects the block a query is evaluated at.
type BlockReference struct {
	finality finality
	height   uint64
	hash     string
}

func Final() BlockReference {
	return BlockReference{finality: finalityFinal}
}

func Optimistic() BlockReference {
	return BlockReference{finality: finalityOptimistic}
}

func AtHeight(height uint64) BlockReference {
	return BlockReference{height: height}
}

func AtHash(hash string) BlockReference {
	return BlockReference{hash: hash}
}

func (b BlockReference) String() string {
	switch {
	case b.finality != "":
		return string(b.finality)
	case b.hash != "":
		return b.hash
	}
	return fmt.Sprintf("#%d", b.height)
}

// addTo sets the block selector in query params. The zero value means final.
func (b BlockReference) addTo(params map[string]any) {
	switch {
	case b.finality != "":
		params["finality"] = string(b.finality)
	case b.hash != "":
		params["block_id"] = b.hash
	case b.height != 0:
		params["block_id"] = b.height
	default:
		params["finality"] = string(finalityFinal)
	}
}

// EpochReference selects the epoch of a validators request.
type EpochReference struct {
	block   *BlockReference
	epochID string
}

func LatestEpoch() EpochReference {
	return EpochReference{}
}

func EpochAtBlock(b BlockReference) EpochReference {
	return EpochReference{block: &b}
}

func EpochByID(epochID string) EpochReference {
	return EpochReference{epochID: epochID}
}

func (e EpochReference) params() any {
	switch {
	case e.epochID != "":
		return map[string]any{"epoch_id": e.epochID}
	case e.block != nil && e.block.hash != "":
		return map[string]any{"block_id": e.block.hash}
	case e.block != nil && e.block.height != 0:
		return map[string]any{"block_id": e.block.height}
	}
	return []any{nil}
}

// BlockReference returns the block that protocol parameters of the epoch are
// read at. The latest epoch maps to the final block. An epoch selected by id
// has no block to read at.
func (e EpochReference) BlockReference() (BlockReference, error) {
	switch {
	case e.epochID != "":
		return BlockReference{}, fmt.Errorf("epoch %s has no block reference", e.epochID)
	case e.block != nil:
		return *e.block, nil
	}
	return Final(), nil
}
