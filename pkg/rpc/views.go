// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"encoding/json"
	"fmt"

	"github.com/moznion/go-optional"

	"github.com/unc-network/unc-cli/pkg/types"
)

type AccountView struct {
	Amount       types.Balance `json:"amount"`
	Pledging     types.Balance `json:"pledging"`
	CodeHash     string        `json:"code_hash"`
	StorageUsage uint64        `json:"storage_usage"`
	BlockHeight  uint64        `json:"block_height"`
	BlockHash    string        `json:"block_hash"`
}

type FunctionCallPermission struct {
	Allowance   optional.Option[types.Balance] `json:"allowance"`
	ReceiverID  string                         `json:"receiver_id"`
	MethodNames []string                       `json:"method_names"`
}

// AccessKeyPermission is either full access or a function call permission.
type AccessKeyPermission struct {
	FunctionCall *FunctionCallPermission
}

func (p AccessKeyPermission) IsFullAccess() bool {
	return p.FunctionCall == nil
}

func (p *AccessKeyPermission) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "FullAccess" {
			return fmt.Errorf("unknown access key permission %q", s)
		}
		p.FunctionCall = nil
		return nil
	}
	var fc struct {
		FunctionCall *FunctionCallPermission `json:"FunctionCall"`
	}
	if err := json.Unmarshal(data, &fc); err != nil {
		return err
	}
	if fc.FunctionCall == nil {
		return fmt.Errorf("unknown access key permission %s", data)
	}
	p.FunctionCall = fc.FunctionCall
	return nil
}

func (p AccessKeyPermission) MarshalJSON() ([]byte, error) {
	if p.IsFullAccess() {
		return json.Marshal("FullAccess")
	}
	return json.Marshal(map[string]*FunctionCallPermission{"FunctionCall": p.FunctionCall})
}

type AccessKeyView struct {
	Nonce       uint64              `json:"nonce"`
	Permission  AccessKeyPermission `json:"permission"`
	BlockHeight uint64              `json:"block_height"`
	BlockHash   string              `json:"block_hash"`
}

type AccessKeyInfo struct {
	PublicKey types.PublicKey `json:"public_key"`
	AccessKey AccessKeyView   `json:"access_key"`
}

type AccessKeyList struct {
	Keys        []AccessKeyInfo `json:"keys"`
	BlockHeight uint64          `json:"block_height"`
	BlockHash   string          `json:"block_hash"`
}

// CallResult is the outcome of a view function call.
type CallResult struct {
	Result      []byte
	Logs        []string
	BlockHeight uint64
	BlockHash   string
}

type callResultWire struct {
	Result      []int    `json:"result"`
	Logs        []string `json:"logs"`
	Error       string   `json:"error"`
	BlockHeight uint64   `json:"block_height"`
	BlockHash   string   `json:"block_hash"`
}

// ParseJSON decodes the returned bytes as JSON into out.
func (r *CallResult) ParseJSON(out any) error {
	if err := json.Unmarshal(r.Result, out); err != nil {
		return fmt.Errorf("failed to parse return value of view function call: %w", err)
	}
	return nil
}

type ValidatorPledgeView struct {
	AccountID types.AccountID `json:"account_id"`
	PublicKey string          `json:"public_key"`
	Pledge    types.Balance   `json:"pledge"`
}

func (v ValidatorPledgeView) ValidatorPledge() types.ValidatorPledge {
	return types.ValidatorPledge{AccountID: v.AccountID, Pledge: v.Pledge}
}

type CurrentEpochValidatorInfo struct {
	AccountID         types.AccountID `json:"account_id"`
	PublicKey         string          `json:"public_key"`
	IsSlashed         bool            `json:"is_slashed"`
	Pledge            types.Balance   `json:"pledge"`
	Shards            []uint64        `json:"shards"`
	NumProducedBlocks uint64          `json:"num_produced_blocks"`
	NumExpectedBlocks uint64          `json:"num_expected_blocks"`
	NumProducedChunks uint64          `json:"num_produced_chunks"`
	NumExpectedChunks uint64          `json:"num_expected_chunks"`
}

type NextEpochValidatorInfo struct {
	AccountID types.AccountID `json:"account_id"`
	PublicKey string          `json:"public_key"`
	Pledge    types.Balance   `json:"pledge"`
	Shards    []uint64        `json:"shards"`
}

type ValidatorKickoutView struct {
	AccountID types.AccountID `json:"account_id"`
	Reason    json.RawMessage `json:"reason"`
}

type EpochValidatorInfo struct {
	CurrentValidators []CurrentEpochValidatorInfo `json:"current_validators"`
	NextValidators    []NextEpochValidatorInfo    `json:"next_validators"`
	CurrentProposals  []ValidatorPledgeView       `json:"current_pledge_proposals"`
	PrevEpochKickout  []ValidatorKickoutView      `json:"prev_epoch_kickout"`
	EpochStartHeight  uint64                      `json:"epoch_start_height"`
	EpochHeight       uint64                      `json:"epoch_height"`
}

// CurrentPledges returns the current validators as pledges, in node order.
func (e *EpochValidatorInfo) CurrentPledges() []types.ValidatorPledge {
	out := make([]types.ValidatorPledge, 0, len(e.CurrentValidators))
	for _, v := range e.CurrentValidators {
		out = append(out, types.ValidatorPledge{AccountID: v.AccountID, Pledge: v.Pledge})
	}
	return out
}

// NextPledges returns the next epoch validators as pledges, in node order.
func (e *EpochValidatorInfo) NextPledges() []types.ValidatorPledge {
	out := make([]types.ValidatorPledge, 0, len(e.NextValidators))
	for _, v := range e.NextValidators {
		out = append(out, types.ValidatorPledge{AccountID: v.AccountID, Pledge: v.Pledge})
	}
	return out
}

// ProposalPledges returns the pending pledge proposals, in node order.
func (e *EpochValidatorInfo) ProposalPledges() []types.ValidatorPledge {
	out := make([]types.ValidatorPledge, 0, len(e.CurrentProposals))
	for _, v := range e.CurrentProposals {
		out = append(out, v.ValidatorPledge())
	}
	return out
}

type GenesisConfig struct {
	ProtocolVersion                 uint32      `json:"protocol_version"`
	ChainID                         string      `json:"chain_id"`
	GenesisHeight                   uint64      `json:"genesis_height"`
	EpochLength                     uint64      `json:"epoch_length"`
	NumBlockProducerSeats           uint64      `json:"num_block_producer_seats"`
	AvgHiddenValidatorSeatsPerShard []uint64    `json:"avg_hidden_validator_seats_per_shard"`
	MinimumPledgeRatio              types.Ratio `json:"minimum_pledge_ratio"`
}

type RuntimeConfig struct {
	StorageAmountPerByte types.Balance `json:"storage_amount_per_byte"`
}

type ProtocolConfig struct {
	ProtocolVersion                 uint32        `json:"protocol_version"`
	ChainID                         string        `json:"chain_id"`
	EpochLength                     uint64        `json:"epoch_length"`
	NumBlockProducerSeats           uint64        `json:"num_block_producer_seats"`
	AvgHiddenValidatorSeatsPerShard []uint64      `json:"avg_hidden_validator_seats_per_shard"`
	MinimumPledgeRatio              types.Ratio   `json:"minimum_pledge_ratio"`
	RuntimeConfig                   RuntimeConfig `json:"runtime_config"`
}

// MaxSeats is the number of block producer seats plus the hidden validator
// seats of every shard.
func (p *ProtocolConfig) MaxSeats() uint64 {
	seats := p.NumBlockProducerSeats
	for _, s := range p.AvgHiddenValidatorSeatsPerShard {
		seats += s
	}
	return seats
}
