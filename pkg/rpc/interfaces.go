// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"

	"github.com/unc-network/unc-cli/pkg/types"
)

// Caller invokes contract view methods.
type Caller interface {
	CallFunction(ctx context.Context, accountID types.AccountID, method string, args []byte, ref BlockReference) (*CallResult, error)
}

// Querier is the full query surface of Client.
type Querier interface {
	Caller
	NetworkName() string
	ViewAccount(ctx context.Context, accountID types.AccountID, ref BlockReference) (*AccountView, error)
	ViewAccessKey(ctx context.Context, accountID types.AccountID, publicKey types.PublicKey, ref BlockReference) (*AccessKeyView, error)
	ViewAccessKeyList(ctx context.Context, accountID types.AccountID, ref BlockReference) (*AccessKeyList, error)
	ValidatorInfo(ctx context.Context, epoch EpochReference) (*EpochValidatorInfo, error)
	GenesisConfig(ctx context.Context) (*GenesisConfig, error)
	ProtocolConfig(ctx context.Context, ref BlockReference) (*ProtocolConfig, error)
}

var _ Querier = (*Client)(nil)
