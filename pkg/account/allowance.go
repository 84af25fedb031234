// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package account

import (
	"context"
	"fmt"

	"github.com/unc-network/unc-cli/pkg/rpc"
	"github.com/unc-network/unc-cli/pkg/types"
)

// TransferAllowance is the part of a balance that can be sent away.
type TransferAllowance struct {
	AccountID      types.AccountID
	Liquid         types.Balance
	Locked         types.Balance
	StoragePledge  types.Balance
	PessimisticFee types.Balance
}

// LiquidStoragePledge is the storage pledge not covered by the locked balance.
func (a TransferAllowance) LiquidStoragePledge() types.Balance {
	return a.StoragePledge.SaturatingSub(a.Locked)
}

func (a TransferAllowance) Allowance() types.Balance {
	return a.Liquid.SaturatingSub(a.LiquidStoragePledge()).SaturatingSub(a.PessimisticFee)
}

func (a TransferAllowance) String() string {
	return fmt.Sprintf(
		"%s account has %s available for transfer (the total balance is %s, but %s is locked for storage and the transfer transaction fee is ~%s)",
		a.AccountID,
		types.UncToken(a.Allowance()),
		types.UncToken(a.Liquid),
		types.UncToken(a.LiquidStoragePledge()),
		types.UncToken(a.PessimisticFee),
	)
}

// TransferAllowance computes the allowance of accountID at ref. Implicit
// accounts that were never funded have a zero allowance. Unknown named
// accounts wrap ErrNotFound.
func (p Prober) TransferAllowance(ctx context.Context, q Querier, accountID types.AccountID, ref rpc.BlockReference) (*TransferAllowance, error) {
	view, err := p.GetAccountState(ctx, q, accountID, ref)
	switch {
	case rpc.IsHandlerCause(err, rpc.CauseUnknownAccount) && accountID.IsImplicit():
		return &TransferAllowance{AccountID: accountID}, nil
	case rpc.IsHandlerCause(err, rpc.CauseUnknownAccount):
		return nil, fmt.Errorf("account <%s> does not exist on network <%s>: %w", accountID, q.NetworkName(), ErrNotFound)
	case err != nil:
		return nil, err
	}
	cfg, err := q.ProtocolConfig(ctx, rpc.Final())
	if err != nil {
		return nil, fmt.Errorf("failed to get protocol config: %w", err)
	}
	storage, err := cfg.RuntimeConfig.StorageAmountPerByte.MulUint64(view.StorageUsage)
	if err != nil {
		return nil, fmt.Errorf("storage pledge of %s: %w", accountID, err)
	}
	return &TransferAllowance{
		AccountID:      accountID,
		Liquid:         view.Amount,
		Locked:         view.Pledging,
		StoragePledge:  storage,
		PessimisticFee: types.OneMilliUnc(),
	}, nil
}
