// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pledging lists validator pledges and the pledging pool contracts
// deployed on validator accounts.
package pledging

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/moznion/go-optional"
	"golang.org/x/sync/errgroup"

	"github.com/unc-network/unc-cli/pkg/constants"
	"github.com/unc-network/unc-cli/pkg/rpc"
	"github.com/unc-network/unc-cli/pkg/types"
	"github.com/unc-network/unc-cli/pkg/validator"
)

type Querier interface {
	rpc.Caller
	ValidatorInfo(ctx context.Context, epoch rpc.EpochReference) (*rpc.EpochValidatorInfo, error)
}

// RewardFeeFraction is the share of rewards a pool keeps.
type RewardFeeFraction struct {
	Numerator   uint32 `json:"numerator" yaml:"numerator"`
	Denominator uint32 `json:"denominator" yaml:"denominator"`
}

func (f RewardFeeFraction) String() string {
	if f.Denominator == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.2f%%", float64(f.Numerator)*100/float64(f.Denominator))
}

// PoolInfo describes a validator. Fee and Delegators are empty when the
// validator account does not run a pledging pool contract.
type PoolInfo struct {
	ValidatorID types.AccountID                    `json:"validator_id" yaml:"validator_id"`
	Pledge      types.Balance                      `json:"pledge" yaml:"pledge"`
	Fee         optional.Option[RewardFeeFraction] `json:"fee" yaml:"fee"`
	Delegators  optional.Option[uint64]            `json:"delegators" yaml:"delegators"`
}

type Options struct {
	// Concurrency bounds the validators queried at once. Defaults to
	// constants.DefaultPoolQueryConcurrency.
	Concurrency int
	// OnProgress is called after each validator with the number done so far.
	// Calls are serialized.
	OnProgress func(done, total int)
}

// ValidatorPledges returns the pledges of proposals, current and next
// validators of the latest epoch. Later sources override earlier ones.
func ValidatorPledges(ctx context.Context, q Querier) ([]types.ValidatorPledge, error) {
	info, err := q.ValidatorInfo(ctx, rpc.LatestEpoch())
	if err != nil {
		return nil, fmt.Errorf("failed to get epoch validators: %w", err)
	}
	return validator.Union(info.ProposalPledges(), info.CurrentPledges(), info.NextPledges()), nil
}

// ListPools queries the pool contract of every validator. Validators without
// a pool are listed with empty fields. Any other failure aborts the listing.
func ListPools(ctx context.Context, q Querier, opts Options) ([]PoolInfo, error) {
	pledges, err := ValidatorPledges(ctx, q)
	if err != nil {
		return nil, err
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = constants.DefaultPoolQueryConcurrency
	}

	var (
		mu   sync.Mutex
		done int
	)
	pools := make([]PoolInfo, len(pledges))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, p := range pledges {
		g.Go(func() error {
			info, err := poolInfo(gctx, q, p)
			if err != nil {
				return err
			}
			pools[i] = info
			if opts.OnProgress != nil {
				mu.Lock()
				done++
				opts.OnProgress(done, len(pledges))
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(pools, func(a, b PoolInfo) int {
		if c := b.Pledge.Cmp(a.Pledge); c != 0 {
			return c
		}
		return cmp.Compare(a.ValidatorID, b.ValidatorID)
	})
	return pools, nil
}

func poolInfo(ctx context.Context, q rpc.Caller, p types.ValidatorPledge) (PoolInfo, error) {
	fee, err := viewIfPool[RewardFeeFraction](ctx, q, p.AccountID, constants.RewardFeeFractionMethod)
	if err != nil {
		return PoolInfo{}, err
	}
	delegators, err := viewIfPool[uint64](ctx, q, p.AccountID, constants.NumberOfAccountsMethod)
	if err != nil {
		return PoolInfo{}, err
	}
	return PoolInfo{
		ValidatorID: p.AccountID,
		Pledge:      p.Pledge,
		Fee:         fee,
		Delegators:  delegators,
	}, nil
}

func viewIfPool[T any](ctx context.Context, q rpc.Caller, accountID types.AccountID, method string) (optional.Option[T], error) {
	v, err := rpc.CallView[T](ctx, q, accountID, method, nil, rpc.Final())
	switch {
	case err == nil:
		return optional.Some(v), nil
	case rpc.IsHandlerCause(err, rpc.CauseNoContractCode, rpc.CauseContractExecutionError):
		return optional.None[T](), nil
	default:
		return optional.None[T](), fmt.Errorf("failed to call %s on %s: %w", method, accountID, err)
	}
}

// DelegatedValidators returns the validator ids of the latest epoch with the
// ones found in used first, in used order. The rest follow sorted by id.
func DelegatedValidators(ctx context.Context, q Querier, used []types.AccountID) ([]types.AccountID, error) {
	pledges, err := ValidatorPledges(ctx, q)
	if err != nil {
		return nil, err
	}
	remaining := make(map[types.AccountID]struct{}, len(pledges))
	for _, p := range pledges {
		remaining[p.AccountID] = struct{}{}
	}
	out := make([]types.AccountID, 0, len(remaining))
	for _, id := range used {
		if _, ok := remaining[id]; ok {
			out = append(out, id)
			delete(remaining, id)
		}
	}
	rest := make([]types.AccountID, 0, len(remaining))
	for id := range remaining {
		rest = append(rest, id)
	}
	slices.Sort(rest)
	return append(out, rest...), nil
}
