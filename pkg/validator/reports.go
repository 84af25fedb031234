// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validator

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/moznion/go-optional"
	"golang.org/x/sync/errgroup"

	"github.com/unc-network/unc-cli/pkg/rpc"
	"github.com/unc-network/unc-cli/pkg/seatprice"
	"github.com/unc-network/unc-cli/pkg/types"
)

// Querier is the part of the RPC surface the reports read.
type Querier interface {
	ValidatorInfo(ctx context.Context, epoch rpc.EpochReference) (*rpc.EpochValidatorInfo, error)
	GenesisConfig(ctx context.Context) (*rpc.GenesisConfig, error)
	ProtocolConfig(ctx context.Context, ref rpc.BlockReference) (*rpc.ProtocolConfig, error)
}

// ProposalsReport describes the pledge proposals for the epoch after next.
type ProposalsReport struct {
	SeatPrice    types.Balance          `json:"seat_price" yaml:"seat_price"`
	NewProposals int                    `json:"new_proposals" yaml:"new_proposals"`
	Passing      int                    `json:"passing" yaml:"passing"`
	Records      []types.ProposalRecord `json:"records" yaml:"records"`
}

// CurrentValidator is a validator of the selected epoch with its production stats.
type CurrentValidator struct {
	AccountID         types.AccountID `json:"account_id" yaml:"account_id"`
	Pledge            types.Balance   `json:"pledge" yaml:"pledge"`
	NumProducedBlocks uint64          `json:"num_produced_blocks" yaml:"num_produced_blocks"`
	NumExpectedBlocks uint64          `json:"num_expected_blocks" yaml:"num_expected_blocks"`
	NumProducedChunks uint64          `json:"num_produced_chunks" yaml:"num_produced_chunks"`
	NumExpectedChunks uint64          `json:"num_expected_chunks" yaml:"num_expected_chunks"`
}

// Online is the percentage of expected blocks and chunks the validator
// produced. It is NaN when nothing was expected.
func (v CurrentValidator) Online() float64 {
	expected := v.NumExpectedBlocks + v.NumExpectedChunks
	if expected == 0 {
		return math.NaN()
	}
	produced := v.NumProducedBlocks + v.NumProducedChunks
	return float64(produced) * 100 / float64(expected)
}

type CurrentValidatorsReport struct {
	SeatPrice  types.Balance      `json:"seat_price" yaml:"seat_price"`
	Validators []CurrentValidator `json:"validators" yaml:"validators"`
}

// NextValidator is a row of the next epoch report. Kicked out rows carry
// only the previous pledge, New rows only the pledge.
type NextValidator struct {
	AccountID      types.AccountID                `json:"account_id" yaml:"account_id"`
	Status         types.ProposalStatus           `json:"status" yaml:"status"`
	PreviousPledge optional.Option[types.Balance] `json:"previous_pledge" yaml:"previous_pledge"`
	Pledge         optional.Option[types.Balance] `json:"pledge" yaml:"pledge"`
}

type NextValidatorsReport struct {
	SeatPrice  types.Balance   `json:"seat_price" yaml:"seat_price"`
	Validators []NextValidator `json:"validators" yaml:"validators"`
}

type seatParams struct {
	maxSeats        uint64
	ratio           types.Ratio
	protocolVersion uint32
}

func (p seatParams) price(pledges []types.Balance) (types.Balance, error) {
	if len(pledges) == 0 {
		return types.Balance{}, nil
	}
	price, err := seatprice.Find(pledges, p.maxSeats, p.ratio, p.protocolVersion)
	if err != nil {
		return types.Balance{}, fmt.Errorf("failed to compute seat price: %w", err)
	}
	return price, nil
}

// fetch loads the validators of epoch together with the seat parameters in
// force at that epoch. The three requests run concurrently and the first failure cancels the rest.
func fetch(ctx context.Context, q Querier, epoch rpc.EpochReference) (*rpc.EpochValidatorInfo, seatParams, error) {
	block, err := epoch.BlockReference()
	if err != nil {
		return nil, seatParams{}, err
	}
	var (
		info     *rpc.EpochValidatorInfo
		genesis  *rpc.GenesisConfig
		protocol *rpc.ProtocolConfig
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if info, err = q.ValidatorInfo(gctx, epoch); err != nil {
			return fmt.Errorf("failed to get validators: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if genesis, err = q.GenesisConfig(gctx); err != nil {
			return fmt.Errorf("failed to get genesis config: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if protocol, err = q.ProtocolConfig(gctx, block); err != nil {
			return fmt.Errorf("failed to get protocol config: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, seatParams{}, err
	}
	return info, seatParams{
		maxSeats:        protocol.MaxSeats(),
		ratio:           genesis.MinimumPledgeRatio,
		protocolVersion: protocol.ProtocolVersion,
	}, nil
}

func sortedByPledge(pledges []types.ValidatorPledge) []types.ValidatorPledge {
	out := slices.Clone(pledges)
	slices.SortStableFunc(out, func(a, b types.ValidatorPledge) int {
		return b.Pledge.Cmp(a.Pledge)
	})
	return out
}

func pledgesOf(list []types.ValidatorPledge) []types.Balance {
	out := make([]types.Balance, 0, len(list))
	for _, p := range list {
		out = append(out, p.Pledge)
	}
	return out
}

// Proposals joins the latest validator info into proposal records and
// applies the seat price of the candidate set.
func Proposals(ctx context.Context, q Querier) (*ProposalsReport, error) {
	info, params, err := fetch(ctx, q, rpc.LatestEpoch())
	if err != nil {
		return nil, err
	}
	proposals := info.ProposalPledges()
	agg := Aggregate(info.CurrentPledges(), info.NextPledges(), proposals)
	price, err := params.price(agg.CandidatePledges())
	if err != nil {
		return nil, err
	}
	records := agg.Resolve(price)
	report := &ProposalsReport{
		SeatPrice:    price,
		NewProposals: len(proposals),
		Records:      records,
	}
	for _, r := range records {
		if r.Status == types.ProposalAccepted || r.Status == types.Rollover {
			report.Passing++
		}
	}
	return report, nil
}

// CurrentValidators reports the validators of epoch, largest pledge first.
func CurrentValidators(ctx context.Context, q Querier, epoch rpc.EpochReference) (*CurrentValidatorsReport, error) {
	info, params, err := fetch(ctx, q, epoch)
	if err != nil {
		return nil, err
	}
	validators := make([]CurrentValidator, 0, len(info.CurrentValidators))
	for _, v := range info.CurrentValidators {
		validators = append(validators, CurrentValidator{
			AccountID:         v.AccountID,
			Pledge:            v.Pledge,
			NumProducedBlocks: v.NumProducedBlocks,
			NumExpectedBlocks: v.NumExpectedBlocks,
			NumProducedChunks: v.NumProducedChunks,
			NumExpectedChunks: v.NumExpectedChunks,
		})
	}
	slices.SortStableFunc(validators, func(a, b CurrentValidator) int {
		return b.Pledge.Cmp(a.Pledge)
	})
	price, err := params.price(pledgesOf(info.CurrentPledges()))
	if err != nil {
		return nil, err
	}
	return &CurrentValidatorsReport{SeatPrice: price, Validators: validators}, nil
}

// NextValidators reports the validators of the next epoch. Accounts already
// validating are Rewarded, the others New. Current validators missing from
// the next epoch follow as Kicked out.
func NextValidators(ctx context.Context, q Querier) (*NextValidatorsReport, error) {
	info, params, err := fetch(ctx, q, rpc.LatestEpoch())
	if err != nil {
		return nil, err
	}
	current := newPledgeMap(info.CurrentPledges())
	next := sortedByPledge(info.NextPledges())
	nextIDs := make(map[types.AccountID]struct{}, len(next))

	rows := make([]NextValidator, 0, len(next)+len(current.order))
	for _, v := range next {
		nextIDs[v.AccountID] = struct{}{}
		row := NextValidator{AccountID: v.AccountID, Status: types.New, Pledge: optional.Some(v.Pledge)}
		if prev, ok := current.get(v.AccountID); ok {
			row.Status = types.Rewarded
			row.PreviousPledge = optional.Some(prev)
		}
		rows = append(rows, row)
	}
	for _, id := range current.order {
		if _, ok := nextIDs[id]; ok {
			continue
		}
		prev, _ := current.get(id)
		rows = append(rows, NextValidator{AccountID: id, Status: types.KickedOut, PreviousPledge: optional.Some(prev)})
	}
	price, err := params.price(pledgesOf(next))
	if err != nil {
		return nil, err
	}
	return &NextValidatorsReport{SeatPrice: price, Validators: rows}, nil
}
