// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validator

import (
	"slices"

	"github.com/moznion/go-optional"

	"github.com/unc-network/unc-cli/pkg/types"
)

// pledgeMap is an account to pledge dictionary that remembers the order in
// which accounts were first inserted. Later writes replace the pledge.
type pledgeMap struct {
	order   []types.AccountID
	pledges map[types.AccountID]types.Balance
}

func newPledgeMap(pledges ...[]types.ValidatorPledge) *pledgeMap {
	m := &pledgeMap{pledges: map[types.AccountID]types.Balance{}}
	for _, list := range pledges {
		for _, p := range list {
			m.set(p.AccountID, p.Pledge)
		}
	}
	return m
}

func (m *pledgeMap) set(id types.AccountID, pledge types.Balance) {
	if _, ok := m.pledges[id]; !ok {
		m.order = append(m.order, id)
	}
	m.pledges[id] = pledge
}

func (m *pledgeMap) get(id types.AccountID) (types.Balance, bool) {
	p, ok := m.pledges[id]
	return p, ok
}

// Aggregation is the join of current validators, next validators and pledge
// proposals before the seat price is known.
type Aggregation struct {
	records    []types.ProposalRecord
	candidates []types.Balance
}

// Aggregate merges the next validators with the proposals (a proposal
// supersedes the next epoch pledge) into the seat candidates. Candidates with
// a proposal are ProposalAccepted, the others Rollover, including next
// validators that do not validate the current epoch. Current validators that
// are not candidates are KickedOut. Every record carries the current epoch
// pledge of its account, if any.
func Aggregate(current, next, proposals []types.ValidatorPledge) *Aggregation {
	currentMap := newPledgeMap(current)
	proposalMap := newPledgeMap(proposals)
	merged := newPledgeMap(next, proposals)

	a := &Aggregation{
		records:    make([]types.ProposalRecord, 0, len(merged.order)+len(currentMap.order)),
		candidates: make([]types.Balance, 0, len(merged.order)),
	}
	for _, id := range merged.order {
		pledge, _ := merged.get(id)
		a.candidates = append(a.candidates, pledge)
		record := types.ProposalRecord{
			AccountID: id,
			Status:    types.Rollover,
			Pledge:    pledge,
		}
		if held, ok := currentMap.get(id); ok {
			record.CurrentPledge = optional.Some(held)
		}
		if proposed, ok := proposalMap.get(id); ok {
			record.Status = types.ProposalAccepted
			record.NewPledge = optional.Some(proposed)
		}
		a.records = append(a.records, record)
	}
	for _, id := range currentMap.order {
		if _, ok := merged.get(id); ok {
			continue
		}
		pledge, _ := currentMap.get(id)
		a.records = append(a.records, types.ProposalRecord{
			AccountID:     id,
			Status:        types.KickedOut,
			Pledge:        pledge,
			CurrentPledge: optional.Some(pledge),
		})
	}
	return a
}

// CandidatePledges returns the pledges competing for seats, the input of the seat price.
func (a *Aggregation) CandidatePledges() []types.Balance {
	return slices.Clone(a.candidates)
}

// Resolve applies seatPrice and returns the records sorted by effective
// pledge, largest first. Ties keep insertion order. Accepted proposals at or
// below the price become ProposalDeclined and Rollover records at or below it
// become KickedOut.
func (a *Aggregation) Resolve(seatPrice types.Balance) []types.ProposalRecord {
	out := slices.Clone(a.records)
	for i := range out {
		r := &out[i]
		switch r.Status {
		case types.ProposalAccepted:
			if r.NewPledge.Unwrap().Cmp(seatPrice) <= 0 {
				r.Status = types.ProposalDeclined
			}
		case types.Rollover:
			if r.Pledge.Cmp(seatPrice) <= 0 {
				r.Status = types.KickedOut
			}
		}
	}
	slices.SortStableFunc(out, func(x, y types.ProposalRecord) int {
		return y.EffectivePledge().Cmp(x.EffectivePledge())
	})
	return out
}

// AggregateProposals is Aggregate followed by Resolve.
func AggregateProposals(current, next, proposals []types.ValidatorPledge, seatPrice types.Balance) []types.ProposalRecord {
	return Aggregate(current, next, proposals).Resolve(seatPrice)
}

// Union joins pledge lists into one entry per account, in order of first
// appearance. A later list overrides the pledge of an earlier one.
func Union(lists ...[]types.ValidatorPledge) []types.ValidatorPledge {
	m := newPledgeMap(lists...)
	out := make([]types.ValidatorPledge, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, types.ValidatorPledge{AccountID: id, Pledge: m.pledges[id]})
	}
	return out
}
