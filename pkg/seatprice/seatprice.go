// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package seatprice computes the minimum pledge that wins a validator seat,
// following the rule the chain applies for a given protocol version.
package seatprice

import (
	"errors"
	"fmt"
	"slices"

	"github.com/unc-network/unc-cli/pkg/types"
)

// LegacyProtocolVersion is the first protocol version using the
// minimum pledge ratio rule instead of the seat-splitting search.
const LegacyProtocolVersion = 49

var (
	ErrNoPledges        = errors.New("no pledges")
	ErrZeroSeats        = errors.New("number of seats must be positive")
	ErrZeroDenominator  = errors.New("minimum pledge ratio has a zero denominator")
	ErrNotEnoughPledges = errors.New("not enough pledge to fill the seats")
)

// Find returns the seat price for pledges competing for maxSeats seats.
// pledges need not be sorted.
func Find(pledges []types.Balance, maxSeats uint64, ratio types.Ratio, protocolVersion uint32) (types.Balance, error) {
	if len(pledges) == 0 {
		return types.Balance{}, ErrNoPledges
	}
	if protocolVersion < LegacyProtocolVersion {
		return findLegacy(pledges, maxSeats)
	}
	return findByRatio(pledges, maxSeats, ratio)
}

// findByRatio: with free seats the price is the minimum ratio of the total
// pledge, otherwise one more than the smallest pledge that still gets a seat.
func findByRatio(pledges []types.Balance, maxSeats uint64, ratio types.Ratio) (types.Balance, error) {
	if ratio.Denominator == 0 {
		return types.Balance{}, ErrZeroDenominator
	}
	if maxSeats == 0 {
		return types.Balance{}, ErrZeroSeats
	}
	sorted := slices.Clone(pledges)
	slices.SortFunc(sorted, func(a, b types.Balance) int { return a.Cmp(b) })

	if uint64(len(sorted)) < maxSeats {
		total, err := types.SumBalances(sorted)
		if err != nil {
			return types.Balance{}, err
		}
		scaled, err := total.MulUint64(ratio.Numerator)
		if err != nil {
			return types.Balance{}, fmt.Errorf("seat price: %w", err)
		}
		return scaled.DivUint64(ratio.Denominator)
	}
	smallest := sorted[uint64(len(sorted))-maxSeats]
	return smallest.Add(types.NewBalance(1))
}

// findLegacy searches the largest price p such that the pledges, each split
// into floor(pledge/p) seats, fill at least maxSeats seats.
func findLegacy(pledges []types.Balance, maxSeats uint64) (types.Balance, error) {
	total, err := types.SumBalances(pledges)
	if err != nil {
		return types.Balance{}, err
	}
	seats := types.NewBalance(maxSeats)
	if total.Cmp(seats) < 0 {
		return types.Balance{}, fmt.Errorf("%w: total pledge %s, seats %d", ErrNotEnoughPledges, total, maxSeats)
	}
	if maxSeats == 0 {
		return types.Balance{}, ErrZeroSeats
	}

	one := types.NewBalance(1)
	left := one
	right, err := total.Add(one)
	if err != nil {
		return types.Balance{}, err
	}
	for {
		next, _ := left.Add(one)
		if next.Cmp(right) >= 0 {
			return left, nil
		}
		sum, _ := left.Add(right)
		mid, _ := sum.DivUint64(2)
		if fillsSeats(pledges, mid, maxSeats) {
			left = mid
		} else {
			right = mid
		}
	}
}

func fillsSeats(pledges []types.Balance, price types.Balance, maxSeats uint64) bool {
	var filled uint64
	for _, p := range pledges {
		n, _ := p.Div(price)
		if !n.IsUint64() {
			return true
		}
		filled += n.Uint64()
		if filled >= maxSeats {
			return true
		}
	}
	return false
}
