// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package validatorcmd

import (
	"bytes"
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/require"

	"github.com/unc-network/unc-cli/pkg/types"
	"github.com/unc-network/unc-cli/pkg/validator"
)

func TestPrintProposals(t *testing.T) {
	require := require.New(t)
	report := &validator.ProposalsReport{
		SeatPrice:    types.OneUnc(),
		NewProposals: 1,
		Passing:      1,
		Records: []types.ProposalRecord{
			{AccountID: "alice.unc", Status: types.ProposalAccepted, Pledge: types.NewBalance(6), CurrentPledge: optional.Some(types.NewBalance(5)), NewPledge: optional.Some(types.NewBalance(7))},
			{AccountID: "bob.unc", Status: types.KickedOut, Pledge: types.NewBalance(1), CurrentPledge: optional.Some(types.NewBalance(1))},
			{AccountID: "carol.unc", Status: types.Rollover, Pledge: types.NewBalance(4)},
		},
	}
	var out bytes.Buffer
	require.NoError(printProposals(&out, report))
	s := out.String()
	require.Contains(s, "Proposals for the epoch after next (new: 1, passing: 1, expected seat price = 1 unc)")
	require.Contains(s, "alice.unc")
	require.Contains(s, "Proposal(Accepted)")
	require.Contains(s, "5 attounc")
	require.Contains(s, "7 attounc")
	require.NotContains(s, "6 attounc")
	require.NotContains(s, "4 attounc")
	require.Contains(s, "Kicked out")
}

func TestPrintNextValidators(t *testing.T) {
	require := require.New(t)
	report := &validator.NextValidatorsReport{
		Validators: []validator.NextValidator{
			{AccountID: "new.unc", Status: types.New, Pledge: optional.Some(types.NewBalance(3))},
			{AccountID: "old.unc", Status: types.KickedOut, PreviousPledge: optional.Some(types.NewBalance(2))},
		},
	}
	var out bytes.Buffer
	require.NoError(printNextValidators(&out, report))
	s := out.String()
	require.Contains(s, "Next validators (total: 1, seat price: 0 unc)")
	require.Contains(s, "new.unc")
	require.Contains(s, "old.unc")
}

func TestPrintCurrentValidators(t *testing.T) {
	require := require.New(t)
	report := &validator.CurrentValidatorsReport{
		SeatPrice: types.NewBalance(101),
		Validators: []validator.CurrentValidator{
			{AccountID: "v.unc", Pledge: types.NewBalance(200), NumProducedBlocks: 1500, NumExpectedBlocks: 2000},
			{AccountID: "idle.unc", Pledge: types.NewBalance(150)},
		},
	}
	var out bytes.Buffer
	require.NoError(printCurrentValidators(&out, report))
	s := out.String()
	require.Contains(s, "Validators (total: 2, seat price: 101 attounc)")
	require.Contains(s, "1_500")
	require.Contains(s, "2_000")
	require.Contains(s, "-")
}
