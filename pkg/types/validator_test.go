// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/json"
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/require"
)

func TestProposalRecordJSON(t *testing.T) {
	require := require.New(t)

	out, err := json.Marshal([]ProposalRecord{
		{AccountID: "a.unc", Status: Rollover, Pledge: NewBalance(700), CurrentPledge: optional.Some(NewBalance(500))},
		{AccountID: "p.unc", Status: ProposalDeclined, NewPledge: optional.Some(NewBalance(800))},
	})
	require.NoError(err)
	require.JSONEq(`[
		{"account_id":"a.unc","status":"Rollover","pledge":"700","current_pledge":"500"},
		{"account_id":"p.unc","status":"Proposal(Declined)","pledge":"0","new_pledge":"800"}
	]`, string(out))
}

func TestProposalRecordEffectivePledge(t *testing.T) {
	require := require.New(t)

	r := ProposalRecord{Pledge: NewBalance(700), CurrentPledge: optional.Some(NewBalance(500))}
	require.Equal(NewBalance(700), r.EffectivePledge())

	r.NewPledge = optional.Some(NewBalance(900))
	require.Equal(NewBalance(900), r.EffectivePledge())
}
