// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package pledgingcmd

import (
	"bytes"
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/require"

	"github.com/unc-network/unc-cli/pkg/pledging"
	"github.com/unc-network/unc-cli/pkg/types"
)

func TestPrintPools(t *testing.T) {
	require := require.New(t)
	report := poolsReport{
		Network: "testnet",
		Pools: []pledging.PoolInfo{
			{
				ValidatorID: "pool.testnet",
				Pledge:      types.OneUnc(),
				Fee:         optional.Some(pledging.RewardFeeFraction{Numerator: 1, Denominator: 10}),
				Delegators:  optional.Some[uint64](1234),
			},
			{ValidatorID: "solo.testnet", Pledge: types.NewBalance(10)},
		},
	}
	var out bytes.Buffer
	require.NoError(printPools(&out, report))
	s := out.String()
	require.Contains(s, "Validators on <testnet> (total: 2)")
	require.Contains(s, "10.00%")
	require.Contains(s, "1_234")
	require.Contains(s, "1 unc")
	require.Contains(s, "solo.testnet")
}

func TestPrintIDs(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printIDs(&out, []types.AccountID{"a.unc", "b.unc"}))
	require.Equal(t, "a.unc\nb.unc\n", out.String())
}
