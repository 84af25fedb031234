// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBalance(t *testing.T) {
	require := require.New(t)

	b, err := ParseBalance("340282366920938463463374607431768211455")
	require.NoError(err)
	require.Equal("340282366920938463463374607431768211455", b.String())

	_, err = ParseBalance("340282366920938463463374607431768211456")
	require.ErrorIs(err, ErrBalanceOverflow)

	_, err = ParseBalance("")
	require.ErrorIs(err, ErrInvalidBalance)

	_, err = ParseBalance("12a")
	require.ErrorIs(err, ErrInvalidBalance)
}

func TestBalanceArithmetic(t *testing.T) {
	require := require.New(t)

	a := NewBalance(1000)
	b := NewBalance(300)

	sum, err := a.Add(b)
	require.NoError(err)
	require.Equal("1300", sum.String())

	require.Equal("700", a.SaturatingSub(b).String())
	require.True(b.SaturatingSub(a).IsZero())

	q, err := a.Div(b)
	require.NoError(err)
	require.Equal("3", q.String())

	_, err = a.Div(Balance{})
	require.ErrorIs(err, ErrDivisionByZero)

	require.Equal(1, a.Cmp(b))
	require.Equal(-1, b.Cmp(a))
	require.Zero(a.Cmp(NewBalance(1000)))

	_, err = MustParseBalance("340282366920938463463374607431768211455").Add(NewBalance(1))
	require.ErrorIs(err, ErrBalanceOverflow)
}

func TestBalanceJSON(t *testing.T) {
	require := require.New(t)

	var v struct {
		Amount Balance `json:"amount"`
		Locked Balance `json:"locked"`
	}
	require.NoError(json.Unmarshal([]byte(`{"amount":"100000000000000000000000000","locked":42}`), &v))
	require.Equal("100000000000000000000000000", v.Amount.String())
	require.Equal(uint64(42), v.Locked.Uint64())

	out, err := json.Marshal(v.Amount)
	require.NoError(err)
	require.JSONEq(`"100000000000000000000000000"`, string(out))
}

func TestSumBalances(t *testing.T) {
	require := require.New(t)

	total, err := SumBalances([]Balance{NewBalance(1), NewBalance(2), NewBalance(3)})
	require.NoError(err)
	require.Equal("6", total.String())

	total, err = SumBalances(nil)
	require.NoError(err)
	require.True(total.IsZero())
}
