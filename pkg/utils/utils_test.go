// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/unc-network/unc-cli/pkg/types"
)

func TestAPIContextHasDeadline(t *testing.T) {
	require := require.New(t)
	ctx, cancel := GetAPIContext()
	defer cancel()
	deadline, ok := ctx.Deadline()
	require.True(ok)
	require.WithinDuration(time.Now(), deadline, time.Minute)

	large, cancelLarge := GetAPILargeContext()
	defer cancelLarge()
	largeDeadline, ok := large.Deadline()
	require.True(ok)
	require.True(largeDeadline.After(deadline))
}

func TestAccountIDsToStrings(t *testing.T) {
	require.Equal(t, []string{"a.unc", "b.unc"}, AccountIDsToStrings([]types.AccountID{"a.unc", "b.unc"}))
	require.Empty(t, AccountIDsToStrings(nil))
}
