// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"context"

	"github.com/unc-network/unc-cli/pkg/constants"
)

// GetAPIContext returns a context bounding a single round of RPC queries.
func GetAPIContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), constants.APIRequestTimeout)
}

// GetAPILargeContext is GetAPIContext for fan-outs over many contracts.
func GetAPILargeContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), constants.APIRequestLargeTimeout)
}
