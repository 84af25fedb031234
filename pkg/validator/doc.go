// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package validator builds the validator reports of a network: the current
// epoch set with uptime, the next epoch set and the pledge proposals for the
// epoch after next, each with its seat price.
package validator
