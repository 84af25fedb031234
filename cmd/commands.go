// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

// Command names exported for testing
const (
	// ValidatorsCmd is the validators command name
	ValidatorsCmd = "validators"

	// PledgingCmd is the pledging command name
	PledgingCmd = "pledging"

	// AccountCmd is the account command name
	AccountCmd = "account"

	// TokensCmd is the tokens command name
	TokensCmd = "tokens"

	// KeyCmd is the key command name
	KeyCmd = "key"

	// ConfigCmd is the config command name
	ConfigCmd = "config"
)
