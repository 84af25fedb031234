// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	DefaultPerms755        = 0o755
	WriteReadReadPerms     = 0o644
	WriteReadUserOnlyPerms = 0o600
	UserOnlyDirPerms       = 0o700

	BaseDirName = ".unc-cli"
	LogDir      = "logs"
	LogFileName = "unc.log"

	CredentialsDirName      = ".unc-credentials"
	UsedAccountListFileName = "accounts.json"
	NetworkConfigFileName   = "config.toml"
	KeyFileSuffix           = ".json"

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	APIRequestTimeout      = 30 * time.Second
	APIRequestLargeTimeout = 2 * time.Minute

	// DefaultRPCRequestsPerSecond bounds the client side request rate per endpoint.
	DefaultRPCRequestsPerSecond = 20
	DefaultRPCBurst             = 40

	// DefaultPoolQueryConcurrency is the number of pledging pool view calls in flight.
	DefaultPoolQueryConcurrency = 10

	// DefaultRetryAttempts is the number of attempts made by the fixed retry policy.
	DefaultRetryAttempts = 3

	DefaultConfigFileType = "json"
	DefaultConfigFileName = ".cli"
	EnvPrefix             = "UNC"

	// Config keys
	ConfigCredentialsHomeDirKey = "credentials-home-dir"
	ConfigNetworkConfigPathKey  = "network-config"
	ConfigRetryAttemptsKey      = "retry-attempts"
	ConfigRPCRequestsPerSecond  = "rpc-requests-per-second"
	ConfigOutputFormatKey       = "output"
	ConfigNetworkKey            = "network"
	ConfigSeedPhraseKey         = "seed-phrase"

	// OneUnc is the number of attounc in one unc.
	OneUncExponent = 24
	// OneMilliUncExponent is the number of attounc in one milliunc.
	OneMilliUncExponent = 21

	// DefaultSeedPhraseHDPath is the SLIP-0010 path used for new key pairs.
	DefaultSeedPhraseHDPath = "m/44'/397'/0'"
	SeedPhraseWordCount     = 12

	// View methods exposed by pledging pool contracts.
	RewardFeeFractionMethod = "get_reward_fee_fraction"
	NumberOfAccountsMethod  = "get_number_of_accounts"

	TimeParseLayout = "2006-01-02 15:04:05"
)
