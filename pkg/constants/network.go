// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

// Default network connection names
const (
	MainnetNetworkName = "mainnet"
	TestnetNetworkName = "testnet"
	CustomNetworkName  = "custom"
	BetanetNetworkName = "betanet"

	MainnetRPCURL = "https://16.78.8.159:3030"
	TestnetRPCURL = "http://108.136.139.238:3030"
	BetanetRPCURL = "http://43.218.226.63:3030"

	MainnetWalletURL = "https://app.wallet.com/"
	TestnetWalletURL = "https://testnet.wallet.com/"

	MainnetExplorerTransactionURL = "https://explorer.unc.org/transactions/"
	TestnetExplorerTransactionURL = "https://explorer.testnet.unc.org/transactions/"

	TestnetFaucetURL = "https://helper.unc.com/account"

	MainnetLinkdropAccountID = "unc"
	TestnetLinkdropAccountID = "testnet"
)
