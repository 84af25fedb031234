// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrNoNetworkConnections = errors.New("\n\nNo network connections configured. To resolve this:\n- Use 'unc config add-connection' to add one.\n- Or remove the config file to restore the defaults.\n") //nolint:stylecheck
	ErrUnknownNetwork       = errors.New("unknown network connection")
	ErrAccountNotFound      = errors.New("account does not exist")
	ErrKeyFileExists        = errors.New("key file already exists")
)
