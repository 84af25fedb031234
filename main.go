// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/unc-network/unc-cli/cmd"
)

func main() {
	cmd.Execute()
}
