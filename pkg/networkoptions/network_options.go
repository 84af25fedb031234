// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package networkoptions

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unc-network/unc-cli/pkg/application"
	"github.com/unc-network/unc-cli/pkg/config"
	"github.com/unc-network/unc-cli/pkg/constants"
	"github.com/unc-network/unc-cli/pkg/prompts"
	"github.com/unc-network/unc-cli/pkg/types"
)

const networkFlag = "network"

type NetworkFlags struct {
	Network string
}

func AddNetworkFlagsToCmd(cmd *cobra.Command, networkFlags *NetworkFlags) {
	cmd.Flags().StringVarP(&networkFlags.Network, networkFlag, "n", "", "network connection to operate on (see `unc config show`)")
}

// Selector chooses a network connection for a command. Default is used
// when no connection was given and prompting is off.
type Selector struct {
	Networks    *config.Networks
	Prompt      prompts.Prompter
	Interactive bool
	Default     string
	CommandPath string
}

// Select resolves the connection from the flag, the user or the default, in
// that order. Connections whose linkdrop account matches one of
// accountHints are offered first.
func (s Selector) Select(promptStr string, networkFlags NetworkFlags, accountHints []types.AccountID) (config.NetworkConfig, error) {
	if s.Networks == nil || len(s.Networks.Connections) == 0 {
		return config.NetworkConfig{}, constants.ErrNoNetworkConnections
	}
	name := networkFlags.Network
	if name == "" {
		options := s.Networks.OrderForAccounts(accountHints)
		switch {
		case len(options) == 1:
			name = options[0]
		case s.Interactive:
			if promptStr == "" {
				promptStr = "What is the name of the network?"
			}
			var err error
			name, err = s.Prompt.CaptureList(promptStr, options)
			if err != nil {
				return config.NetworkConfig{}, err
			}
		case s.Default != "":
			name = s.Default
		default:
			return config.NetworkConfig{}, prompts.MissingError(s.CommandPath, []prompts.MissingOpt{{
				Flag: "--" + networkFlag,
				Env:  constants.EnvPrefix + "_NETWORK",
				Note: fmt.Sprintf("one of %v", options),
			}})
		}
	}
	return s.Networks.Get(name)
}

// GetNetworkFromCmdLineFlags selects the network for cmd using the app wide
// connections, prompter and configured default.
func GetNetworkFromCmdLineFlags(
	app *application.Unc,
	cmd *cobra.Command,
	promptStr string,
	networkFlags NetworkFlags,
	accountHints []types.AccountID,
) (config.NetworkConfig, error) {
	s := Selector{
		Networks:    app.Networks,
		Prompt:      app.Prompt,
		Interactive: prompts.IsInteractive(),
	}
	if app.Conf != nil {
		s.Default = app.Conf.DefaultNetwork()
	}
	if cmd != nil {
		s.CommandPath = cmd.CommandPath()
	}
	return s.Select(promptStr, networkFlags, accountHints)
}
