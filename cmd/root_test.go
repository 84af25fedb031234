// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/unc-network/unc-cli/pkg/application"
)

func TestRootRegistersCommands(t *testing.T) {
	require := require.New(t)
	app = application.New()
	root := NewRootCmd()

	for _, name := range []string{ValidatorsCmd, PledgingCmd, AccountCmd, TokensCmd, KeyCmd, ConfigCmd} {
		c, _, err := root.Find([]string{name})
		require.NoError(err, name)
		require.Equal(name, c.Name())
	}
	for _, flag := range []string{"output", "retry-attempts", "non-interactive", "config"} {
		require.NotNil(root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestConsoleLevel(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		level zapcore.Level
	}{
		{name: "default", level: zapcore.WarnLevel},
		{name: "log level", args: []string{"--log-level", "info"}, level: zapcore.InfoLevel},
		{name: "bad log level", args: []string{"--log-level", "loud"}, level: zapcore.WarnLevel},
		{name: "debug wins", args: []string{"--debug", "--log-level", "error"}, level: zapcore.DebugLevel},
		{name: "verbose", args: []string{"--verbose"}, level: zapcore.InfoLevel},
		{name: "quiet", args: []string{"--quiet"}, level: zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app = application.New()
			root := NewRootCmd()
			require.NoError(t, root.ParseFlags(tt.args))
			require.Equal(t, tt.level, consoleLevel(root))
		})
	}
}
