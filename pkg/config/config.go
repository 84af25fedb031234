// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"github.com/spf13/viper"

	"github.com/unc-network/unc-cli/pkg/constants"
)

// Config exposes the CLI level settings loaded by viper from flags,
// environment variables (UNC_*) and the optional --config file.
type Config struct{}

func New() *Config {
	return &Config{}
}

func (*Config) GetConfigStringValue(key string) string {
	return viper.GetString(key)
}

func (*Config) GetConfigIntValue(key string) int {
	return viper.GetInt(key)
}

// GetConfigPath is the --config file in use, empty when there is none.
func (*Config) GetConfigPath() string {
	return viper.ConfigFileUsed()
}

// RetryAttempts is the attempt budget of the non-interactive retry policy.
func (c *Config) RetryAttempts() int {
	if n := c.GetConfigIntValue(constants.ConfigRetryAttemptsKey); n > 0 {
		return n
	}
	return constants.DefaultRetryAttempts
}

// RequestsPerSecond is the client side RPC throttle.
func (c *Config) RequestsPerSecond() int {
	if n := c.GetConfigIntValue(constants.ConfigRPCRequestsPerSecond); n > 0 {
		return n
	}
	return constants.DefaultRPCRequestsPerSecond
}

// OutputFormat is the raw --output value, plaintext when unset.
func (c *Config) OutputFormat() string {
	if f := c.GetConfigStringValue(constants.ConfigOutputFormatKey); f != "" {
		return f
	}
	return "plaintext"
}

// DefaultNetwork is the connection used when no --network flag is given and prompting is off.
func (c *Config) DefaultNetwork() string {
	return c.GetConfigStringValue(constants.ConfigNetworkKey)
}
