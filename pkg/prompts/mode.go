// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/term"
)

// Environment variable names for non-interactive mode.
const (
	// EnvNonInteractive forces non-interactive mode.
	// Set to "1", "true", "yes", or "on" to enable.
	EnvNonInteractive = "UNC_NON_INTERACTIVE"

	// EnvCI is a common CI environment variable.
	// When truthy, implies non-interactive.
	EnvCI = "CI"
)

// forced is set from the --non-interactive flag.
var forced atomic.Bool

// SetNonInteractive forces (or stops forcing) non-interactive mode.
func SetNonInteractive(v bool) {
	forced.Store(v)
}

// isTruthyEnv checks if an environment variable is set to a truthy value.
// Accepts: 1, true, t, yes, y, on (case-insensitive)
func isTruthyEnv(key string) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}

// stdinIsTTY returns true if stdin is a terminal (TTY).
var stdinIsTTY = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsInteractive returns true if prompting is allowed.
//
// Interactive mode is enabled when ALL of:
//   - --non-interactive was not given
//   - UNC_NON_INTERACTIVE and CI are not truthy
//   - stdin is a TTY (not piped/redirected)
func IsInteractive() bool {
	if forced.Load() {
		return false
	}
	if isTruthyEnv(EnvNonInteractive) || isTruthyEnv(EnvCI) {
		return false
	}
	return stdinIsTTY()
}

// IsNonInteractive is the inverse of IsInteractive.
func IsNonInteractive() bool {
	return !IsInteractive()
}

// NewPrompterForMode returns a NonInteractivePrompter that fails fast when
// prompting is not allowed, and the promptui based prompter otherwise.
func NewPrompterForMode() Prompter {
	if IsNonInteractive() {
		return NewNonInteractivePrompter()
	}
	return NewPrompter()
}
